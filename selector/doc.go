// Copyright © 2017-2022 Norbert Pillmayer <norbert@pillmayer.com>
//
// BSD-style license. See LICENSE file.

// Package selector collects lokal.Selector policies arbitrating which
// locally-lexed candidate tokens are admitted into a parse (§4.3, §6).
package selector
