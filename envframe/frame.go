package envframe

import "github.com/npillmayer/lokal"

// Frame is a scope of named bindings, chained to a parent scope. A frame
// and its clone share one bindings map until either of them is written to:
// Clone marks both as non-owning, so the first Set on either side copies
// the map before writing.
type Frame struct {
	parent   *Frame
	bindings map[string]lokal.Param
	owns     bool
}

var _ lokal.EvalEnv = (*Frame)(nil)

// New returns an empty root frame.
func New() *Frame {
	return &Frame{}
}

// Clone implements lokal.EvalEnv. The returned frame shares bindings with
// f until one of the two is written to (copy-on-write), per §3.
func (f *Frame) Clone() lokal.EvalEnv {
	f.owns = false
	return &Frame{parent: f.parent, bindings: f.bindings}
}

// Child returns a new, empty frame scoped under f — grounded on the
// teacher's PushNewMemoryFrame, adapted for grammars whose Eval functions
// want lexical nesting rather than a flat environment.
func (f *Frame) Child() *Frame {
	return &Frame{parent: f}
}

// Get resolves name in f or, failing that, in f's ancestor chain.
func (f *Frame) Get(name string) (lokal.Param, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if v, ok := fr.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name to v in f's own scope, materializing a private copy of
// f's bindings first if f is still sharing them with the frame it was
// cloned from.
func (f *Frame) Set(name string, v lokal.Param) {
	if !f.owns {
		cp := make(map[string]lokal.Param, len(f.bindings)+1)
		for k, vv := range f.bindings {
			cp[k] = vv
		}
		f.bindings = cp
		f.owns = true
	}
	f.bindings[name] = v
}
