package value

import "fmt"

// AtomType tags the kind of value an Atom holds.
type AtomType int

const (
	NoType AtomType = iota
	NumType
	StringType
	BoolType
	ErrorType
)

// Atom is a small comparable tagged-union value, usable directly as a
// lokal.Param or lokal.Result.
type Atom struct {
	typ  AtomType
	Data interface{}
}

// NilAtom is the zero value.
var NilAtom = Atom{}

// Type returns a's kind.
func (a Atom) Type() AtomType { return a.typ }

// Num wraps a numeric value.
func Num(f float64) Atom { return Atom{typ: NumType, Data: f} }

// Str wraps a string value.
func Str(s string) Atom { return Atom{typ: StringType, Data: s} }

// Bool wraps a boolean value.
func Bool(b bool) Atom { return Atom{typ: BoolType, Data: b} }

// Err wraps an error message.
func Err(msg string) Atom { return Atom{typ: ErrorType, Data: msg} }

// Atomize converts an untyped comparable value into an Atom, guessing its
// type the way terex.Atomize did for the kinds this package keeps.
func Atomize(thing interface{}) Atom {
	if thing == nil {
		return NilAtom
	}
	if a, ok := thing.(Atom); ok {
		return a
	}
	switch v := thing.(type) {
	case int:
		return Num(float64(v))
	case int32:
		return Num(float64(v))
	case int64:
		return Num(float64(v))
	case float32:
		return Num(float64(v))
	case float64:
		return Num(v)
	case string:
		return Str(v)
	case bool:
		return Bool(v)
	case error:
		return Err(v.Error())
	default:
		return Atom{typ: NoType, Data: thing}
	}
}

func (a Atom) String() string {
	if a == NilAtom {
		return "nil"
	}
	switch a.typ {
	case NumType:
		return fmt.Sprintf("%g", a.Data)
	case StringType:
		return fmt.Sprintf("%q", a.Data)
	case BoolType:
		return fmt.Sprintf("%v", a.Data)
	case ErrorType:
		return fmt.Sprintf("error: %v", a.Data)
	default:
		return fmt.Sprintf("%v", a.Data)
	}
}
