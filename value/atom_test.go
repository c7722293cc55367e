package value

import "testing"

func TestAtomizeGuessesType(t *testing.T) {
	cases := []struct {
		in   interface{}
		want AtomType
	}{
		{42, NumType},
		{3.14, NumType},
		{"hi", StringType},
		{true, BoolType},
	}
	for _, c := range cases {
		got := Atomize(c.in)
		if got.Type() != c.want {
			t.Errorf("Atomize(%v).Type() = %v, want %v", c.in, got.Type(), c.want)
		}
	}
}

func TestAtomizeIsIdempotent(t *testing.T) {
	a := Str("x")
	if Atomize(a) != a {
		t.Fatalf("Atomize of an Atom should return it unchanged")
	}
}

func TestAtomEquality(t *testing.T) {
	if Num(1) != Num(1) {
		t.Fatalf("equal atoms must compare equal (used as map keys)")
	}
	if Num(1) == Num(2) {
		t.Fatalf("different atoms must not compare equal")
	}
}

func TestNilAtomString(t *testing.T) {
	if NilAtom.String() != "nil" {
		t.Fatalf("expected NilAtom.String() == %q, got %q", "nil", NilAtom.String())
	}
}
