package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero("", "foo"); v != "foo" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[int](); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestDerefOrZero(t *testing.T) {
	n := 42
	if v := DerefOrZero(&n); v != 42 {
		t.Fatalf("got %v", v)
	}
	if v := DerefOrZero[int](nil); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "t", "yes", "y", "on", "1", "TRUE", "Yes", "On"} {
		if !StrToBool(str) {
			t.Fatalf("got false for %q", str)
		}
	}
	for _, str := range []string{"false", "f", "no", "n", "off", "0", "", "maybe"} {
		if StrToBool(str) {
			t.Fatalf("got true for %q", str)
		}
	}
}
