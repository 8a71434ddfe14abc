package semver

import (
	"strings"
	"testing"
)

// FuzzNew checks that parsing never panics and that accepted input round-trips.
func FuzzNew(f *testing.F) {
	f.Add("1.2.3")
	f.Add("v1.2.3")
	f.Add("V0.0.0")
	f.Add("1.0.0-alpha.1+build.5")
	f.Add("1.0.0-0")
	f.Add("01.02.03")
	f.Add("1.2.3-")
	f.Add("1.2.3+")
	f.Add("1.2")
	f.Add("")
	f.Add("..")
	f.Add("1.2.3-a..b")
	f.Add("18446744073709551616.0.0")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := New(input)
		if err != nil {
			if v != nil {
				t.Errorf("New(%q) returned both a version and an error", input)
			}
			return
		}
		s := v.String()
		if strings.HasPrefix(s, "v") {
			t.Errorf("String() for %q kept a prefix: %q", input, s)
		}
		again, err := New(s)
		if err != nil {
			t.Fatalf("re-parsing %q (from %q) failed: %v", s, input, err)
		}
		if *again != *v {
			t.Errorf("round-trip mismatch for %q: %+v != %+v", input, *v, *again)
		}
		if Compare(v, again) != 0 {
			t.Errorf("Compare(%q, %q) != 0", input, s)
		}
	})
}

// FuzzParse checks that lenient parsing agrees with strict parsing on complete input.
func FuzzParse(f *testing.F) {
	f.Add("1")
	f.Add("v1.3")
	f.Add("v1-alpha.5")
	f.Add("v1.3+007")
	f.Add("1.2.3")
	f.Add("x")

	f.Fuzz(func(t *testing.T, input string) {
		lenient, err := Parse(input)
		if err != nil {
			return
		}
		strict, err := New(input)
		if err == nil && *strict != *lenient {
			t.Errorf("Parse(%q) = %+v, New = %+v", input, *lenient, *strict)
		}
		if _, err := New(lenient.String()); err != nil {
			t.Errorf("Parse(%q) produced unparsable %q: %v", input, lenient.String(), err)
		}
	})
}
