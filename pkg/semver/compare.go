package semver

import (
	"fmt"
	"sort"
	"strings"
)

// Precision selects how many fields take part in a comparison.
type Precision int

const (
	// PrecisionFull compares major, minor, patch and pre-release precedence.
	PrecisionFull Precision = iota
	// PrecisionPatch compares major, minor and patch only.
	PrecisionPatch
	// PrecisionMinor compares major and minor only.
	PrecisionMinor
	// PrecisionMajor compares major only.
	PrecisionMajor
)

func (p Precision) String() string {
	switch p {
	case PrecisionMajor:
		return "major"
	case PrecisionMinor:
		return "minor"
	case PrecisionPatch:
		return "patch"
	case PrecisionFull:
		return "full"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// ParsePrecision accepts major, minor, patch or full in any case.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return PrecisionMajor, nil
	case "minor":
		return PrecisionMinor, nil
	case "patch":
		return PrecisionPatch, nil
	case "full", "":
		return PrecisionFull, nil
	default:
		return PrecisionFull, fmt.Errorf("unknown precision %q: expected major, minor, patch or full", s)
	}
}

// Compare returns -1, 0 or 1 when a is lower than, equal to or higher than b.
// Build metadata never affects the result.
func Compare(a, b *Version) int {
	return CompareAt(a, b, PrecisionFull)
}

// CompareAt is Compare restricted to the fields selected by p.
// Pre-release identifiers are only consulted at PrecisionFull.
func CompareAt(a, b *Version, p Precision) int {
	if c := compareUint(a.major, b.major); c != 0 || p == PrecisionMajor {
		return c
	}
	if c := compareUint(a.minor, b.minor); c != 0 || p == PrecisionMinor {
		return c
	}
	if c := compareUint(a.patch, b.patch); c != 0 || p == PrecisionPatch {
		return c
	}
	return comparePreRelease(a.preRelease, b.preRelease)
}

// comparePreRelease orders two pre-release strings. An absent pre-release
// outranks any present one at the same numeric triple.
func comparePreRelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	left, right := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(left) || i < len(right); i++ {
		// a missing identifier sorts below any present one
		switch {
		case i >= len(left):
			return -1
		case i >= len(right):
			return 1
		}
		if c := compareIdentifier(left[i], right[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareIdentifier compares numeric identifiers by value, alphanumeric ones
// in ASCII order, and ranks numeric below alphanumeric.
func compareIdentifier(a, b string) int {
	numA, numB := isNumeric(a), isNumeric(b)
	switch {
	case numA && numB:
		return compareDigits(a, b)
	case numA:
		return -1
	case numB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// compareDigits compares decimal strings of any length without converting them.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := compareUint(uint64(len(a)), uint64(len(b))); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare is the method form of the package-level Compare.
func (v *Version) Compare(o *Version) int { return Compare(v, o) }

// GreaterThan reports whether v has higher precedence than o.
func (v *Version) GreaterThan(o *Version) bool { return v.At(PrecisionFull).GreaterThan(o) }

// LessThan reports whether v has lower precedence than o.
func (v *Version) LessThan(o *Version) bool { return v.At(PrecisionFull).LessThan(o) }

// Equal reports whether v and o have equal precedence. Build metadata is ignored.
func (v *Version) Equal(o *Version) bool { return v.At(PrecisionFull).Equal(o) }

// NotEqual is the negation of Equal.
func (v *Version) NotEqual(o *Version) bool { return v.At(PrecisionFull).NotEqual(o) }

// GreaterThanOrEqual reports whether v does not have lower precedence than o.
func (v *Version) GreaterThanOrEqual(o *Version) bool {
	return v.At(PrecisionFull).GreaterThanOrEqual(o)
}

// LessThanOrEqual reports whether v does not have higher precedence than o.
func (v *Version) LessThanOrEqual(o *Version) bool { return v.At(PrecisionFull).LessThanOrEqual(o) }

// Scoped compares a version against others at a fixed precision.
type Scoped struct {
	v *Version
	p Precision
}

// At returns a view of v whose predicates compare at precision p.
//
//	v.At(semver.PrecisionMinor).Equal(w) // ignores patch and pre-release
func (v *Version) At(p Precision) Scoped {
	return Scoped{v: v, p: p}
}

// Compare compares the viewed version with o at the view's precision.
func (s Scoped) Compare(o *Version) int { return CompareAt(s.v, o, s.p) }

// GreaterThan reports whether the viewed version ranks above o.
func (s Scoped) GreaterThan(o *Version) bool { return s.Compare(o) > 0 }

// LessThan reports whether the viewed version ranks below o.
func (s Scoped) LessThan(o *Version) bool { return s.Compare(o) < 0 }

// Equal reports whether the viewed version ties with o.
func (s Scoped) Equal(o *Version) bool { return s.Compare(o) == 0 }

// NotEqual is the negation of Equal.
func (s Scoped) NotEqual(o *Version) bool { return s.Compare(o) != 0 }

// GreaterThanOrEqual reports whether the viewed version does not rank below o.
func (s Scoped) GreaterThanOrEqual(o *Version) bool { return s.Compare(o) >= 0 }

// LessThanOrEqual reports whether the viewed version does not rank above o.
func (s Scoped) LessThanOrEqual(o *Version) bool { return s.Compare(o) <= 0 }

// Collection sorts versions by full precedence.
type Collection []*Version

func (c Collection) Len() int           { return len(c) }
func (c Collection) Less(i, j int) bool { return Compare(c[i], c[j]) < 0 }
func (c Collection) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }

// Sort orders vs ascending by precedence. Versions of equal precedence keep their input order.
func Sort(vs []*Version) {
	sort.Stable(Collection(vs))
}

// SortDescending orders vs by descending precedence. Versions of equal
// precedence keep their input order.
func SortDescending(vs []*Version) {
	sort.Stable(sort.Reverse(Collection(vs)))
}
