// Package semver implements a mutable semantic version value
// (MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]) with SemVer 2.0.0 precedence.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultVersion is the version produced by Default.
const DefaultVersion = "0.1.0"

const identifiers = `[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*`

var (
	strictPattern = regexp.MustCompile(
		`^[vV]?(\d+)\.(\d+)\.(\d+)(?:-(` + identifiers + `))?(?:\+(` + identifiers + `))?$`,
	)
	lenientPattern = regexp.MustCompile(
		`^[vV]?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:-(` + identifiers + `))?(?:\+(` + identifiers + `))?$`,
	)
	identifierPattern = regexp.MustCompile(`^` + identifiers + `$`)
)

// Version is a semantic version. The zero value is 0.0.0.
//
// Setters and incrementers mutate the receiver and return it so calls can be chained.
// A Version is not safe for concurrent mutation.
type Version struct {
	major uint64
	minor uint64
	patch uint64
	// empty means absent; a present value is never empty
	preRelease string
	build      string
}

// New parses a complete version string, optionally prefixed with v or V.
func New(s string) (*Version, error) {
	v := &Version{}
	if err := v.SetVersion(s); err != nil {
		return nil, err
	}
	return v, nil
}

// MustNew is like New but panics on invalid input. Use it for literals only.
func MustNew(s string) *Version {
	v, err := New(s)
	if err != nil {
		panic(fmt.Sprintf("semver.MustNew: %v", err))
	}
	return v
}

// Default returns a new 0.1.0 version.
func Default() *Version {
	return MustNew(DefaultVersion)
}

// Parse leniently parses s, filling a missing minor or patch component with 0.
// "v1" becomes 1.0.0 and "v1.3-beta" becomes 1.3.0-beta.
func Parse(s string) (*Version, error) {
	m := lenientPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, invalid(s, "does not match MAJOR[.MINOR[.PATCH]][-PRERELEASE][+BUILD]")
	}
	var b strings.Builder
	b.WriteString(m[1])
	b.WriteByte('.')
	b.WriteString(orZero(m[2]))
	b.WriteByte('.')
	b.WriteString(orZero(m[3]))
	if m[4] != "" {
		b.WriteByte('-')
		b.WriteString(m[4])
	}
	if m[5] != "" {
		b.WriteByte('+')
		b.WriteString(m[5])
	}
	v, err := New(b.String())
	if err != nil {
		var ive *InvalidVersionError
		if errors.As(err, &ive) {
			return nil, invalid(s, ive.Reason)
		}
		return nil, err
	}
	return v, nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// SetVersion replaces every field of v with the values parsed from s.
// v is left untouched when s is invalid.
func (v *Version) SetVersion(s string) error {
	m := strictPattern.FindStringSubmatch(s)
	if m == nil {
		return invalid(s, "does not match MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]")
	}
	var nums [3]uint64
	for i, part := range m[1:4] {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return invalid(s, fmt.Sprintf("numeric component %q out of range", part))
		}
		nums[i] = n
	}
	*v = Version{
		major:      nums[0],
		minor:      nums[1],
		patch:      nums[2],
		preRelease: m[4],
		build:      m[5],
	}
	return nil
}

// Major returns the major version number.
func (v *Version) Major() uint64 { return v.major }

// Minor returns the minor version number.
func (v *Version) Minor() uint64 { return v.minor }

// Patch returns the patch version number.
func (v *Version) Patch() uint64 { return v.patch }

// PreRelease returns the pre-release identifiers and whether they are set.
func (v *Version) PreRelease() (string, bool) {
	return v.preRelease, v.preRelease != ""
}

// Build returns the build metadata and whether it is set.
func (v *Version) Build() (string, bool) {
	return v.build, v.build != ""
}

// IsPreRelease reports whether v carries pre-release identifiers.
func (v *Version) IsPreRelease() bool { return v.preRelease != "" }

// HasBuild reports whether v carries build metadata.
func (v *Version) HasBuild() bool { return v.build != "" }

// SetMajor sets major and resets everything below it.
func (v *Version) SetMajor(n uint64) *Version {
	*v = Version{major: n}
	return v
}

// SetMinor sets minor, resets patch and clears pre-release and build.
func (v *Version) SetMinor(n uint64) *Version {
	*v = Version{major: v.major, minor: n}
	return v
}

// SetPatch sets patch and clears pre-release and build.
func (v *Version) SetPatch(n uint64) *Version {
	*v = Version{major: v.major, minor: v.minor, patch: n}
	return v
}

// SetPreRelease sets the dot-separated pre-release identifiers. Use ClearPreRelease
// to remove them. Invalid input leaves v unchanged and is reported as an error,
// so unlike the numeric setters this one does not return v for chaining.
func (v *Version) SetPreRelease(s string) error {
	if !identifierPattern.MatchString(s) {
		return invalid(s, "pre-release must be dot-separated [0-9A-Za-z-] identifiers")
	}
	v.preRelease = s
	return nil
}

// ClearPreRelease removes the pre-release identifiers.
func (v *Version) ClearPreRelease() *Version {
	v.preRelease = ""
	return v
}

// SetBuild sets the dot-separated build metadata. Use ClearBuild to remove it.
// Like SetPreRelease it returns an error instead of v and does not chain.
func (v *Version) SetBuild(s string) error {
	if !identifierPattern.MatchString(s) {
		return invalid(s, "build must be dot-separated [0-9A-Za-z-] identifiers")
	}
	v.build = s
	return nil
}

// ClearBuild removes the build metadata.
func (v *Version) ClearBuild() *Version {
	v.build = ""
	return v
}

// Clone returns an independent copy of v.
func (v *Version) Clone() *Version {
	c := *v
	return &c
}

// String renders the canonical form without any prefix.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))
	if v.preRelease != "" {
		b.WriteByte('-')
		b.WriteString(v.preRelease)
	}
	if v.build != "" {
		b.WriteByte('+')
		b.WriteString(v.build)
	}
	return b.String()
}

// Prefix renders v with p in front of the canonical form.
func (v *Version) Prefix(p string) string {
	return p + v.String()
}

// Prefixed renders v as "v" followed by the canonical form.
func (v *Version) Prefixed() string {
	return v.Prefix("v")
}
