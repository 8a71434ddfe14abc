package semver

import "strings"

// IncrementMajor bumps major and resets the lower fields, like SetMajor.
func (v *Version) IncrementMajor() *Version {
	return v.SetMajor(v.major + 1)
}

// IncrementMinor bumps minor and resets the lower fields, like SetMinor.
func (v *Version) IncrementMinor() *Version {
	return v.SetMinor(v.minor + 1)
}

// IncrementPatch bumps patch and clears pre-release and build, like SetPatch.
func (v *Version) IncrementPatch() *Version {
	return v.SetPatch(v.patch + 1)
}

// IncrementPreRelease advances the pre-release counter.
//
// Without a pre-release, patch is bumped and the pre-release becomes "1".
// Otherwise a numeric last identifier is incremented (alpha.5 -> alpha.6) and
// a non-numeric one gets ".1" appended (alpha -> alpha.1). Build metadata is kept
// in the latter case.
func (v *Version) IncrementPreRelease() *Version {
	if v.preRelease == "" {
		v.IncrementPatch()
		v.preRelease = "1"
		return v
	}
	ids := strings.Split(v.preRelease, ".")
	last := ids[len(ids)-1]
	if !isNumeric(last) {
		v.preRelease += ".1"
		return v
	}
	ids[len(ids)-1] = incrementDigits(last)
	v.preRelease = strings.Join(ids, ".")
	return v
}

// incrementDigits adds one to a decimal string of any length, dropping leading zeros.
func incrementDigits(s string) string {
	s = strings.TrimLeft(s, "0")
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
