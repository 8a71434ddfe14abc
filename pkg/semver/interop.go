package semver

import (
	mmsemver "github.com/Masterminds/semver/v3"
)

// FromSemver converts a Masterminds version. Pre-release and build are checked
// against the identifier grammar since mmsemver.New does not validate them.
func FromSemver(sv *mmsemver.Version) (*Version, error) {
	if sv == nil {
		return nil, invalid("<nil>", "nil Masterminds version")
	}
	v := &Version{major: sv.Major(), minor: sv.Minor(), patch: sv.Patch()}
	if pre := sv.Prerelease(); pre != "" {
		if err := v.SetPreRelease(pre); err != nil {
			return nil, err
		}
	}
	if meta := sv.Metadata(); meta != "" {
		if err := v.SetBuild(meta); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ToSemver converts v to a Masterminds version.
func (v *Version) ToSemver() *mmsemver.Version {
	return mmsemver.New(v.major, v.minor, v.patch, v.preRelease, v.build)
}
