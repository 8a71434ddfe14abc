package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_IncrementMajor(t *testing.T) {
	t.Run("Should bump major version correctly", func(t *testing.T) {
		assert.Equal(t, "2.0.0", MustNew("v1.3.37").IncrementMajor().String())
	})
	t.Run("Should reset minor patch pre-release and build", func(t *testing.T) {
		assert.Equal(t, "2.0.0", MustNew("v1.3.37-alpha.5+007").IncrementMajor().String())
	})
}

func TestVersion_IncrementMinor(t *testing.T) {
	t.Run("Should bump minor version correctly", func(t *testing.T) {
		assert.Equal(t, "1.4.0", MustNew("v1.3.37").IncrementMinor().String())
	})
	t.Run("Should reset patch pre-release and build", func(t *testing.T) {
		assert.Equal(t, "1.4.0", MustNew("v1.3.37-rc.1+007").IncrementMinor().String())
	})
}

func TestVersion_IncrementPatch(t *testing.T) {
	t.Run("Should bump patch version correctly", func(t *testing.T) {
		assert.Equal(t, "1.3.38", MustNew("v1.3.37").IncrementPatch().String())
	})
	t.Run("Should clear pre-release and build", func(t *testing.T) {
		assert.Equal(t, "1.3.38", MustNew("v1.3.37-rc.1+007").IncrementPatch().String())
	})
}

func TestVersion_IncrementPreRelease(t *testing.T) {
	cases := []struct {
		name string
		pre  string
		want string
	}{
		{name: "numeric suffix", pre: "alpha.5", want: "1.3.37-alpha.6"},
		{name: "no numeric suffix", pre: "alpha", want: "1.3.37-alpha.1"},
		{name: "bare number", pre: "5", want: "1.3.37-6"},
		{name: "multiple dots with number", pre: "alpha.a.b.5", want: "1.3.37-alpha.a.b.6"},
		{name: "multiple dots without number", pre: "alpha.a.b", want: "1.3.37-alpha.a.b.1"},
		{name: "carry", pre: "rc.99", want: "1.3.37-rc.100"},
		{name: "leading zero", pre: "rc.09", want: "1.3.37-rc.10"},
		{name: "zero", pre: "0", want: "1.3.37-1"},
		{
			name: "beyond uint64",
			pre:  "rc.99999999999999999999999",
			want: "1.3.37-rc.100000000000000000000000",
		},
	}
	for _, tc := range cases {
		t.Run("Should increment "+tc.name, func(t *testing.T) {
			v := MustNew("v1.3.37")
			require.NoError(t, v.SetPreRelease(tc.pre))
			assert.Equal(t, tc.want, v.IncrementPreRelease().String())
		})
	}
	t.Run("Should bump patch and start at 1 when no pre-release is set", func(t *testing.T) {
		v := MustNew("v1.3.37").IncrementPreRelease()
		assert.Equal(t, uint64(38), v.Patch())
		pre, ok := v.PreRelease()
		assert.True(t, ok)
		assert.Equal(t, "1", pre)
		assert.Equal(t, "1.3.38-1", v.String())
	})
	t.Run("Should keep build metadata when a pre-release is set", func(t *testing.T) {
		assert.Equal(t, "1.3.37-beta.3+007", MustNew("1.3.37-beta.2+007").IncrementPreRelease().String())
	})
	t.Run("Should produce a version of higher precedence", func(t *testing.T) {
		for _, s := range []string{"1.0.0", "1.0.0-alpha", "1.0.0-alpha.9", "1.0.0-1"} {
			before := MustNew(s)
			after := before.Clone().IncrementPreRelease()
			assert.True(t, after.GreaterThan(before), s)
		}
	})
}
