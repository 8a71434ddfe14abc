package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/compozy/semver/internal/config"
	"github.com/compozy/semver/pkg/semver"
	"gopkg.in/yaml.v3"
)

type versionView struct {
	Version    *semver.Version `json:"version" yaml:"version"`
	Major      uint64          `json:"major" yaml:"major"`
	Minor      uint64          `json:"minor" yaml:"minor"`
	Patch      uint64          `json:"patch" yaml:"patch"`
	PreRelease string          `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      string          `json:"build,omitempty" yaml:"build,omitempty"`
}

func newVersionView(v *semver.Version) versionView {
	pre, _ := v.PreRelease()
	build, _ := v.Build()
	return versionView{
		Version:    v,
		Major:      v.Major(),
		Minor:      v.Minor(),
		Patch:      v.Patch(),
		PreRelease: pre,
		Build:      build,
	}
}

// writeStructured encodes payload as JSON or YAML and reports whether the
// output format was structured at all.
func writeStructured(w io.Writer, format string, payload any) (bool, error) {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(payload)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func writeVersions(w io.Writer, cfg *config.Config, vs []*semver.Version) error {
	views := make([]versionView, 0, len(vs))
	for _, v := range vs {
		views = append(views, newVersionView(v))
	}
	if done, err := writeStructured(w, cfg.Output, views); done {
		return err
	}
	for _, v := range vs {
		if _, err := fmt.Fprintln(w, v.Prefix(cfg.Prefix)); err != nil {
			return err
		}
	}
	return nil
}

func writeVersion(w io.Writer, cfg *config.Config, v *semver.Version) error {
	if done, err := writeStructured(w, cfg.Output, newVersionView(v)); done {
		return err
	}
	_, err := fmt.Fprintln(w, v.Prefix(cfg.Prefix))
	return err
}
