package semver

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText renders the canonical form.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a complete version string into v.
func (v *Version) UnmarshalText(text []byte) error {
	return v.SetVersion(string(text))
}

// MarshalJSON renders the canonical form as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a JSON string holding a complete version. null is a no-op.
func (v *Version) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("version must be a JSON string: %w", err)
	}
	return v.SetVersion(s)
}

// MarshalYAML renders the canonical form as a YAML scalar.
func (v Version) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML accepts a scalar node holding a complete version.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("version must be a YAML scalar, line %d", node.Line)
	}
	return v.SetVersion(node.Value)
}
