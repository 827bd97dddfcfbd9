package config

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestDTO represents the structure of an installer manifest file.
type ManifestDTO struct {
	Index    string      `yaml:"index"`
	Keys     []string    `yaml:"keys"`
	Packages PackageList `yaml:"packages"`
}

// PackageList accepts either a whitespace-separated block of package names or a YAML list.
type PackageList string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PackageList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*p = PackageList(value.Value)
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		*p = PackageList(strings.Join(names, "\n"))
	default:
		return zerr.With(zerr.New("packages must be a string or a list of strings"), "line", value.Line)
	}
	return nil
}
