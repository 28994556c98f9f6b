package envspec

import "gopkg.in/yaml.v3"

// specFile represents the structure of a conda environment.yml document.
type specFile struct {
	Name         string       `yaml:"name"`
	Channels     []string     `yaml:"channels"`
	Dependencies []dependency `yaml:"dependencies"`
}

// dependency is one entry of the heterogeneous dependencies sequence:
// either a plain package spec string or a mapping with a pip list.
type dependency struct {
	Spec string
	Pip  []string
}

// pipGroup matches the `- pip:` mapping form; other keys are ignored.
type pipGroup struct {
	Pip []string `yaml:"pip"`
}

// UnmarshalYAML accepts both entry shapes. Scalar entries that are not
// strings and mappings without a pip key decode to a zero dependency,
// which the extractor skips.
func (d *dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Decode stringifies any scalar, so gate on the resolved tag:
		// ints, bools and nulls are not package names.
		if node.Tag != "!!str" {
			return nil
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return nil
		}
		d.Spec = s
	case yaml.MappingNode:
		var group pipGroup
		if err := node.Decode(&group); err != nil {
			return err
		}
		d.Pip = group.Pip
	}
	return nil
}
