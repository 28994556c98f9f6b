// Package envspec parses conda environment descriptions.
package envspec

import (
	"strings"

	"go.trai.ch/genreqs/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Parse decodes an environment.yml document and flattens its dependencies
// into the ordered list of requested package names, version pins stripped.
//
// Plain entries containing "pip" or "python=" are excluded: the Python
// interpreter pin is never a requirement, and pip itself is installed as
// tooling rather than requested. The substring match is intentional and
// mirrors conda's own loose handling. Entries under a pip mapping are all
// kept. Order is preserved as encountered; duplicates pass through.
func Parse(raw []byte) (*domain.EnvironmentSpec, error) {
	var doc specFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, zerr.With(domain.ErrSpecParseFailed, "cause", err.Error())
	}

	spec := &domain.EnvironmentSpec{
		Name:     doc.Name,
		Channels: doc.Channels,
	}

	for _, dep := range doc.Dependencies {
		switch {
		case dep.Spec != "":
			if strings.Contains(dep.Spec, "pip") || strings.Contains(dep.Spec, "python=") {
				continue
			}
			spec.Requested = append(spec.Requested, domain.ParsePackageName(dep.Spec))
		case dep.Pip != nil:
			for _, entry := range dep.Pip {
				spec.Requested = append(spec.Requested, domain.ParsePackageName(entry))
			}
		}
	}

	return spec, nil
}
