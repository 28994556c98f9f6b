package envspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/genreqs/internal/adapters/envspec"
	"go.trai.ch/genreqs/internal/core/domain"
)

func TestParse_Dependencies(t *testing.T) {
	tests := []struct {
		name     string
		yml      string
		expected []domain.PackageName
	}{
		{
			name: "strips conda version pins",
			yml: `dependencies:
  - numpy=1.2
  - pandas
`,
			expected: []domain.PackageName{"numpy", "pandas"},
		},
		{
			name: "excludes python pins and flattens pip groups",
			yml: `dependencies:
  - numpy=1.2
  - python=3.9
  - pip:
      - flask=2.0
`,
			expected: []domain.PackageName{"numpy", "flask"},
		},
		{
			name: "bare name passes through unchanged",
			yml: `dependencies:
  - requests
`,
			expected: []domain.PackageName{"requests"},
		},
		{
			name: "unpinned python is kept",
			yml: `dependencies:
  - python
  - numpy
`,
			expected: []domain.PackageName{"python", "numpy"},
		},
		{
			name: "pip marker matches as a substring",
			yml: `dependencies:
  - pip
  - pipdeptree
  - numpy
`,
			expected: []domain.PackageName{"numpy"},
		},
		{
			name: "pip entries keep their order and double pins",
			yml: `dependencies:
  - pip:
      - flask==2.0
      - click=8.1
  - scipy=1.11
`,
			expected: []domain.PackageName{"flask", "click", "scipy"},
		},
		{
			name: "duplicates are not collapsed",
			yml: `dependencies:
  - numpy=1.2
  - numpy
`,
			expected: []domain.PackageName{"numpy", "numpy"},
		},
		{
			name: "mappings without a pip key are ignored",
			yml: `dependencies:
  - numpy
  - other:
      - somepkg
`,
			expected: []domain.PackageName{"numpy"},
		},
		{
			name: "non-string scalars are ignored",
			yml: `dependencies:
  - numpy
  - 42
`,
			expected: []domain.PackageName{"numpy"},
		},
		{
			name:     "missing dependencies key yields no names",
			yml:      "name: demo\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := envspec.Parse([]byte(tt.yml))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec.Requested)
		})
	}
}

func TestParse_Metadata(t *testing.T) {
	yml := `name: science
channels:
  - conda-forge
  - defaults
dependencies:
  - numpy
`
	spec, err := envspec.Parse([]byte(yml))
	require.NoError(t, err)

	assert.Equal(t, "science", spec.Name)
	assert.Equal(t, []string{"conda-forge", "defaults"}, spec.Channels)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := envspec.Parse([]byte("dependencies: [unclosed"))
	require.ErrorIs(t, err, domain.ErrSpecParseFailed)
	assert.Contains(t, err.Error(), domain.ErrSpecParseFailed.Error())
}
