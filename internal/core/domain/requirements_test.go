package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/genreqs/internal/core/domain"
)

func TestBuildRequirements(t *testing.T) {
	index := domain.NewPackageIndex([]domain.PinnedPackage{
		{Name: "a", Version: "1"},
		{Name: "b", Version: "2"},
		{Name: "c", Version: "3"},
	})

	tests := []struct {
		name      string
		requested []domain.PackageName
		expected  domain.Requirements
	}{
		{
			name:      "preserves requested order",
			requested: []domain.PackageName{"b", "a"},
			expected: domain.Requirements{
				{Name: "b", Version: "2"},
				{Name: "a", Version: "1"},
			},
		},
		{
			name:      "drops names missing from the index",
			requested: []domain.PackageName{"a", "ghost", "c"},
			expected: domain.Requirements{
				{Name: "a", Version: "1"},
				{Name: "c", Version: "3"},
			},
		},
		{
			name:      "duplicate requests yield duplicate entries",
			requested: []domain.PackageName{"a", "a"},
			expected: domain.Requirements{
				{Name: "a", Version: "1"},
				{Name: "a", Version: "1"},
			},
		},
		{
			name:      "no requests yields no entries",
			requested: nil,
			expected:  domain.Requirements{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.BuildRequirements(tt.requested, index))
		})
	}
}

func TestRequirements_Render(t *testing.T) {
	t.Run("one line per entry, newline terminated", func(t *testing.T) {
		reqs := domain.Requirements{
			{Name: "flask", Version: "2.3.1"},
			{Name: "click", Version: "8.1.0"},
		}
		assert.Equal(t, "flask=2.3.1\nclick=8.1.0\n", reqs.Render())
	})

	t.Run("empty requirements render empty content", func(t *testing.T) {
		assert.Equal(t, "", domain.Requirements{}.Render())
	})
}
