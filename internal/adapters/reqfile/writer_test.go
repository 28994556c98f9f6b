package reqfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/genreqs/internal/adapters/reqfile"
	"go.trai.ch/genreqs/internal/core/domain"
)

func TestWriter_Write(t *testing.T) {
	writer := reqfile.NewWriter()
	path := filepath.Join(t.TempDir(), "requirements.txt")

	reqs := domain.Requirements{
		{Name: "flask", Version: "2.3.1"},
		{Name: "click", Version: "8.1.0"},
	}
	require.NoError(t, writer.Write(path, reqs))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "requirements", content)
}

func TestWriter_Write_OverwritesExisting(t *testing.T) {
	writer := reqfile.NewWriter()
	path := filepath.Join(t.TempDir(), "requirements.txt")

	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))
	require.NoError(t, writer.Write(path, domain.Requirements{{Name: "numpy", Version: "1.26.4"}}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "numpy=1.26.4\n", string(content))
}

func TestWriter_Write_EmptyRequirements(t *testing.T) {
	writer := reqfile.NewWriter()
	path := filepath.Join(t.TempDir(), "requirements.txt")

	require.NoError(t, writer.Write(path, domain.Requirements{}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestWriter_Write_Idempotent(t *testing.T) {
	writer := reqfile.NewWriter()
	path := filepath.Join(t.TempDir(), "requirements.txt")

	reqs := domain.Requirements{
		{Name: "flask", Version: "2.3.1"},
		{Name: "click", Version: "8.1.0"},
	}

	require.NoError(t, writer.Write(path, reqs))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, writer.Write(path, reqs))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriter_Write_UnwritablePath(t *testing.T) {
	writer := reqfile.NewWriter()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "requirements.txt")

	err := writer.Write(path, domain.Requirements{{Name: "numpy", Version: "1.26.4"}})
	require.ErrorIs(t, err, domain.ErrRequirementsWriteFailed)
	assert.Contains(t, err.Error(), domain.ErrRequirementsWriteFailed.Error())
}
