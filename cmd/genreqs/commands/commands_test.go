package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/genreqs/cmd/genreqs/commands"
	"go.trai.ch/genreqs/internal/app"
	"go.trai.ch/genreqs/internal/build"
	"go.trai.ch/genreqs/internal/core/domain"
	"go.trai.ch/genreqs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	generateFunc func(ctx context.Context, opts app.GenerateOptions) error
}

func (m *mockApp) Generate(ctx context.Context, opts app.GenerateOptions) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, opts)
	}
	return nil
}

// newQuietLogger returns a mock logger that tolerates any call.
func newQuietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags and spec path", func(t *testing.T) {
		specPath := filepath.Join(t.TempDir(), "environment.yml")
		require.NoError(t, os.WriteFile(specPath, []byte("name: demo\n"), 0o644))
		t.Setenv(domain.CondaEnvVar, "demo")

		var captured app.GenerateOptions
		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, newQuietLogger(t))
		cli.SetArgs([]string{specPath, "--output", "custom.txt"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, specPath, captured.SpecPath)
		assert.Equal(t, "demo", captured.ActiveEnv)
		assert.Equal(t, "custom.txt", captured.OutputPath)
	})

	t.Run("defaults output to requirements.txt", func(t *testing.T) {
		t.Setenv(domain.CondaEnvVar, "demo")

		var captured app.GenerateOptions
		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, newQuietLogger(t))
		cli.SetArgs([]string{})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, captured.SpecPath)
		assert.Equal(t, domain.DefaultOutputFile, captured.OutputPath)
	})

	t.Run("rejects missing spec file before pipeline", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, newQuietLogger(t))
		cli.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yml")})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrSpecFileNotFound)
	})

	t.Run("verbose flag enables debug logging", func(t *testing.T) {
		t.Setenv(domain.CondaEnvVar, "demo")

		log := mocks.NewMockLogger(gomock.NewController(t))
		log.EXPECT().SetVerbose(true)

		cli := commands.New(&mockApp{}, log)
		cli.SetArgs([]string{"--verbose"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
	})

	t.Run("v shorthand selects verbose, not version", func(t *testing.T) {
		t.Setenv(domain.CondaEnvVar, "demo")

		log := mocks.NewMockLogger(gomock.NewController(t))
		log.EXPECT().SetVerbose(true)

		var called bool
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock, log)
		cli.SetArgs([]string{"-v"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("returns error on generate failure", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, newQuietLogger(t))
		cli.SetArgs([]string{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects more than one positional argument", func(t *testing.T) {
		cli := commands.New(&mockApp{}, newQuietLogger(t))
		cli.SetArgs([]string{"one.yml", "two.yml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, newQuietLogger(t))

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{}, newQuietLogger(t))

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
