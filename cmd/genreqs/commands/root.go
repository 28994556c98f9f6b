// Package commands implements the CLI for genreqs.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/genreqs/internal/app"
	"go.trai.ch/genreqs/internal/build"
	"go.trai.ch/genreqs/internal/core/domain"
	"go.trai.ch/genreqs/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for genreqs.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: log,
	}

	rootCmd := &cobra.Command{
		Use:   "genreqs [environment.yml]",
		Short: "Generate a pinned requirements.txt from a conda environment",
		Long: `genreqs converts a conda environment description into a pinned requirements.txt.

Given an environment.yml file it pins every listed package to the version
currently installed. Without a file it exports the active conda environment
(anything but base) and pins that instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runGenerate,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.Flags().StringP("output", "o", domain.DefaultOutputFile, "Output file for the pinned requirements")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug diagnostics")

	// Registered after the flags above so cobra sees the 'v' shorthand is
	// taken and falls back to a long-only --version.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		c.logger.SetVerbose(true)
	}

	output, _ := cmd.Flags().GetString("output")

	var specPath string
	if len(args) == 1 {
		specPath = args[0]
		if _, err := os.Stat(specPath); err != nil {
			return zerr.With(domain.ErrSpecFileNotFound, "path", specPath)
		}
	}

	return c.app.Generate(cmd.Context(), app.GenerateOptions{
		SpecPath:   specPath,
		ActiveEnv:  os.Getenv(domain.CondaEnvVar),
		OutputPath: output,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
