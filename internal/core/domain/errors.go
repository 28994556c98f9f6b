package domain

import "go.trai.ch/zerr"

var (
	// ErrNoActiveEnvironment is returned when no environment file is given and no conda environment is active.
	ErrNoActiveEnvironment = zerr.New("no active conda environment")

	// ErrBaseEnvironment is returned when the active conda environment is 'base'.
	ErrBaseEnvironment = zerr.New("the 'base' conda environment is active, activate another environment")

	// ErrSpecFileNotFound is returned when the given environment file does not exist.
	ErrSpecFileNotFound = zerr.New("environment file not found")

	// ErrSpecReadFailed is returned when the environment file cannot be read.
	ErrSpecReadFailed = zerr.New("failed to read environment file")

	// ErrSpecParseFailed is returned when the environment file cannot be parsed.
	ErrSpecParseFailed = zerr.New("failed to parse environment file")

	// ErrCondaExportFailed is returned when exporting the active conda environment fails.
	ErrCondaExportFailed = zerr.New("failed to export conda environment")

	// ErrCondaListFailed is returned when listing the installed conda packages fails.
	ErrCondaListFailed = zerr.New("failed to run conda list")

	// ErrRequirementsWriteFailed is returned when the requirements file cannot be written.
	ErrRequirementsWriteFailed = zerr.New("failed to write requirements file")
)
