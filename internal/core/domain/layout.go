package domain

const (
	// DefaultOutputFile is the requirements file written when no --output flag is given.
	DefaultOutputFile = "requirements.txt"

	// CondaEnvVar is the environment variable conda sets to the name of the active environment.
	CondaEnvVar = "CONDA_DEFAULT_ENV"

	// BaseEnvName is the conda environment that is excluded from export by policy.
	BaseEnvName = "base"

	// FilePerm is the default permission for generated files (rw-r--r--).
	FilePerm = 0o644
)
