package domain

// EnvironmentSpec is a parsed environment description: the environment
// name, its channels, and the ordered list of requested package names
// (conda- and pip-managed, versions stripped).
type EnvironmentSpec struct {
	Name      string
	Channels  []string
	Requested []PackageName
}

// SourceRequest tells the source resolver where the environment
// description comes from. A non-empty SpecPath selects file mode;
// otherwise the active environment named by ActiveEnv is exported.
type SourceRequest struct {
	SpecPath  string
	ActiveEnv string
}
