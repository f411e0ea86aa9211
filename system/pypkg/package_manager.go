package pypkg

// ProjectPackageManager resolves and installs the dependencies a project
// declares in its manifest. Version output and install behavior are owned
// entirely by the underlying tool.
type ProjectPackageManager interface {
	GetBin() string
	Version() (string, error)
	InstallDependencies() error
}
