package scuzzietest

// FakePackageManager satisfies pypkg.ProjectPackageManager and records how
// often each operation is invoked.
type FakePackageManager struct {
	Bin          string
	VersionStr   string
	VersionErr   error
	InstallErr   error
	VersionCalls int
	InstallCalls int
}

func NewFakePackageManager(version string) *FakePackageManager {
	return &FakePackageManager{
		Bin:        "poetry",
		VersionStr: version,
	}
}

func (f *FakePackageManager) GetBin() string {
	return f.Bin
}

func (f *FakePackageManager) Version() (string, error) {
	f.VersionCalls++
	if f.VersionErr != nil {
		return "", f.VersionErr
	}
	return f.VersionStr, nil
}

func (f *FakePackageManager) InstallDependencies() error {
	f.InstallCalls++
	return f.InstallErr
}

// FakeExitError mimics the ExitCode surface of exec.ExitError.
type FakeExitError struct {
	Code int
	Msg  string
}

func (e *FakeExitError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "exit status"
}

func (e *FakeExitError) ExitCode() int {
	return e.Code
}
