package file

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scuzzie/errors"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	AppFs = fs
	t.Cleanup(func() {
		AppFs = afero.NewOsFs()
	})
	return fs
}

func TestIsFile(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	fs := useMemFs(t)
	require.NoError(afero.WriteFile(fs, "/data/file.txt", []byte("x"), 0o644))
	require.NoError(fs.MkdirAll("/data/dir", 0o755))

	isFile, err := IsFile("/data/file.txt")
	require.NoError(err)
	assert.True(isFile)

	isFile, err = IsFile("/data/dir")
	require.NoError(err)
	assert.False(isFile)

	isFile, err = IsFile("/data/missing")
	require.NoError(err)
	assert.False(isFile)
}

func TestReadFile_NotFound(t *testing.T) {
	require := require.New(t)

	useMemFs(t)

	_, err := ReadFile("/missing.toml")
	require.Error(err)

	var notFound *errors.ConfigNotFoundError
	require.ErrorAs(err, &notFound)
}

func TestWriteFile_CreatesParents(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	useMemFs(t)

	require.NoError(WriteFile("/a/b/c/file.toml", []byte("data")))

	data, err := ReadFile("/a/b/c/file.toml")
	require.NoError(err)
	assert.Equal([]byte("data"), data)
}

func TestReadDirNames(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	fs := useMemFs(t)
	require.NoError(fs.MkdirAll("/volumes/volume-two", 0o755))
	require.NoError(fs.MkdirAll("/volumes/volume-one", 0o755))
	require.NoError(afero.WriteFile(fs, "/volumes/stray.txt", []byte("x"), 0o644))

	names, err := ReadDirNames("/volumes")
	require.NoError(err)
	assert.Equal([]string{"volume-one", "volume-two"}, names, "directories only, sorted")

	// a missing directory is created rather than reported
	names, err = ReadDirNames("/pages")
	require.NoError(err)
	assert.Empty(names)
}
