package gosbml

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestDirRejectsBadPaths(t *testing.T) {
	_, err := Dir("/this/path/does/not/exist/at/all")
	assert.Error(t, err)

	root := writeTree(t, map[string]string{"a.xml": simpleL2})
	_, err = Dir(filepath.Join(root, "a.xml"))
	assert.Error(t, err, "a file is not a directory")
	_, err = DirTree(filepath.Join(root, "a.xml"))
	assert.Error(t, err)
}

func TestDirListsMatchingFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.xml":        simpleL2,
		"b.SBML":       simpleL2,
		"notes.txt":    "ignore me",
		"sub/c.xml":    simpleL2,
		"sub/deep/d.x": "",
	})

	src, err := Dir(root)
	require.NoError(t, err)
	files, err := src.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.xml"), filepath.Join(root, "b.SBML")}, files)

	tree, err := DirTree(root)
	require.NoError(t, err)
	files, err = tree.ListFiles()
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Contains(t, files, filepath.Join(root, "sub", "c.xml"))

	only, err := Dir(root, WithExtensions(".txt"))
	require.NoError(t, err)
	files, err = only.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "notes.txt")}, files)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"models/a.xml": {Data: []byte(simpleL2)},
		"readme.md":    {Data: []byte("#")},
	}
	src := FS("embedded", fsys)
	files, err := src.ListFiles()
	require.NoError(t, err)
	require.Equal(t, []string{"embedded:models/a.xml"}, files)

	r, err := src.Open(files[0])
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, simpleL2, string(data))

	_, err = src.Open("models/a.xml")
	assert.Error(t, err, "paths must carry the source name")
}

func TestMultiSource(t *testing.T) {
	one := FS("one", fstest.MapFS{"a.xml": {Data: []byte("A")}})
	two := FS("two", fstest.MapFS{"b.xml": {Data: []byte("B")}})
	src := Multi(one, two)

	files, err := src.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"one:a.xml", "two:b.xml"}, files)

	r, err := src.Open("two:b.xml")
	require.NoError(t, err)
	data, _ := io.ReadAll(r)
	assert.Equal(t, "B", string(data))

	_, err = src.Open("three:c.xml")
	assert.Error(t, err)
}
