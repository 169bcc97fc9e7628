package gosbml

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gosbml/gosbml/sbml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"good.xml":   {Data: []byte(simpleL2)},
		"broken.xml": {Data: []byte("<sbml><model>")},
		"html.xml":   {Data: []byte("<html/>")},
	}
	results, err := ReadAll(context.Background(), FS("t", fsys))
	require.NoError(t, err)
	require.Len(t, results, 3)

	byPath := map[string]*Document{}
	for _, r := range results {
		byPath[r.Path] = r.Document
	}
	assert.Equal(t, 0, byPath["t:good.xml"].NumFatals())
	assert.Equal(t, 1, byPath["t:good.xml"].Model().NumSpecies())
	for _, bad := range []string{"t:broken.xml", "t:html.xml"} {
		m, ok := byPath[bad].Fatal(0)
		require.True(t, ok, bad)
		assert.Equal(t, sbml.MsgNotSBML, m.ID, bad)
	}
}

func TestReadAllKeepsListingOrder(t *testing.T) {
	root := writeTree(t, map[string]string{"a.xml": simpleL2, "b.xml": simpleL2, "c.xml": simpleL2})
	src, err := Dir(root)
	require.NoError(t, err)
	results, err := ReadAll(context.Background(), src)
	require.NoError(t, err)
	for i, name := range []string{"a.xml", "b.xml", "c.xml"} {
		assert.Equal(t, filepath.Join(root, name), results[i].Path)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.xml")
	results, err := ReadAll(context.Background(), Files(missing))
	require.NoError(t, err)
	require.Len(t, results, 1)
	m, ok := results[0].Document.Fatal(0)
	require.True(t, ok)
	assert.Equal(t, sbml.MsgFileNotFound, m.ID)
}

func TestReadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadAll(ctx, FS("t", fstest.MapFS{"a.xml": {Data: []byte(simpleL2)}}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadAllAppliesOptions(t *testing.T) {
	fsys := fstest.MapFS{"a.xml": {Data: []byte(`<sbml level="2" version="1"><model><widget/></model></sbml>`)}}
	results, err := ReadAll(context.Background(), FS("t", fsys),
		WithDiagnosticConfig(DiagnosticConfig{Ignore: []string{"unknown-*"}}))
	require.NoError(t, err)
	assert.Equal(t, 0, results[0].Document.NumMessages())
}
