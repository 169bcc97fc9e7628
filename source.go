package gosbml

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions are the file extensions recognized as SBML files.
var DefaultExtensions = []string{".xml", ".sbml"}

// Source lists SBML files for batch reading.
type Source interface {
	// ListFiles returns the paths of all SBML files known to the
	// source, in a stable order.
	ListFiles() ([]string, error)

	// Open opens a path returned by ListFiles.
	Open(path string) (io.ReadCloser, error)
}

// SourceOption configures a source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	extensions []string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		extensions: DefaultExtensions,
	}
}

// WithExtensions sets the file extensions to recognize for this source.
func WithExtensions(exts ...string) SourceOption {
	return func(c *sourceConfig) {
		c.extensions = exts
	}
}

func newSourceConfig(opts []SourceOption) sourceConfig {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// --- Dir Source (single directory) ---

type dirSource struct {
	path   string
	config sourceConfig
}

// Dir creates a Source for the files of a single directory (no
// recursion).
func Dir(path string, opts ...SourceOption) (Source, error) {
	if err := checkDir(path); err != nil {
		return nil, err
	}
	return &dirSource{path: path, config: newSourceConfig(opts)}, nil
}

func (s *dirSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.path, entry.Name())
		if hasValidExtension(path, extSet) {
			files = append(files, path)
		}
	}
	return files, nil
}

func (s *dirSource) Open(path string) (io.ReadCloser, error) { return os.Open(path) }

// --- DirTree Source (recursive directory) ---

type treeSource struct {
	root   string
	config sourceConfig
}

// DirTree creates a Source for every matching file below root.
func DirTree(root string, opts ...SourceOption) (Source, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}
	return &treeSource{root: root, config: newSourceConfig(opts)}, nil
}

func (s *treeSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && hasValidExtension(path, extSet) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func (s *treeSource) Open(path string) (io.ReadCloser, error) { return os.Open(path) }

// --- FS Source (for embed.FS, testing) ---

type fsSource struct {
	name   string
	fsys   fs.FS
	config sourceConfig
}

// FS creates a Source backed by an fs.FS (e.g., embed.FS). Listed paths
// are prefixed with name and a colon.
func FS(name string, fsys fs.FS, opts ...SourceOption) Source {
	return &fsSource{name: name, fsys: fsys, config: newSourceConfig(opts)}
}

func (s *fsSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	var files []string
	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && hasValidExtension(path, extSet) {
			files = append(files, s.name+":"+path)
		}
		return nil
	})
	return files, err
}

func (s *fsSource) Open(path string) (io.ReadCloser, error) {
	rel, ok := strings.CutPrefix(path, s.name+":")
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return s.fsys.Open(rel)
}

// --- Files Source (explicit list) ---

type filesSource struct {
	paths []string
}

// Files creates a Source for an explicit list of paths, whatever their
// extension.
func Files(paths ...string) Source {
	return &filesSource{paths: slices.Clone(paths)}
}

func (s *filesSource) ListFiles() ([]string, error) { return slices.Clone(s.paths), nil }

func (s *filesSource) Open(path string) (io.ReadCloser, error) { return os.Open(path) }

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one. Files are listed in source
// order; Open asks the first source that listed the path.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) ListFiles() ([]string, error) {
	var files []string
	for _, src := range s.sources {
		f, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, f...)
	}
	return files, nil
}

func (s *multiSource) Open(path string) (io.ReadCloser, error) {
	for _, src := range s.sources {
		files, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		if slices.Contains(files, path) {
			return src.Open(path)
		}
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

// --- Helpers ---

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	return nil
}

func makeExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func hasValidExtension(path string, extSet map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extSet[ext]
	return ok
}
