package assets

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxFileSize is the largest image bundled into an archive (10 MB).
const DefaultMaxFileSize int64 = 10 << 20

// imagesPrefix is the archive folder page references point into.
const imagesPrefix = "images/"

// File holds metadata about one image found in the assets directory.
type File struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash path relative to the root directory.
	Size    int64
}

// Config controls a scan.
type Config struct {
	RootDir     string
	Include     []string // Glob patterns; only matching files are kept.
	Exclude     []string // Glob patterns; matching files are dropped.
	MaxFileSize int64    // 0 means DefaultMaxFileSize.
}

// Scan walks cfg.RootDir and returns every file that passes the filters,
// sorted by relative path.
func Scan(cfg Config) ([]File, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", root)
	}

	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []File
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			if p != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		if !MatchesInclude(rel, cfg.Include) || MatchesExclude(rel, cfg.Exclude) {
			return nil
		}

		fi, err := d.Info()
		if err != nil || fi.Size() > maxSize {
			return nil
		}

		files = append(files, File{Path: p, RelPath: filepath.ToSlash(rel), Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// Dir is a scanned assets directory that resolves page image references.
type Dir struct {
	root  string
	files map[string]File
}

// OpenDir scans cfg.RootDir once and indexes the result.
func OpenDir(cfg Config) (*Dir, error) {
	files, err := Scan(cfg)
	if err != nil {
		return nil, err
	}
	d := &Dir{root: cfg.RootDir, files: make(map[string]File, len(files))}
	for _, f := range files {
		d.files[f.RelPath] = f
	}
	return d, nil
}

// Root returns the directory the index was built from.
func (d *Dir) Root() string { return d.root }

// Len returns the number of indexed files.
func (d *Dir) Len() int { return len(d.files) }

// Lookup finds the file for a page reference. "images/hero.jpg" matches
// either images/hero.jpg or hero.jpg at the root of the directory.
func (d *Dir) Lookup(ref string) (File, bool) {
	name := path.Clean(strings.ReplaceAll(ref, "\\", "/"))
	if f, ok := d.files[name]; ok {
		return f, true
	}
	if trimmed := strings.TrimPrefix(name, imagesPrefix); trimmed != name {
		if f, ok := d.files[trimmed]; ok {
			return f, true
		}
	}
	return File{}, false
}

// Open returns the content of a referenced image. Unknown references yield
// an error wrapping fs.ErrNotExist.
func (d *Dir) Open(ref string) (io.ReadCloser, error) {
	f, ok := d.Lookup(ref)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: ref, Err: fs.ErrNotExist}
	}
	return os.Open(f.Path)
}
