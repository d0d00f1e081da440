package hotsite

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

// DefaultArchiveName is the archive base name used when a project has no slug.
const DefaultArchiveName = "hotsite"

// Archive entry names.
const (
	EntryHTML     = "index.html"
	EntryCSS      = "css/style.css"
	EntryJS       = "js/script.js"
	EntryManifest = "images/README.txt"
)

// AssetSource resolves archive-relative image paths to their content. Open
// must return an error wrapping fs.ErrNotExist for unknown paths.
type AssetSource interface {
	Open(name string) (io.ReadCloser, error)
}

// Result describes a written archive.
type Result struct {
	Name    string
	Entries []string
	// Bundled are the image files copied from the asset source.
	Bundled []string
	// Missing are referenced local images the asset source did not have.
	Missing []string
}

// ArchiveName returns "<slug>.zip", falling back to "<fallback>.zip" and then
// to DefaultArchiveName when the slug is empty.
func ArchiveName(full *project.Full, fallback string) string {
	base := ""
	if full != nil {
		base = full.Slug
	}
	if base == "" {
		base = fallback
	}
	if base == "" {
		base = DefaultArchiveName
	}
	return base + ".zip"
}

// WriteArchive writes the zip for a generated hotsite to w. When assets is
// non-nil every local image the page references is bundled; images the source
// does not have are listed in Result.Missing. The context is checked between
// entries.
func WriteArchive(ctx context.Context, w io.Writer, a Artifacts, full *project.Full, assets AssetSource) (*Result, error) {
	if full == nil {
		return nil, ErrNilProject
	}

	res := &Result{Name: ArchiveName(full, "")}
	zw := zip.NewWriter(w)

	files := []struct {
		name string
		body string
	}{
		{EntryHTML, a.HTML},
		{EntryCSS, a.CSS},
		{EntryJS, a.JS},
		{EntryManifest, Manifest(full)},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := createEntry(zw, f.name)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(entry, f.body); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}
		res.Entries = append(res.Entries, f.name)
	}

	if assets != nil {
		for _, ref := range LocalAssets(full) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			name, ok := entryName(ref)
			if !ok {
				res.Missing = append(res.Missing, ref)
				continue
			}
			bundled, err := copyAsset(zw, assets, ref, name)
			if err != nil {
				return nil, err
			}
			if !bundled {
				res.Missing = append(res.Missing, ref)
				continue
			}
			res.Bundled = append(res.Bundled, name)
			res.Entries = append(res.Entries, name)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return res, nil
}

// SaveArchive writes the archive to dest through a temporary file in the same
// directory, so dest only ever holds a complete archive.
func SaveArchive(ctx context.Context, dest string, a Artifacts, full *project.Full, assets AssetSource) (*Result, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".walka-*.zip.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	res, err := WriteArchive(ctx, tmp, a, full, assets)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err != nil {
		os.Remove(tmpPath)
		return nil, err
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("renaming archive: %w", err)
	}
	return res, nil
}

func createEntry(zw *zip.Writer, name string) (io.Writer, error) {
	entry, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return entry, nil
}

// entryName cleans a page reference into an archive path. References that
// would escape the archive root are rejected.
func entryName(ref string) (string, bool) {
	name := path.Clean(strings.ReplaceAll(ref, "\\", "/"))
	if name == "." || path.IsAbs(name) || name == ".." || strings.HasPrefix(name, "../") {
		return "", false
	}
	return name, true
}

func copyAsset(zw *zip.Writer, assets AssetSource, ref, name string) (bool, error) {
	rc, err := assets.Open(ref)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening asset %s: %w", ref, err)
	}
	defer rc.Close()

	entry, err := createEntry(zw, name)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(entry, rc); err != nil {
		return false, fmt.Errorf("copying asset %s: %w", ref, err)
	}
	return true, nil
}
