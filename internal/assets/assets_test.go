package assets

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assetsDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "hero.jpg", "hero")
	writeFile(t, root, "icon-check.svg", "<svg/>")
	writeFile(t, root, "gallery/g1.JPG", "g1")
	writeFile(t, root, "notes.txt", "not an image")
	writeFile(t, root, "node_modules/pkg/logo.png", "skipped")
	writeFile(t, root, "dist/old.png", "skipped")
	return root
}

func relPaths(files []File) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestScan_DefaultPatterns(t *testing.T) {
	files, err := Scan(Config{RootDir: assetsDir(t), Include: DefaultPatterns})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	got := relPaths(files)
	want := []string{"gallery/g1.JPG", "hero.jpg", "icon-check.svg"}
	if len(got) != len(want) {
		t.Fatalf("Scan() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScan_Exclude(t *testing.T) {
	files, err := Scan(Config{RootDir: assetsDir(t), Include: DefaultPatterns, Exclude: []string{"gallery/**"}})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	for _, f := range files {
		if f.RelPath == "gallery/g1.JPG" {
			t.Error("excluded file was returned")
		}
	}
}

func TestScan_SkipsLargeFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.png", "0123456789")
	writeFile(t, root, "small.png", "01")

	files, err := Scan(Config{RootDir: root, MaxFileSize: 5})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "small.png" {
		t.Errorf("Scan() = %v, want only small.png", relPaths(files))
	}
}

func TestScan_MissingRoot(t *testing.T) {
	if _, err := Scan(Config{RootDir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestDir_Open(t *testing.T) {
	d, err := OpenDir(Config{RootDir: assetsDir(t), Include: DefaultPatterns})
	if err != nil {
		t.Fatalf("OpenDir() error: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}

	tests := []struct {
		ref, want string
	}{
		{"images/hero.jpg", "hero"},
		{"hero.jpg", "hero"},
		{"gallery/g1.JPG", "g1"},
		{"./images/icon-check.svg", "<svg/>"},
	}
	for _, tt := range tests {
		rc, err := d.Open(tt.ref)
		if err != nil {
			t.Errorf("Open(%q) error: %v", tt.ref, err)
			continue
		}
		body, _ := io.ReadAll(rc)
		rc.Close()
		if string(body) != tt.want {
			t.Errorf("Open(%q) = %q, want %q", tt.ref, body, tt.want)
		}
	}

	if _, err := d.Open("images/missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestValidPatterns(t *testing.T) {
	if p, ok := ValidPatterns(DefaultPatterns); !ok {
		t.Errorf("default pattern %q reported invalid", p)
	}
	if _, ok := ValidPatterns([]string{"images/[a-"}); ok {
		t.Error("expected malformed pattern to be rejected")
	}
}
