package fileserver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestFileServer(t *testing.T) (*FileServer, string) {
	t.Helper()
	base := t.TempDir()
	return New(base), base
}

func TestResolve_Valid(t *testing.T) {
	fs, base := newTestFileServer(t)

	tests := []struct {
		name     string
		path     string
		expected string // expected relative part under base
	}{
		{
			name:     "simple relative path",
			path:     "recipes/a.webp",
			expected: filepath.Join("recipes", "a.webp"),
		},
		{
			name:     "path with dot segments",
			path:     "./recipes/./a.webp",
			expected: filepath.Join("recipes", "a.webp"),
		},
		{
			name:     "inner dot-dot stays inside",
			path:     "recipes/2025/../a.webp",
			expected: filepath.Join("recipes", "a.webp"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.resolve(tt.path)
			if err != nil {
				t.Fatalf("resolve() returned unexpected error: %v", err)
			}
			want := filepath.Join(base, tt.expected)
			if got != want {
				t.Errorf("resolve() = %q, want %q", got, want)
			}
		})
	}
}

func TestResolve_Escapes(t *testing.T) {
	fs, _ := newTestFileServer(t)

	tests := []struct {
		name string
		path string
	}{
		{name: "starts with dot-dot", path: "../secret.txt"},
		{name: "cleaned becomes dot-dot", path: "foo/../../secret.txt"},
		{name: "absolute path outside base", path: "/etc/passwd/../../passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.resolve(tt.path)

			// Leading separators are stripped before joining, so nothing
			// should ever land outside the base.
			if err != nil && !errors.Is(err, ErrPathEscapesBase) {
				t.Fatalf("resolve(%q) error = %v, want ErrPathEscapesBase", tt.path, err)
			}
			if err == nil && !filepath.IsAbs(got) {
				t.Fatalf("resolve(%q) = %q, expected absolute path", tt.path, got)
			}
		})
	}
}

func TestWriteAndExists(t *testing.T) {
	fs, base := newTestFileServer(t)
	data := []byte("image data")

	location, n, err := fs.Write("recipes/a.webp", data)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(data) {
		t.Errorf("Write() n = %d, want %d", n, len(data))
	}
	if location != filepath.Join(base, "recipes", "a.webp") {
		t.Errorf("Write() location = %q, want file under base", location)
	}

	exists, err := fs.Exists("recipes/a.webp")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false after Write(), want true")
	}
}

func TestDelete(t *testing.T) {
	fs, _ := newTestFileServer(t)

	if _, _, err := fs.Write("recipes/a.webp", []byte("x")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := fs.Delete("recipes/a.webp"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	exists, err := fs.Exists("recipes/a.webp")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true after Delete(), want false")
	}
}

func TestList_NewestFirst(t *testing.T) {
	fs, base := newTestFileServer(t)

	if _, _, err := fs.Write("recipes/old.webp", []byte("x")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, _, err := fs.Write("recipes/new.webp", []byte("xy")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	// Filesystem timestamps can be coarse; force a visible ordering.
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(filepath.Join(base, "recipes", "old.webp"), past, past); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	entries, err := fs.List("recipes")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "new.webp" || entries[1].Name != "old.webp" {
		t.Errorf("List() order = [%s, %s], want newest first", entries[0].Name, entries[1].Name)
	}
	if entries[1].Size != 1 {
		t.Errorf("entry size = %d, want 1", entries[1].Size)
	}
}

func TestList_SkipsDirectories(t *testing.T) {
	fs, base := newTestFileServer(t)

	if _, _, err := fs.Write("recipes/a.webp", []byte("x")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Join(base, "recipes", "nested"), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	entries, err := fs.List("recipes")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List() returned %d entries, want 1 (directories skipped)", len(entries))
	}
}

func TestList_MissingDirectory(t *testing.T) {
	fs, _ := newTestFileServer(t)

	entries, err := fs.List("missing")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("List() = %v, want empty", entries)
	}
}

func TestNilReceiver(t *testing.T) {
	var fs *FileServer

	if _, _, err := fs.Write("a", nil); err != nil {
		t.Errorf("Write() on nil receiver error = %v", err)
	}
	if _, err := fs.Exists("a"); err != nil {
		t.Errorf("Exists() on nil receiver error = %v", err)
	}
	if err := fs.Delete("a"); err != nil {
		t.Errorf("Delete() on nil receiver error = %v", err)
	}
	if _, err := fs.List("a"); err != nil {
		t.Errorf("List() on nil receiver error = %v", err)
	}
}
