// Package fileserver contains utilities for interacting with the local
// uploads volume.
package fileserver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	directoryPerms = 0o755
)

var ErrPathEscapesBase = errors.New("path escapes base directory")

type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

type FileServer struct {
	baseDir string
}

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	return f.baseDir
}

// resolve joins path onto the base directory, rejecting anything that
// would land outside of it.
func (f *FileServer) resolve(path string) (string, error) {
	fullpath := filepath.Join(f.baseDir, filepath.Clean("/"+path))
	base := filepath.Clean(f.baseDir)
	if fullpath != base && !strings.HasPrefix(fullpath, base+string(filepath.Separator)) {
		return "", ErrPathEscapesBase
	}
	return fullpath, nil
}

func (f *FileServer) Write(path string, data []byte) (location string, n int, err error) {
	if f == nil {
		return "", 0, nil
	}

	fullpath, err := f.resolve(path)
	if err != nil {
		return "", 0, err
	}
	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return "", 0, fmt.Errorf("creating parent directories: %w", err)
	}

	file, err := os.Create(fullpath)
	if err != nil {
		return "", 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = file.Close() }()

	n, err = file.Write(data)
	if err != nil {
		return "", 0, fmt.Errorf("writing file: %w", err)
	}

	return fullpath, n, nil
}

func (f *FileServer) Exists(path string) (bool, error) {
	if f == nil {
		return false, nil
	}
	fullpath, err := f.resolve(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(fullpath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (f *FileServer) Delete(path string) error {
	if f == nil {
		return nil
	}
	fullpath, err := f.resolve(path)
	if err != nil {
		return err
	}
	return os.Remove(fullpath)
}

// List returns the regular files directly under dir, newest first.
func (f *FileServer) List(dir string) ([]Entry, error) {
	if f == nil {
		return nil, nil
	}
	fullpath, err := f.resolve(dir)
	if err != nil {
		return nil, err
	}

	dirents, err := os.ReadDir(fullpath)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		info, err := d.Info()
		if err != nil {
			return nil, fmt.Errorf("stating %q: %w", d.Name(), err)
		}
		entries = append(entries, Entry{
			Name:    d.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})

	return entries, nil
}
