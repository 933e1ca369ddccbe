package filestore

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/forkfeed/forkfeed/internal/fileserver"
)

var ErrNotFound = errors.New("object not found")

// Local stores objects on the uploads volume, one directory per category.
type Local struct {
	urlPrefix string
	host      string
	fs        *fileserver.FileServer
}

var _ Store = (*Local)(nil)

func NewLocal(baseDirectory, urlPrefix, host string) *Local {
	return &Local{
		urlPrefix: urlPrefix,
		host:      host,
		fs:        fileserver.New(baseDirectory),
	}
}

func (l *Local) Write(ctx context.Context, category, filename string, data []byte, contentType string) (string, error) {
	_, _, err := l.fs.Write(filepath.Join(category, filename), data)
	if err != nil {
		return "", err
	}
	return l.URLPath(category, filename), nil
}

func (l *Local) Exists(ctx context.Context, category, filename string) (bool, error) {
	return l.fs.Exists(filepath.Join(category, filename))
}

func (l *Local) Delete(ctx context.Context, category, filename string) error {
	err := l.fs.Delete(filepath.Join(category, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (l *Local) List(ctx context.Context, category string) ([]Object, error) {
	entries, err := l.fs.List(category)
	if err != nil {
		return nil, err
	}

	objects := make([]Object, 0, len(entries))
	for _, e := range entries {
		objects = append(objects, Object{
			Filename:   e.Name,
			Category:   category,
			URL:        l.URLPath(category, e.Name),
			Size:       e.Size,
			UploadedAt: e.ModTime,
		})
	}
	return objects, nil
}

func (l *Local) URLPath(category, filename string) string {
	return urlPath(l.urlPrefix, category, filename)
}

func (l *Local) FileURL(urlpath string) string {
	return fileURL(l.host, urlpath)
}

// BaseDirectory exposes the volume root for static file serving.
func (l *Local) BaseDirectory() string {
	return l.fs.BaseDirectory()
}
