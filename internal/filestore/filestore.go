// Package filestore provides the category-partitioned store for uploaded
// images. Two drivers exist: the local uploads volume and an S3-compatible
// bucket.
package filestore

import (
	"context"
	"strings"
	"time"
)

const (
	DefaultURLPrefix = "/uploads"
)

// Object describes a stored image. The URL path is the only identifier
// clients hold.
type Object struct {
	Filename   string
	Category   string
	URL        string
	Size       int64
	UploadedAt time.Time
}

type Store interface {
	Write(ctx context.Context, category, filename string, data []byte, contentType string) (urlPath string, err error)
	Exists(ctx context.Context, category, filename string) (bool, error)
	Delete(ctx context.Context, category, filename string) error
	List(ctx context.Context, category string) ([]Object, error)

	URLPath(category, filename string) string
	FileURL(urlPath string) string
}

func urlPath(prefix, category, filename string) string {
	return "/" + strings.Trim(prefix, "/") + "/" + category + "/" + filename
}

func fileURL(host, urlpath string) string {
	return strings.TrimRight(host, "/") + "/" + strings.TrimLeft(urlpath, "/")
}
