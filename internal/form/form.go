// Package form contains utilities for reading uploaded files out of
// multipart forms.
package form

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

const (
	magicNumberSeek = 512
)

// allowedImageTypes lists the raster MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/avif": true,
	"image/gif":  true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/avif": ".avif",
	"image/gif":  ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrNoFileUploaded      = errors.New("file not uploaded")
)

type File struct {
	Name     string
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

// AllowedImageTypes returns the accepted MIME types, for error messages.
func AllowedImageTypes() []string {
	types := make([]string, 0, len(allowedImageTypes))
	for t := range allowedImageTypes {
		types = append(types, t)
	}
	return types
}

// ReadImageFile pulls the named file out of a parsed multipart form and
// verifies its content type. Sniffed magic numbers win over the declared
// Content-Type; the declared type is only trusted for formats the sniffer
// does not know (AVIF).
func ReadImageFile(r *http.Request, field string) (*File, error) {
	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, errors.Join(ErrNoFileUploaded, err)
	} else if err != nil {
		return nil, fmt.Errorf("getting file from form: %w", err)
	}
	return readFile(f, header)
}

func readFile(f multipart.File, header *multipart.FileHeader) (*File, error) {
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	if !allowedImageTypes[contentType] {
		declared := header.Header.Get("Content-Type")
		if !allowedImageTypes[declared] {
			return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
		}
		contentType = declared
	}

	return &File{
		Name:     header.Filename,
		Size:     int64(len(data)),
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
		Data:     data,
	}, nil
}
