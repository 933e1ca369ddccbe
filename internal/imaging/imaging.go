// Package imaging converts uploaded images into the canonical WebP form.
//
// Normalization is best-effort: any decode or encode failure falls back to
// the original bytes, so the store holds a mix of canonical and original
// formats rather than rejecting uploads the decoder cannot handle.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xwebp "golang.org/x/image/webp"
)

const (
	DefaultQuality = 80
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Result is the outcome of a normalization attempt. When Converted is
// false, Data holds the untouched input bytes.
type Result struct {
	Data      []byte
	MimeType  string
	Suffix    string
	Converted bool
}

type Normalizer struct {
	quality int
}

func NewNormalizer(quality int) *Normalizer {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Normalizer{quality: quality}
}

// Normalize re-encodes raw into WebP at the configured quality. On any
// failure it returns a pass-through Result carrying the original bytes and
// MIME type; the error is informational only.
func (n *Normalizer) Normalize(raw []byte, declaredMime, suffix string) (Result, error) {
	passthrough := Result{
		Data:      raw,
		MimeType:  declaredMime,
		Suffix:    suffix,
		Converted: false,
	}

	if declaredMime == "image/webp" {
		// Already canonical.
		return Result{
			Data:      raw,
			MimeType:  declaredMime,
			Suffix:    ".webp",
			Converted: false,
		}, nil
	}

	img, err := decode(raw, declaredMime)
	if err != nil {
		return passthrough, fmt.Errorf("decoding image: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(n.quality)}); err != nil {
		return passthrough, fmt.Errorf("encoding webp: %w", err)
	}

	return Result{
		Data:      buf.Bytes(),
		MimeType:  "image/webp",
		Suffix:    ".webp",
		Converted: true,
	}, nil
}

func decode(raw []byte, declaredMime string) (image.Image, error) {
	switch declaredMime {
	case "image/jpeg", "image/png", "image/gif":
		// imaging applies EXIF orientation for JPEGs.
		return imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	case "image/webp":
		return xwebp.Decode(bytes.NewReader(raw))
	default:
		// No decoder wired (e.g. AVIF); callers fall back to pass-through.
		return nil, fmt.Errorf("mime type %q: %w", declaredMime, ErrUnsupportedFormat)
	}
}
