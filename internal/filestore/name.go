package filestore

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	maxStemLength   = 48
	fallbackStem    = "image"
	DefaultCategory = "recipes"
)

// NewObjectName builds a collision-resistant object name from the original
// filename. Uniqueness comes from the millisecond timestamp plus a ULID; the
// sanitized stem is kept for operator readability only.
func NewObjectName(originalName, suffix string) string {
	stem := originalName
	if idx := strings.LastIndex(stem, "."); idx != -1 {
		stem = stem[:idx]
	}
	return fmt.Sprintf("%d-%s-%s%s",
		time.Now().UnixMilli(),
		strings.ToLower(ulid.Make().String()),
		SanitizeStem(stem),
		suffix)
}

// SanitizeStem lowercases the stem and collapses anything outside
// [a-z0-9_-] into single dashes.
func SanitizeStem(stem string) string {
	var b strings.Builder
	lastDash := true // trims leading dashes
	for _, r := range strings.ToLower(stem) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if len(out) > maxStemLength {
		out = out[:maxStemLength]
		out = strings.TrimRight(out, "-")
	}
	if out == "" {
		return fallbackStem
	}
	return out
}

// SanitizeCategory restricts a category to a single safe path segment.
// An empty or fully-stripped category falls back to the default.
func SanitizeCategory(category string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(category) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return DefaultCategory
	}
	return out
}
