package filestore

import (
	"regexp"
	"strings"
	"testing"
)

func TestSanitizeStem(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "photo", want: "photo"},
		{name: "uppercase", input: "IMG_1234", want: "img_1234"},
		{name: "spaces and punctuation", input: "my cool photo (1)", want: "my-cool-photo-1"},
		{name: "unicode", input: "crème brûlée", want: "cr-me-br-l-e"},
		{name: "leading junk", input: "---photo", want: "photo"},
		{name: "trailing junk", input: "photo---", want: "photo"},
		{name: "all junk falls back", input: "!!!", want: "image"},
		{name: "empty falls back", input: "", want: "image"},
		{
			name:  "long stems are truncated",
			input: strings.Repeat("a", 100),
			want:  strings.Repeat("a", 48),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeStem(tt.input); got != tt.want {
				t.Errorf("SanitizeStem(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "recipes", want: "recipes"},
		{name: "uppercase", input: "Recipes", want: "recipes"},
		{name: "path traversal stripped", input: "../etc", want: "etc"},
		{name: "slashes stripped", input: "a/b", want: "a-b"},
		{name: "empty falls back", input: "", want: DefaultCategory},
		{name: "all junk falls back", input: "../..", want: DefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeCategory(tt.input); got != tt.want {
				t.Errorf("SanitizeCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewObjectName(t *testing.T) {
	// {unix-millis}-{ulid}-{stem}{suffix}
	pattern := regexp.MustCompile(`^\d{13}-[0-9a-z]{26}-my-photo\.webp$`)

	name := NewObjectName("My Photo.jpg", ".webp")

	if !pattern.MatchString(name) {
		t.Errorf("NewObjectName() = %q, want match for %q", name, pattern)
	}
}

func TestNewObjectName_NoExtension(t *testing.T) {
	name := NewObjectName("photo", ".webp")

	if !strings.HasSuffix(name, "-photo.webp") {
		t.Errorf("NewObjectName() = %q, want suffix %q", name, "-photo.webp")
	}
}

func TestNewObjectName_Unique(t *testing.T) {
	a := NewObjectName("photo.jpg", ".webp")
	b := NewObjectName("photo.jpg", ".webp")

	if a == b {
		t.Errorf("NewObjectName() produced duplicate name %q", a)
	}
}
