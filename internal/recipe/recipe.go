// Package recipe contains the recipe document model and the image-link
// logic over it.
package recipe

import (
	"errors"
	"fmt"
	"time"
)

// Recipe is the document the admin UI edits. The three image fields share
// one URL namespace; a URL may appear in any number of recipes and roles.
type Recipe struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Img         string    `json:"img,omitempty"`
	HeroImage   string    `json:"heroImage,omitempty"`
	Images      []string  `json:"images"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Role says how an image is used within a recipe.
type Role string

const (
	RoleMain       Role = "main"
	RoleHero       Role = "hero"
	RoleAdditional Role = "additional"
)

var ErrInvalidRole = errors.New("invalid image role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleMain, RoleHero, RoleAdditional:
		return Role(s), nil
	}
	return "", fmt.Errorf("role %q: %w", s, ErrInvalidRole)
}

func (r Role) String() string {
	return string(r)
}

// Link attaches url to the recipe under the given role. Main and hero are
// overwritten unconditionally. Additional appends only when the url is not
// already present, keeping first-insertion order.
func (rec *Recipe) Link(url string, role Role) {
	switch role {
	case RoleMain:
		rec.Img = url
	case RoleHero:
		rec.HeroImage = url
	case RoleAdditional:
		for _, existing := range rec.Images {
			if existing == url {
				return
			}
		}
		rec.Images = append(rec.Images, url)
	}
}

// Unlink detaches url from the recipe for the given role. Main and hero are
// cleared; additional drops every occurrence, not just the first.
func (rec *Recipe) Unlink(url string, role Role) {
	switch role {
	case RoleMain:
		rec.Img = ""
	case RoleHero:
		rec.HeroImage = ""
	case RoleAdditional:
		kept := rec.Images[:0]
		for _, existing := range rec.Images {
			if existing != url {
				kept = append(kept, existing)
			}
		}
		rec.Images = kept
	}
}
