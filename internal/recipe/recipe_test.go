package recipe

import (
	"errors"
	"slices"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "main", input: "main", want: RoleMain},
		{name: "hero", input: "hero", want: RoleHero},
		{name: "additional", input: "additional", want: RoleAdditional},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "thumbnail", wantErr: true},
		{name: "case sensitive", input: "Main", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRole(%q) = %q, expected error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidRole) {
					t.Fatalf("ParseRole(%q) error = %v, want ErrInvalidRole", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q) returned unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLink_MainOverwrites(t *testing.T) {
	rec := Recipe{Img: "/uploads/recipes/old.webp"}

	rec.Link("/uploads/recipes/new.webp", RoleMain)

	if rec.Img != "/uploads/recipes/new.webp" {
		t.Errorf("Img = %q, want %q", rec.Img, "/uploads/recipes/new.webp")
	}
}

func TestLink_HeroOverwrites(t *testing.T) {
	rec := Recipe{HeroImage: "/uploads/recipes/old.webp"}

	rec.Link("/uploads/recipes/new.webp", RoleHero)

	if rec.HeroImage != "/uploads/recipes/new.webp" {
		t.Errorf("HeroImage = %q, want %q", rec.HeroImage, "/uploads/recipes/new.webp")
	}
}

func TestLink_MainDoesNotTouchOtherRoles(t *testing.T) {
	rec := Recipe{
		Img:       "/uploads/recipes/a.webp",
		HeroImage: "/uploads/recipes/b.webp",
		Images:    []string{"/uploads/recipes/c.webp"},
	}

	rec.Link("/uploads/recipes/d.webp", RoleMain)

	if rec.HeroImage != "/uploads/recipes/b.webp" {
		t.Errorf("HeroImage = %q, should be untouched", rec.HeroImage)
	}
	if !slices.Equal(rec.Images, []string{"/uploads/recipes/c.webp"}) {
		t.Errorf("Images = %v, should be untouched", rec.Images)
	}
}

func TestLink_AdditionalAppends(t *testing.T) {
	rec := Recipe{Images: []string{"/uploads/recipes/a.webp"}}

	rec.Link("/uploads/recipes/b.webp", RoleAdditional)

	want := []string{"/uploads/recipes/a.webp", "/uploads/recipes/b.webp"}
	if !slices.Equal(rec.Images, want) {
		t.Errorf("Images = %v, want %v", rec.Images, want)
	}
}

func TestLink_AdditionalIsIdempotent(t *testing.T) {
	rec := Recipe{Images: []string{"/uploads/recipes/a.webp"}}

	rec.Link("/uploads/recipes/a.webp", RoleAdditional)
	rec.Link("/uploads/recipes/a.webp", RoleAdditional)

	want := []string{"/uploads/recipes/a.webp"}
	if !slices.Equal(rec.Images, want) {
		t.Errorf("Images = %v, want %v (no duplicates)", rec.Images, want)
	}
}

func TestLink_AdditionalKeepsInsertionOrder(t *testing.T) {
	rec := Recipe{}

	rec.Link("/uploads/recipes/b.webp", RoleAdditional)
	rec.Link("/uploads/recipes/a.webp", RoleAdditional)
	rec.Link("/uploads/recipes/b.webp", RoleAdditional)
	rec.Link("/uploads/recipes/c.webp", RoleAdditional)

	want := []string{"/uploads/recipes/b.webp", "/uploads/recipes/a.webp", "/uploads/recipes/c.webp"}
	if !slices.Equal(rec.Images, want) {
		t.Errorf("Images = %v, want %v", rec.Images, want)
	}
}

func TestUnlink_MainClearsUnconditionally(t *testing.T) {
	// Unlinking main clears the field even when it holds a different URL.
	rec := Recipe{Img: "/uploads/recipes/other.webp"}

	rec.Unlink("/uploads/recipes/a.webp", RoleMain)

	if rec.Img != "" {
		t.Errorf("Img = %q, want empty", rec.Img)
	}
}

func TestUnlink_HeroClearsUnconditionally(t *testing.T) {
	rec := Recipe{HeroImage: "/uploads/recipes/other.webp"}

	rec.Unlink("/uploads/recipes/a.webp", RoleHero)

	if rec.HeroImage != "" {
		t.Errorf("HeroImage = %q, want empty", rec.HeroImage)
	}
}

func TestUnlink_AdditionalRemovesAllOccurrences(t *testing.T) {
	// Duplicates can exist in pre-existing data written before the
	// dedup-on-link rule.
	rec := Recipe{Images: []string{
		"/uploads/recipes/a.webp",
		"/uploads/recipes/b.webp",
		"/uploads/recipes/a.webp",
		"/uploads/recipes/c.webp",
	}}

	rec.Unlink("/uploads/recipes/a.webp", RoleAdditional)

	want := []string{"/uploads/recipes/b.webp", "/uploads/recipes/c.webp"}
	if !slices.Equal(rec.Images, want) {
		t.Errorf("Images = %v, want %v", rec.Images, want)
	}
}

func TestUnlink_AdditionalMissingURLIsNoop(t *testing.T) {
	rec := Recipe{Images: []string{"/uploads/recipes/a.webp"}}

	rec.Unlink("/uploads/recipes/missing.webp", RoleAdditional)

	want := []string{"/uploads/recipes/a.webp"}
	if !slices.Equal(rec.Images, want) {
		t.Errorf("Images = %v, want %v", rec.Images, want)
	}
}

func TestUnlink_AdditionalDoesNotTouchOtherRoles(t *testing.T) {
	rec := Recipe{
		Img:       "/uploads/recipes/a.webp",
		HeroImage: "/uploads/recipes/a.webp",
		Images:    []string{"/uploads/recipes/a.webp"},
	}

	rec.Unlink("/uploads/recipes/a.webp", RoleAdditional)

	if rec.Img != "/uploads/recipes/a.webp" {
		t.Errorf("Img = %q, should be untouched", rec.Img)
	}
	if rec.HeroImage != "/uploads/recipes/a.webp" {
		t.Errorf("HeroImage = %q, should be untouched", rec.HeroImage)
	}
	if len(rec.Images) != 0 {
		t.Errorf("Images = %v, want empty", rec.Images)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple", title: "Beef Stew", want: "beef-stew"},
		{name: "punctuation", title: "Mom's Best Lasagna!", want: "mom-s-best-lasagna"},
		{name: "numbers", title: "30 Minute Pasta", want: "30-minute-pasta"},
		{name: "collapses separators", title: "a  --  b", want: "a-b"},
		{name: "trailing junk", title: "Tacos???", want: "tacos"},
		{name: "empty", title: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
