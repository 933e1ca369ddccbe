package recipes

import (
	"errors"
	"strconv"
)

type recipeID string

func (r recipeID) Validate() error {
	v, err := strconv.ParseInt(string(r), 10, 64)
	if err != nil {
		return errors.New("expected an integer")
	}
	if v < 0 {
		return errors.New("recipe id should be non-negative")
	}
	return nil
}

type CreateRecipeRequest struct {
	Slug        string   `json:"slug" validate:"omitempty,max=200"`
	Title       string   `json:"title" validate:"required,max=300"`
	Description string   `json:"description"`
	Img         string   `json:"img"`
	HeroImage   string   `json:"heroImage"`
	Images      []string `json:"images"`
	Published   bool     `json:"published"`
}

// UpdateRecipeRequest distinguishes omitted fields from explicit empties:
// a nil pointer leaves the field untouched, a present value (including ""
// or false) is written.
type UpdateRecipeRequest struct {
	Slug        *string   `json:"slug" validate:"omitempty,max=200"`
	Title       *string   `json:"title" validate:"omitempty,min=1,max=300"`
	Description *string   `json:"description"`
	Img         *string   `json:"img"`
	HeroImage   *string   `json:"heroImage"`
	Images      *[]string `json:"images"`
	Published   *bool     `json:"published"`
}

type LinkImageRequest struct {
	URL      string `json:"url" validate:"required"`
	RecipeID int64  `json:"recipeId" validate:"required,gt=0"`
	Role     string `json:"role" validate:"required"`
}
