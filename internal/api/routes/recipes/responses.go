package recipes

import (
	"github.com/forkfeed/forkfeed/internal/recipe"
)

type GetRecipeResponse recipe.Recipe

type ListRecipesResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
	Total   int64           `json:"total"`
	Limit   int32           `json:"limit"`
	Offset  int32           `json:"offset"`
}

type LinkImageResponse struct {
	Success bool          `json:"success"`
	Recipe  recipe.Recipe `json:"recipe"`
}

type ImageUsagesResponse struct {
	URL    string         `json:"url"`
	Usages []recipe.Usage `json:"usages"`
}

type DeleteRecipeResponse struct {
	Success bool `json:"success"`
}
