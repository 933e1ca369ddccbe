package recipe

// Usage records one reference to an image URL from a recipe.
type Usage struct {
	RecipeID int64  `json:"recipeId"`
	Title    string `json:"title"`
	Role     Role   `json:"type"`
}

// FindUsages scans every recipe for references to url and returns one entry
// per (recipe, role) match. Only exact URL matches count.
func FindUsages(url string, recipes []Recipe) []Usage {
	usages := []Usage{}
	for _, rec := range recipes {
		if rec.Img == url {
			usages = append(usages, Usage{RecipeID: rec.ID, Title: rec.Title, Role: RoleMain})
		}
		if rec.HeroImage == url {
			usages = append(usages, Usage{RecipeID: rec.ID, Title: rec.Title, Role: RoleHero})
		}
		for _, additional := range rec.Images {
			if additional == url {
				usages = append(usages, Usage{RecipeID: rec.ID, Title: rec.Title, Role: RoleAdditional})
				break
			}
		}
	}
	return usages
}
