package recipe

import (
	"reflect"
	"testing"
)

func TestFindUsages(t *testing.T) {
	url := "/uploads/recipes/shared.webp"
	recipes := []Recipe{
		{ID: 1, Title: "Beef Stew", Img: url},
		{ID: 2, Title: "Lasagna", HeroImage: url},
		{ID: 3, Title: "Tacos", Images: []string{"/uploads/recipes/other.webp", url}},
		{ID: 4, Title: "Pancakes"},
	}

	got := FindUsages(url, recipes)

	want := []Usage{
		{RecipeID: 1, Title: "Beef Stew", Role: RoleMain},
		{RecipeID: 2, Title: "Lasagna", Role: RoleHero},
		{RecipeID: 3, Title: "Tacos", Role: RoleAdditional},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindUsages() = %v, want %v", got, want)
	}
}

func TestFindUsages_MultipleRolesInOneRecipe(t *testing.T) {
	url := "/uploads/recipes/everywhere.webp"
	recipes := []Recipe{
		{ID: 7, Title: "Chili", Img: url, HeroImage: url, Images: []string{url, url}},
	}

	got := FindUsages(url, recipes)

	// One entry per role; duplicates in the gallery collapse to one.
	want := []Usage{
		{RecipeID: 7, Title: "Chili", Role: RoleMain},
		{RecipeID: 7, Title: "Chili", Role: RoleHero},
		{RecipeID: 7, Title: "Chili", Role: RoleAdditional},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindUsages() = %v, want %v", got, want)
	}
}

func TestFindUsages_NoMatches(t *testing.T) {
	recipes := []Recipe{
		{ID: 1, Title: "Beef Stew", Img: "/uploads/recipes/a.webp"},
	}

	got := FindUsages("/uploads/recipes/missing.webp", recipes)

	if len(got) != 0 {
		t.Errorf("FindUsages() = %v, want empty", got)
	}
	if got == nil {
		t.Error("FindUsages() = nil, want empty slice")
	}
}

func TestFindUsages_ExactMatchOnly(t *testing.T) {
	recipes := []Recipe{
		{ID: 1, Title: "Beef Stew", Img: "/uploads/recipes/a.webp?v=2"},
	}

	got := FindUsages("/uploads/recipes/a.webp", recipes)

	if len(got) != 0 {
		t.Errorf("FindUsages() = %v, want empty (comparison is exact)", got)
	}
}
