package database

import (
	"context"
	"fmt"

	"github.com/forkfeed/forkfeed/internal/recipe"
)

const recipeColumns = `id, slug, title, description, img, hero_image, images, published, created_at, updated_at`

type CreateRecipeParams struct {
	Slug        string
	Title       string
	Description string
	Img         string
	HeroImage   string
	Images      []string
	Published   bool
}

// UpdateRecipeParams carries one (set, value) pair per field so an explicit
// empty value is distinguishable from an omitted one.
type UpdateRecipeParams struct {
	ID int64

	SetSlug bool
	Slug    string

	SetTitle bool
	Title    string

	SetDescription bool
	Description    string

	SetImg bool
	Img    string

	SetHeroImage bool
	HeroImage    string

	SetImages bool
	Images    []string

	SetPublished bool
	Published    bool
}

type UpdateRecipeImagesParams struct {
	ID        int64
	Img       string
	HeroImage string
	Images    []string
}

type ListRecipesParams struct {
	Limit         int32
	Offset        int32
	PublishedOnly bool
}

func scanRecipe(row interface{ Scan(dest ...any) error }) (recipe.Recipe, error) {
	var rec recipe.Recipe
	err := row.Scan(
		&rec.ID, &rec.Slug, &rec.Title, &rec.Description,
		&rec.Img, &rec.HeroImage, &rec.Images, &rec.Published,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (db *Database) CreateRecipe(ctx context.Context, params CreateRecipeParams) (recipe.Recipe, error) {
	if params.Images == nil {
		params.Images = []string{}
	}
	rec, err := scanRecipe(db.pool.QueryRow(ctx,
		`INSERT INTO recipes (slug, title, description, img, hero_image, images, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+recipeColumns,
		params.Slug, params.Title, params.Description,
		params.Img, params.HeroImage, params.Images, params.Published,
	))
	if isUniqueViolation(err) {
		return rec, ErrSlugConflict
	}
	return rec, err
}

func (db *Database) GetRecipe(ctx context.Context, id int64) (recipe.Recipe, error) {
	return scanRecipe(db.pool.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
}

func (db *Database) GetRecipeBySlug(ctx context.Context, slug string) (recipe.Recipe, error) {
	return scanRecipe(db.pool.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE slug = $1`, slug))
}

func (db *Database) ListRecipes(ctx context.Context, params ListRecipesParams) ([]recipe.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes`
	if params.PublishedOnly {
		query += ` WHERE published`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	args := []any{}
	if params.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, params.Limit, params.Offset)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []recipe.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

func (db *Database) CountRecipes(ctx context.Context, publishedOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM recipes`
	if publishedOnly {
		query += ` WHERE published`
	}
	var count int64
	err := db.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}

// UpdateRecipe writes only the fields whose set flag is on, leaving the
// others untouched.
func (db *Database) UpdateRecipe(ctx context.Context, params UpdateRecipeParams) (recipe.Recipe, error) {
	if params.Images == nil {
		params.Images = []string{}
	}
	rec, err := scanRecipe(db.pool.QueryRow(ctx,
		`UPDATE recipes SET
			slug = CASE WHEN $2 THEN $3 ELSE slug END,
			title = CASE WHEN $4 THEN $5 ELSE title END,
			description = CASE WHEN $6 THEN $7 ELSE description END,
			img = CASE WHEN $8 THEN $9 ELSE img END,
			hero_image = CASE WHEN $10 THEN $11 ELSE hero_image END,
			images = CASE WHEN $12 THEN $13 ELSE images END,
			published = CASE WHEN $14 THEN $15 ELSE published END,
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+recipeColumns,
		params.ID,
		params.SetSlug, params.Slug,
		params.SetTitle, params.Title,
		params.SetDescription, params.Description,
		params.SetImg, params.Img,
		params.SetHeroImage, params.HeroImage,
		params.SetImages, params.Images,
		params.SetPublished, params.Published,
	))
	if isUniqueViolation(err) {
		return rec, ErrSlugConflict
	}
	return rec, err
}

// UpdateRecipeImages writes the three image fields back in full. This is
// the linker's persistence path; last writer wins.
func (db *Database) UpdateRecipeImages(ctx context.Context, params UpdateRecipeImagesParams) (recipe.Recipe, error) {
	if params.Images == nil {
		params.Images = []string{}
	}
	return scanRecipe(db.pool.QueryRow(ctx,
		`UPDATE recipes SET
			img = $2,
			hero_image = $3,
			images = $4,
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+recipeColumns,
		params.ID, params.Img, params.HeroImage, params.Images,
	))
}

func (db *Database) DeleteRecipe(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
