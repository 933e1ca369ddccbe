// Package recipes contains handlers for the recipe endpoints.
package recipes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"

	apiError "github.com/forkfeed/forkfeed/internal/api/error"
	"github.com/forkfeed/forkfeed/internal/api/requestid"
	"github.com/forkfeed/forkfeed/internal/database"
	"github.com/forkfeed/forkfeed/internal/env"
	ffJson "github.com/forkfeed/forkfeed/internal/json"
	"github.com/forkfeed/forkfeed/internal/recipe"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func encodeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	resp, err := json.Marshal(body)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleCreateRecipe godoc
//
//	@Summary	Create a recipe
//	@Tags		Recipes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateRecipeRequest	true	"Recipe fields"
//	@Success	201		{object}	GetRecipeResponse
//	@Failure	400		{object}	apiError.Error	"Bad request / validation error"
//	@Failure	401		{object}	apiError.Error	"Unauthorized"
//	@Failure	409		{object}	apiError.Error	"Slug already in use"
//	@Failure	500		{object}	apiError.Error	"Internal server error"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes [post]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Read request
	env.Logger.DebugContext(ctx, "reading request")
	var request CreateRecipeRequest
	if err := ffJson.DecodeJSON(&request, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	if request.Slug == "" {
		request.Slug = recipe.Slugify(request.Title)
	}

	// Create recipe
	env.Logger.DebugContext(ctx, "creating recipe", slog.String("slug", request.Slug))
	rec, err := env.Database.CreateRecipe(ctx, database.CreateRecipeParams{
		Slug:        request.Slug,
		Title:       request.Title,
		Description: request.Description,
		Img:         request.Img,
		HeroImage:   request.HeroImage,
		Images:      request.Images,
		Published:   request.Published,
	})
	if errors.Is(err, database.ErrSlugConflict) {
		env.Logger.ErrorContext(ctx, "slug already in use", slog.String("slug", request.Slug))
		_ = apiError.EncodeError(w, apiError.SlugConflict, "slug already in use", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Revalidate.Notify(ctx, "/", "/"+rec.Slug)
	encodeJSON(w, r, http.StatusCreated, GetRecipeResponse(rec))
}

// HandleListRecipes godoc
//
//	@Summary	List recipes
//	@Tags		Recipes
//	@Produce	json
//	@Param		limit		query		int		false	"Page size (default 20, max 100)"
//	@Param		offset		query		int		false	"Page offset"
//	@Param		published	query		bool	false	"Only published recipes"
//	@Success	200			{object}	ListRecipesResponse
//	@Failure	500			{object}	apiError.Error	"Internal server error"
//	@Router		/api/recipes [get]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	limit := int32(defaultListLimit)
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil || parsed <= 0 {
			_ = apiError.EncodeError(w, apiError.BadRequest, "limit should be a positive integer", requestID)
			return
		}
		limit = int32(min(parsed, maxListLimit))
	}
	var offset int32
	if v := r.URL.Query().Get("offset"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil || parsed < 0 {
			_ = apiError.EncodeError(w, apiError.BadRequest, "offset should be a non-negative integer", requestID)
			return
		}
		offset = int32(parsed)
	}
	publishedOnly := r.URL.Query().Get("published") == "true"

	env.Logger.DebugContext(ctx, "listing recipes",
		slog.Int("limit", int(limit)), slog.Int("offset", int(offset)))
	recipes, err := env.Database.ListRecipes(ctx, database.ListRecipesParams{
		Limit:         limit,
		Offset:        offset,
		PublishedOnly: publishedOnly,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	total, err := env.Database.CountRecipes(ctx, publishedOnly)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to count recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, r, http.StatusOK, ListRecipesResponse{
		Recipes: recipes,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// HandleGetRecipe godoc
//
//	@Summary	Fetch a recipe by id
//	@Tags		Recipes
//	@Produce	json
//	@Param		recipeID	path		string	true	"Recipe ID"
//	@Success	200			{object}	GetRecipeResponse
//	@Failure	400			{object}	apiError.Error	"Bad request"
//	@Failure	404			{object}	apiError.Error	"Recipe not found"
//	@Failure	500			{object}	apiError.Error	"Internal server error"
//	@Router		/api/recipes/{recipeID} [get]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	recipeIDQ := recipeID(chi.URLParam(r, "recipeID"))
	if err := recipeIDQ.Validate(); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	id, _ := strconv.ParseInt(string(recipeIDQ), 10, 64)

	env.Logger.DebugContext(ctx, "getting recipe", slog.Int64("recipe-id", id))
	rec, err := env.Database.GetRecipe(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe does not exist", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe does not exist", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, r, http.StatusOK, GetRecipeResponse(rec))
}

// HandleGetRecipeBySlug godoc
//
//	@Summary	Fetch a recipe by slug
//	@Tags		Recipes
//	@Produce	json
//	@Param		slug	path		string	true	"Recipe slug"
//	@Success	200		{object}	GetRecipeResponse
//	@Failure	404		{object}	apiError.Error	"Recipe not found"
//	@Failure	500		{object}	apiError.Error	"Internal server error"
//	@Router		/api/recipes/slug/{slug} [get]
func HandleGetRecipeBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		_ = apiError.EncodeError(w, apiError.BadRequest, "expected a slug", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "getting recipe by slug", slog.String("slug", slug))
	rec, err := env.Database.GetRecipeBySlug(ctx, slug)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe does not exist", slog.String("slug", slug))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe does not exist", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, r, http.StatusOK, GetRecipeResponse(rec))
}

// HandleUpdateRecipe godoc
//
//	@Summary		Update a recipe
//	@Description	Writes only the fields present in the request body. An
//	@Description	explicit empty value clears the field; an omitted field is
//	@Description	left untouched.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			recipeID	path		string				true	"Recipe ID"
//	@Param			request		body		UpdateRecipeRequest	true	"Fields to update"
//	@Success		200			{object}	GetRecipeResponse
//	@Failure		400			{object}	apiError.Error	"Bad request"
//	@Failure		401			{object}	apiError.Error	"Unauthorized"
//	@Failure		404			{object}	apiError.Error	"Recipe not found"
//	@Failure		409			{object}	apiError.Error	"Slug already in use"
//	@Failure		500			{object}	apiError.Error	"Internal server error"
//	@Security		AccessTokenCookie
//	@Router			/api/recipes/{recipeID} [put]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	recipeIDQ := recipeID(chi.URLParam(r, "recipeID"))
	if err := recipeIDQ.Validate(); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	id, _ := strconv.ParseInt(string(recipeIDQ), 10, 64)

	var request UpdateRecipeRequest
	if err := ffJson.DecodeJSON(&request, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	params := database.UpdateRecipeParams{ID: id}
	if request.Slug != nil {
		params.SetSlug, params.Slug = true, *request.Slug
	}
	if request.Title != nil {
		params.SetTitle, params.Title = true, *request.Title
	}
	if request.Description != nil {
		params.SetDescription, params.Description = true, *request.Description
	}
	if request.Img != nil {
		params.SetImg, params.Img = true, *request.Img
	}
	if request.HeroImage != nil {
		params.SetHeroImage, params.HeroImage = true, *request.HeroImage
	}
	if request.Images != nil {
		params.SetImages, params.Images = true, *request.Images
	}
	if request.Published != nil {
		params.SetPublished, params.Published = true, *request.Published
	}

	env.Logger.DebugContext(ctx, "updating recipe", slog.Int64("recipe-id", id))
	rec, err := env.Database.UpdateRecipe(ctx, params)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe does not exist", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe does not exist", requestID)
		return
	} else if errors.Is(err, database.ErrSlugConflict) {
		env.Logger.ErrorContext(ctx, "slug already in use")
		_ = apiError.EncodeError(w, apiError.SlugConflict, "slug already in use", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Revalidate.Notify(ctx, "/", "/"+rec.Slug)
	encodeJSON(w, r, http.StatusOK, GetRecipeResponse(rec))
}

// HandleDeleteRecipe godoc
//
//	@Summary	Delete a recipe
//	@Tags		Recipes
//	@Produce	json
//	@Param		recipeID	path		string	true	"Recipe ID"
//	@Success	200			{object}	DeleteRecipeResponse
//	@Failure	400			{object}	apiError.Error	"Bad request"
//	@Failure	401			{object}	apiError.Error	"Unauthorized"
//	@Failure	404			{object}	apiError.Error	"Recipe not found"
//	@Failure	500			{object}	apiError.Error	"Internal server error"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{recipeID} [delete]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	recipeIDQ := recipeID(chi.URLParam(r, "recipeID"))
	if err := recipeIDQ.Validate(); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	id, _ := strconv.ParseInt(string(recipeIDQ), 10, 64)

	env.Logger.DebugContext(ctx, "deleting recipe", slog.Int64("recipe-id", id))
	deleted, err := env.Database.DeleteRecipe(ctx, id)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !deleted {
		env.Logger.ErrorContext(ctx, "recipe does not exist", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe does not exist", requestID)
		return
	}

	env.Revalidate.Notify(ctx, "/")
	encodeJSON(w, r, http.StatusOK, DeleteRecipeResponse{Success: true})
}

// HandleLinkImage godoc
//
//	@Summary		Link an image to a recipe
//	@Description	Attaches an image URL to a recipe under one of the roles
//	@Description	main, hero, or additional. Main and hero are overwritten;
//	@Description	additional is an ordered set.
//	@Tags			Recipes, Images
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LinkImageRequest	true	"Link parameters"
//	@Success		200		{object}	LinkImageResponse
//	@Failure		400		{object}	apiError.Error	"Bad request / invalid role"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		404		{object}	apiError.Error	"Recipe not found"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		AccessTokenCookie
//	@Router			/api/recipes/images/link [post]
func HandleLinkImage(w http.ResponseWriter, r *http.Request) {
	handleLinkChange(w, r, func(rec *recipe.Recipe, url string, role recipe.Role) {
		rec.Link(url, role)
	})
}

// HandleUnlinkImage godoc
//
//	@Summary		Unlink an image from a recipe
//	@Description	Detaches an image URL from a recipe for one role. Main and
//	@Description	hero are cleared; every occurrence is removed from
//	@Description	additional.
//	@Tags			Recipes, Images
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LinkImageRequest	true	"Unlink parameters"
//	@Success		200		{object}	LinkImageResponse
//	@Failure		400		{object}	apiError.Error	"Bad request / invalid role"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		404		{object}	apiError.Error	"Recipe not found"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		AccessTokenCookie
//	@Router			/api/recipes/images/unlink [post]
func HandleUnlinkImage(w http.ResponseWriter, r *http.Request) {
	handleLinkChange(w, r, func(rec *recipe.Recipe, url string, role recipe.Role) {
		rec.Unlink(url, role)
	})
}

func handleLinkChange(w http.ResponseWriter, r *http.Request,
	apply func(*recipe.Recipe, string, recipe.Role),
) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Read request
	env.Logger.DebugContext(ctx, "reading request")
	var request LinkImageRequest
	if err := ffJson.DecodeJSON(&request, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	role, err := recipe.ParseRole(request.Role)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid role", slog.String("role", request.Role))
		_ = apiError.EncodeError(w, apiError.InvalidRole,
			"role should be one of main, hero, additional", requestID)
		return
	}

	// Fetch recipe
	env.Logger.DebugContext(ctx, "getting recipe", slog.Int64("recipe-id", request.RecipeID))
	rec, err := env.Database.GetRecipe(ctx, request.RecipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe does not exist", slog.Int64("recipe-id", request.RecipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe does not exist", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Apply and persist. Concurrent changes to the same recipe race; the
	// last write wins.
	apply(&rec, request.URL, role)
	env.Logger.DebugContext(ctx, "updating recipe images", slog.String("role", role.String()))
	updated, err := env.Database.UpdateRecipeImages(ctx, database.UpdateRecipeImagesParams{
		ID:        rec.ID,
		Img:       rec.Img,
		HeroImage: rec.HeroImage,
		Images:    rec.Images,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update recipe images", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Revalidate.Notify(ctx, "/"+updated.Slug)
	encodeJSON(w, r, http.StatusOK, LinkImageResponse{Success: true, Recipe: updated})
}

// HandleImageUsages godoc
//
//	@Summary		Find recipes using an image
//	@Description	Scans every recipe and reports each (recipe, role) pair
//	@Description	referencing the URL. Usages of deleted files are still
//	@Description	reported.
//	@Tags			Recipes, Images
//	@Produce		json
//	@Param			url	query		string	true	"Image URL"
//	@Success		200	{object}	ImageUsagesResponse
//	@Failure		400	{object}	apiError.Error	"Missing url"
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Security		AccessTokenCookie
//	@Router			/api/recipes/images/usages [get]
func HandleImageUsages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" {
		_ = apiError.EncodeError(w, apiError.BadRequest, "expected a url query parameter", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "scanning recipes for image usages", slog.String("url", url))
	recipes, err := env.Database.ListRecipes(ctx, database.ListRecipesParams{})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, r, http.StatusOK, ImageUsagesResponse{
		URL:    url,
		Usages: recipe.FindUsages(url, recipes),
	})
}
