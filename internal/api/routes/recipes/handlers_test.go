package recipes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	apiError "github.com/forkfeed/forkfeed/internal/api/error"
	"github.com/forkfeed/forkfeed/internal/env"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apiError.Error {
	t.Helper()
	var apiErr apiError.Error
	if err := json.NewDecoder(w.Body).Decode(&apiErr); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return apiErr
}

func withEnv(r *http.Request) *http.Request {
	return r.WithContext(env.WithCtx(r.Context(), env.New(nil)))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRecipeIDValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: "42"},
		{name: "zero", id: "0"},
		{name: "negative", id: "-1", wantErr: true},
		{name: "not a number", id: "abc", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recipeID(tt.id).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestHandleGetRecipe_BadID(t *testing.T) {
	r := withEnv(httptest.NewRequest(http.MethodGet, "/api/recipes/abc", nil))
	r = withURLParam(r, "recipeID", "abc")
	w := httptest.NewRecorder()

	HandleGetRecipe(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if apiErr := decodeError(t, w); apiErr.Code != apiError.BadRequest {
		t.Errorf("error code = %q, want %q", apiErr.Code, apiError.BadRequest)
	}
}

func TestHandleCreateRecipe_MissingTitle(t *testing.T) {
	body := strings.NewReader(`{"slug": "no-title"}`)
	r := withEnv(httptest.NewRequest(http.MethodPost, "/api/recipes", body))
	w := httptest.NewRecorder()

	HandleCreateRecipe(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleCreateRecipe_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"title": `)
	r := withEnv(httptest.NewRequest(http.MethodPost, "/api/recipes", body))
	w := httptest.NewRecorder()

	HandleCreateRecipe(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleLinkImage_InvalidRole(t *testing.T) {
	body := strings.NewReader(`{"url": "/uploads/recipes/a.webp", "recipeId": 1, "role": "thumbnail"}`)
	r := withEnv(httptest.NewRequest(http.MethodPost, "/api/recipes/images/link", body))
	w := httptest.NewRecorder()

	HandleLinkImage(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if apiErr := decodeError(t, w); apiErr.Code != apiError.InvalidRole {
		t.Errorf("error code = %q, want %q", apiErr.Code, apiError.InvalidRole)
	}
}

func TestHandleLinkImage_MissingURL(t *testing.T) {
	body := strings.NewReader(`{"recipeId": 1, "role": "main"}`)
	r := withEnv(httptest.NewRequest(http.MethodPost, "/api/recipes/images/link", body))
	w := httptest.NewRecorder()

	HandleLinkImage(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleUnlinkImage_InvalidRole(t *testing.T) {
	body := strings.NewReader(`{"url": "/uploads/recipes/a.webp", "recipeId": 1, "role": ""}`)
	r := withEnv(httptest.NewRequest(http.MethodPost, "/api/recipes/images/unlink", body))
	w := httptest.NewRecorder()

	HandleUnlinkImage(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleImageUsages_MissingURL(t *testing.T) {
	r := withEnv(httptest.NewRequest(http.MethodGet, "/api/recipes/images/usages", nil))
	w := httptest.NewRecorder()

	HandleImageUsages(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleListRecipes_BadLimit(t *testing.T) {
	r := withEnv(httptest.NewRequest(http.MethodGet, "/api/recipes?limit=nope", nil))
	w := httptest.NewRecorder()

	HandleListRecipes(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleListRecipes_NegativeOffset(t *testing.T) {
	r := withEnv(httptest.NewRequest(http.MethodGet, "/api/recipes?offset=-1", nil))
	w := httptest.NewRecorder()

	HandleListRecipes(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
