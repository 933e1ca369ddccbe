// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"fmt"
	"net/http"

	_ "github.com/forkfeed/forkfeed/docs"
	"github.com/forkfeed/forkfeed/internal/api/middleware"
	"github.com/forkfeed/forkfeed/internal/api/routes/auth"
	"github.com/forkfeed/forkfeed/internal/api/routes/ping"
	"github.com/forkfeed/forkfeed/internal/api/routes/recipes"
	"github.com/forkfeed/forkfeed/internal/api/routes/site"
	"github.com/forkfeed/forkfeed/internal/api/routes/uploads"
	"github.com/forkfeed/forkfeed/internal/env"
	"github.com/forkfeed/forkfeed/internal/filestore"
	"github.com/forkfeed/forkfeed/internal/role"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	serverPort = 8080
)

func addDocs(r *chi.Mux, serverAddr string) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/api/swagger/doc.json", serverAddr)),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Allow GET to serve Swagger
		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		// Block anything else
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

func addRoutes(router *chi.Mux, environment *env.Env) {
	router.Get("/ads.txt", site.HandleAdsTxt)
	router.Get("/robots.txt", site.HandleRobotsTxt)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", auth.HandleLogin)
			r.Post("/logout", auth.HandleLogout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthorizeRequest(role.RoleEditor))
				r.Get("/session/verify", auth.HandleVerifySession)
			})
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleListRecipes)
			r.Get("/slug/{slug}", recipes.HandleGetRecipeBySlug)
			r.Get("/{recipeID}", recipes.HandleGetRecipe)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthorizeRequest(role.RoleEditor))

				r.Post("/", recipes.HandleCreateRecipe)
				r.Put("/{recipeID}", recipes.HandleUpdateRecipe)
				r.Delete("/{recipeID}", recipes.HandleDeleteRecipe)

				r.Post("/images/link", recipes.HandleLinkImage)
				r.Post("/images/unlink", recipes.HandleUnlinkImage)
				r.Get("/images/usages", recipes.HandleImageUsages)
			})
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Use(middleware.AuthorizeRequest(role.RoleEditor))

			r.Post("/", uploads.HandleUploadImage)
			r.Get("/", uploads.HandleListImages)
			r.Delete("/", uploads.HandleDeleteImage)
		})

		r.Route("/site", func(r chi.Router) {
			r.Use(middleware.AuthorizeRequest(role.RoleEditor))

			r.Get("/custom-code", site.HandleGetCustomCode)
			r.Put("/custom-code", site.HandleUpdateCustomCode)
		})
	})

	// Uploaded files are served straight off disk when the local store
	// driver is in use. The S3 driver serves them from the bucket endpoint.
	if local, ok := environment.Images.(*filestore.Local); ok {
		prefix := environment.Config.Uploads.URLPrefix
		if prefix == "" {
			prefix = filestore.DefaultURLPrefix
		}
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(local.BaseDirectory())))
		router.Get(prefix+"/*", fs.ServeHTTP)
	}
}

// Start godoc
//
//	@title						Forkfeed API
//	@version					1.0
//	@description				API server for the Forkfeed recipe site.
//
//	@securityDefinitions.apikey	AccessTokenCookie
//	@in							header
//	@name						Cookie
//
//	@host						localhost:8080
//	@BasePath					/
func Start(environment *env.Env) error {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(environment.Logger))
	router.Use(middleware.InjectEnv(environment))
	router.Use(middleware.AddCors)

	addRoutes(router, environment)
	addDocs(router, fmt.Sprintf("0.0.0.0:%d", serverPort))
	http.Handle("/", router)

	environment.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0:%d", serverPort))
	environment.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0:%d/api/swagger/index.html", serverPort))
	return http.ListenAndServe(fmt.Sprintf(":%d", serverPort), nil)
}
