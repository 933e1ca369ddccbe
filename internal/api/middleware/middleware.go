// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/httplog/v3"
	"github.com/golang-jwt/jwt/v5"

	apiError "github.com/forkfeed/forkfeed/internal/api/error"
	"github.com/forkfeed/forkfeed/internal/api/requestid"
	"github.com/forkfeed/forkfeed/internal/api/token"
	"github.com/forkfeed/forkfeed/internal/config"
	"github.com/forkfeed/forkfeed/internal/env"
	ffJwt "github.com/forkfeed/forkfeed/internal/jwt"
	"github.com/forkfeed/forkfeed/internal/log"
	"github.com/forkfeed/forkfeed/internal/role"

	"github.com/oklog/ulid/v2"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if requestID := requestid.ExtractRequestID(r.Context()); requestID != 0 {
				return []slog.Attr{slog.Uint64("log_id", requestID)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors adds the necessary CORS headers to the response.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")
		hostOrigin := e.Config.HostOrigin
		isProd := e.Config.Env == config.EnvProd

		// Determine allowed origin based on the incoming Origin header
		var allowedOrigin string
		if isProd {
			allowedOrigin = hostOrigin
		} else if origin != "" {
			// In dev mode, allow all origins
			allowedOrigin = origin
		}

		if allowedOrigin == "" {
			allowedOrigin = hostOrigin
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AuthorizeRequest creates a middleware that validates JWT tokens and checks
// user roles.
func AuthorizeRequest(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			env := env.EnvFromCtx(r.Context())
			requestID := fmt.Sprintf("%d", requestid.ExtractRequestID(r.Context()))

			accessToken, err := r.Cookie(token.AccessTokenName(env))
			if err != nil {
				env.Logger.ErrorContext(r.Context(), "unable to get access token", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}

			secret, secretVersion, err := token.AppSecret(env)
			if err != nil {
				env.Logger.ErrorContext(r.Context(), "app secret not configured", slog.Any("error", err))
				_ = apiError.EncodeInternalError(w, requestID)
				return
			}

			accessJwt, err := ffJwt.ValidateJWT(accessToken.Value, secretVersion, []byte(secret))
			if errors.Is(err, jwt.ErrTokenExpired) {
				env.Logger.ErrorContext(r.Context(), "access token expired", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
				return
			} else if err != nil {
				env.Logger.ErrorContext(r.Context(), "invalid access token", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}

			sub, err := accessJwt.Claims.GetSubject()
			if err != nil {
				env.Logger.ErrorContext(r.Context(), "failed to extract subject from jwt", slog.Any("error", err))
				_ = apiError.EncodeInternalError(w, requestID)
				return
			}
			userID, err := strconv.ParseInt(sub, 10, 64)
			if err != nil {
				env.Logger.ErrorContext(r.Context(), "failed to parse user id", slog.Any("error", err))
				_ = apiError.EncodeInternalError(w, requestID)
				return
			}
			r = r.WithContext(log.AppendCtx(r.Context(), slog.Int64("user-id", userID)))
			r = r.WithContext(token.UserIDWithCtx(r.Context(), userID))

			claims, ok := accessJwt.Claims.(jwt.MapClaims)
			if !ok {
				env.Logger.ErrorContext(r.Context(), "unexpected claims type")
				_ = apiError.EncodeInternalError(w, requestID)
				return
			}
			roleClaim, _ := claims["role"].(string)
			userRole := role.ToRole(roleClaim)
			if userRole < requiredRole {
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}
			r = r.WithContext(token.AccessTokenWithCtx(r.Context(), accessJwt))

			next.ServeHTTP(w, r)
		})
	}
}
