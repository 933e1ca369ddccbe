// Package auth contains handlers for the auth endpoints.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"

	apiError "github.com/forkfeed/forkfeed/internal/api/error"
	"github.com/forkfeed/forkfeed/internal/api/requestid"
	"github.com/forkfeed/forkfeed/internal/api/token"
	"github.com/forkfeed/forkfeed/internal/argon2id"
	"github.com/forkfeed/forkfeed/internal/env"
	ffJson "github.com/forkfeed/forkfeed/internal/json"
	"github.com/forkfeed/forkfeed/internal/jwt"
	"github.com/forkfeed/forkfeed/internal/role"
)

// HandleLogin godoc
//
//	@Summary	User login
//	@Tags		Auth
//	@Accept		json
//	@Param		request	body	LoginRequest	true	"Login credentials"
//	@Success	200
//	@Failure	400	{object}	apiError.Error	"Bad request"
//	@Failure	401	{object}	apiError.Error	"Invalid credentials"
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Router		/api/auth/login [post]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request LoginRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := ffJson.DecodeJSON(&request, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	// Retrieve user information
	env.Logger.DebugContext(ctx, "Retrieving user information")
	user, err := env.Database.GetUserByEmail(ctx, request.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx,
			"User with email does not exist",
			slog.String("email", request.Email))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user information", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Compare passwords
	env.Logger.DebugContext(ctx, "Comparing passwords")
	match, err := argon2id.ComparePassword(request.Password, user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to compare passwords", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !match {
		env.Logger.ErrorContext(ctx, "Given password is incorrect")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	}

	// Create access token
	env.Logger.DebugContext(ctx, "Generating access token")
	accessToken, err := token.NewAccessToken(jwt.JWTParams{
		Role:   user.Role,
		UserID: fmt.Sprintf("%d", user.ID),
	}, env)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Write response
	env.Logger.DebugContext(ctx, "Writing response")
	http.SetCookie(w, token.NewAccessTokenCookie(accessToken, env))
	w.WriteHeader(http.StatusOK)
}

// HandleVerifySession godoc
//
//	@Summary		Verify user session
//	@Description	Validates the user's access token cookie, checks expiration,
//	@Description	and ensures the user has the required role.
//	@Tags			Auth
//	@Accept			*/*
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Failure		400	{object}	apiError.Error	"Invalid token or malformed cookie"
//	@Failure		401	{object}	apiError.Error	"Expired or invalid access token"
//	@Failure		403	{object}	apiError.Error	"Insufficient permissions"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Security		AccessTokenCookie
//	@Router			/api/auth/session/verify [get]
func HandleVerifySession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	accessToken, err := token.AccessTokenFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	claims, ok := accessToken.Claims.(jwtlib.MapClaims)
	userRole := role.RoleUnknown
	if ok {
		if roleClaim, ok := claims["role"].(string); ok {
			userRole = role.ToRole(roleClaim)
		}
	}

	resp, err := json.Marshal(SessionResponse{UserID: userID, Role: userRole.String()})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleLogout godoc
//
//	@Summary	User logout
//	@Tags		Auth
//	@Success	200
//	@Router		/api/auth/logout [post]
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	env.Logger.DebugContext(ctx, "Expiring access token cookie")
	http.SetCookie(w, token.NewExpiredAccessTokenCookie(env))
	w.WriteHeader(http.StatusOK)
}
