// Package token contains utilities for http tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/forkfeed/forkfeed/internal/config"
	"github.com/forkfeed/forkfeed/internal/env"
	"github.com/forkfeed/forkfeed/internal/jwt"
)

const (
	accessTokenLifetime = 60 * 60 // 1 hour, matches jwt.JWTDuration
	DefaultKID          = "1"
)

var (
	ErrNoUserID      = errors.New("no user id in context")
	ErrNoAppSecret   = errors.New("app secret not configured")
	ErrNoAccessToken = errors.New("no access token in context")
)

func AccessTokenName(e *env.Env) string {
	if e.Config.Env == config.EnvProd {
		return "__Host-forkfeed-access"
	}
	return "access"
}

// AppSecret resolves the signing secret and its version, preferring the
// loaded config over raw environment variables.
func AppSecret(e *env.Env) (secret, version string, err error) {
	if e.Config.AppSecret.Value != nil {
		version = e.Config.AppSecret.Version
		if version == "" {
			version = DefaultKID
		}
		return string(*e.Config.AppSecret.Value), version, nil
	}

	secret = e.Get("APP_SECRET")
	if secret == "" {
		return "", "", ErrNoAppSecret
	}
	version = e.Get("APP_SECRET_VERSION")
	if version == "" {
		version = DefaultKID
	}
	return secret, version, nil
}

func NewAccessToken(params jwt.JWTParams, e *env.Env) (string, error) {
	secret, version, err := AppSecret(e)
	if err != nil {
		return "", err
	}
	token, err := jwt.GenerateJWT(params, []byte(secret), version)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

func NewAccessTokenCookie(token string, e *env.Env) *http.Cookie {
	cookie := &http.Cookie{
		Name:     AccessTokenName(e),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   accessTokenLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}

	if e.Config.Env == config.EnvProd {
		cookie.Secure = true
	}

	return cookie
}

func NewExpiredAccessTokenCookie(e *env.Env) *http.Cookie {
	cookie := NewAccessTokenCookie("", e)
	cookie.MaxAge = -1
	return cookie
}

type userIDKeyType struct{}

var userIDKey userIDKeyType

func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromCtx(ctx context.Context) (int64, error) {
	if v, ok := ctx.Value(userIDKey).(int64); ok {
		return v, nil
	}
	return 0, ErrNoUserID
}

type accessTokenKeyType struct{}

var accessTokenKey accessTokenKeyType

func AccessTokenWithCtx(ctx context.Context, token *jwtlib.Token) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

func AccessTokenFromCtx(ctx context.Context) (*jwtlib.Token, error) {
	if v, ok := ctx.Value(accessTokenKey).(*jwtlib.Token); ok {
		return v, nil
	}
	return nil, ErrNoAccessToken
}
