// Package site contains handlers for site-wide configuration: custom code
// snippets injected into rendered pages, and the ads.txt / robots.txt
// bodies served at the site root.
package site

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	apiError "github.com/forkfeed/forkfeed/internal/api/error"
	"github.com/forkfeed/forkfeed/internal/api/requestid"
	"github.com/forkfeed/forkfeed/internal/database"
	"github.com/forkfeed/forkfeed/internal/env"
	ffJson "github.com/forkfeed/forkfeed/internal/json"
)

// HandleGetCustomCode godoc
//
//	@Summary	Fetch the site custom code snippets
//	@Tags		Site
//	@Produce	json
//	@Success	200	{object}	CustomCodeResponse
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Security	AccessTokenCookie
//	@Router		/api/site/custom-code [get]
func HandleGetCustomCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "reading site settings")
	var response CustomCodeResponse
	for _, s := range []struct {
		key  string
		dest *string
	}{
		{database.SettingHeaderCode, &response.HeaderCode},
		{database.SettingBodyCode, &response.BodyCode},
		{database.SettingFooterCode, &response.FooterCode},
		{database.SettingAdsTxt, &response.AdsTxt},
		{database.SettingRobotsTxt, &response.RobotsTxt},
	} {
		value, err := env.Database.GetSetting(ctx, s.key)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to read setting",
				slog.String("key", s.key), slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		*s.dest = value
	}

	resp, err := json.Marshal(response)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleUpdateCustomCode godoc
//
//	@Summary		Update the site custom code snippets
//	@Description	Writes only the snippets present in the request body.
//	@Tags			Site
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateCustomCodeRequest	true	"Snippets to update"
//	@Success		200		{object}	CustomCodeResponse
//	@Failure		400		{object}	apiError.Error	"Bad request"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		AccessTokenCookie
//	@Router			/api/site/custom-code [put]
func HandleUpdateCustomCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "reading request")
	var request UpdateCustomCodeRequest
	if err := ffJson.DecodeJSON(&request, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	for _, s := range []struct {
		key   string
		value *string
	}{
		{database.SettingHeaderCode, request.HeaderCode},
		{database.SettingBodyCode, request.BodyCode},
		{database.SettingFooterCode, request.FooterCode},
		{database.SettingAdsTxt, request.AdsTxt},
		{database.SettingRobotsTxt, request.RobotsTxt},
	} {
		if s.value == nil {
			continue
		}
		env.Logger.DebugContext(ctx, "writing setting", slog.String("key", s.key))
		if err := env.Database.UpsertSetting(ctx, s.key, *s.value); err != nil {
			env.Logger.ErrorContext(ctx, "failed to write setting",
				slog.String("key", s.key), slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
	}

	env.Revalidate.Notify(ctx, "/")
	HandleGetCustomCode(w, r)
}

// HandleAdsTxt serves the stored ads.txt body as plain text.
func HandleAdsTxt(w http.ResponseWriter, r *http.Request) {
	serveSetting(w, r, database.SettingAdsTxt)
}

// HandleRobotsTxt serves the stored robots.txt body as plain text.
func HandleRobotsTxt(w http.ResponseWriter, r *http.Request) {
	serveSetting(w, r, database.SettingRobotsTxt)
}

func serveSetting(w http.ResponseWriter, r *http.Request, key string) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	value, err := env.Database.GetSetting(ctx, key)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to read setting",
			slog.String("key", key), slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if value == "" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := fmt.Fprint(w, value); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
