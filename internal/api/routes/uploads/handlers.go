// Package uploads contains handlers for the image upload endpoints.
package uploads

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	apiError "github.com/forkfeed/forkfeed/internal/api/error"
	"github.com/forkfeed/forkfeed/internal/api/requestid"
	"github.com/forkfeed/forkfeed/internal/env"
	"github.com/forkfeed/forkfeed/internal/filestore"
	"github.com/forkfeed/forkfeed/internal/form"
)

const (
	fileField     = "file"
	categoryField = "category"

	// parse ceiling sits above the file ceiling so an oversized file is
	// rejected by the explicit size check, with the real limit in the
	// message, rather than by an opaque multipart error.
	parseOverhead = 1 << 20
)

// HandleUploadImage godoc
//
//	@Summary		Upload an image
//	@Description	Accepts multipart/form-data with a `file` and an optional
//	@Description	`category`. The image is re-encoded to WebP when possible
//	@Description	and stored under the category partition.
//	@Tags			Uploads
//	@Accept			multipart/form-data
//	@Produce		json
//
//	@Param			file		formData	file	true	"Image file (JPEG/PNG/WebP/AVIF/GIF)"
//	@Param			category	formData	string	false	"Storage category (default: recipes)"
//
//	@Success		201	{object}	UploadResponse
//	@Failure		400	{object}	apiError.Error	"Missing file / invalid file type"
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Failure		413	{object}	apiError.Error	"File too large"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//
//	@Security		AccessTokenCookie
//	@Router			/api/uploads [post]
func HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	maxBytes := env.Config.Uploads.MaxUploadBytes

	// Read request
	env.Logger.DebugContext(ctx, "reading upload form")
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+parseOverhead)
	if err := r.ParseMultipartForm(maxBytes + parseOverhead); err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse multipart form", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.FileTooLarge, tooLargeMessage(maxBytes), requestID)
		return
	}

	uploaded, err := form.ReadImageFile(r, fileField)
	if errors.Is(err, form.ErrNoFileUploaded) {
		env.Logger.ErrorContext(ctx, "no file uploaded")
		_ = apiError.EncodeError(w, apiError.MissingFile, "expected a file in the form", requestID)
		return
	} else if errors.Is(err, form.ErrUnsupportedMimeType) {
		env.Logger.ErrorContext(ctx, "unsupported file type", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidFileType,
			fmt.Sprintf("invalid file type. Allowed types: %s", strings.Join(form.AllowedImageTypes(), ", ")),
			requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to read uploaded file", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if uploaded.Size > maxBytes {
		env.Logger.ErrorContext(ctx, "file exceeds size ceiling",
			slog.Int64("size", uploaded.Size), slog.Int64("max", maxBytes))
		_ = apiError.EncodeError(w, apiError.FileTooLarge, tooLargeMessage(maxBytes), requestID)
		return
	}
	category := filestore.SanitizeCategory(r.FormValue(categoryField))

	// Normalize. Failure is soft: the original bytes are stored as-is.
	env.Logger.DebugContext(ctx, "normalizing image", slog.String("mime", uploaded.MimeType))
	normalized, err := env.Normalizer.Normalize(uploaded.Data, uploaded.MimeType, uploaded.Suffix)
	if err != nil {
		env.Logger.WarnContext(ctx, "normalization failed, storing original",
			slog.Any("error", err), slog.String("mime", uploaded.MimeType))
	}

	// Write image
	filename := filestore.NewObjectName(uploaded.Name, normalized.Suffix)
	env.Logger.DebugContext(ctx, "writing image",
		slog.String("category", category), slog.String("filename", filename))
	urlPath, err := env.Images.Write(ctx, category, filename, normalized.Data, normalized.MimeType)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write image", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Revalidate.Notify(ctx, "/"+category, "/admin/images")

	// Write response
	resp, err := json.Marshal(UploadResponse{
		Success:       true,
		URL:           urlPath,
		Filename:      filename,
		OriginalName:  uploaded.Name,
		OriginalSize:  uploaded.Size,
		OriginalType:  uploaded.MimeType,
		ConvertedType: normalized.MimeType,
		Category:      category,
		UploadedAt:    time.Now().UTC(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		return
	}
}

// HandleListImages godoc
//
//	@Summary	List stored images in a category
//	@Tags		Uploads
//	@Produce	json
//
//	@Param		category	query		string	false	"Storage category (default: recipes)"
//
//	@Success	200			{object}	ListFilesResponse
//	@Failure	401			{object}	apiError.Error	"Unauthorized"
//	@Failure	500			{object}	apiError.Error	"Internal server error"
//
//	@Security	AccessTokenCookie
//	@Router		/api/uploads [get]
func HandleListImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	category := filestore.SanitizeCategory(r.URL.Query().Get(categoryField))

	env.Logger.DebugContext(ctx, "listing images", slog.String("category", category))
	objects, err := env.Images.List(ctx, category)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list images", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	files := make([]FileInfo, 0, len(objects))
	for _, obj := range objects {
		files = append(files, FileInfo{
			URL:        obj.URL,
			Filename:   obj.Filename,
			Category:   obj.Category,
			Size:       obj.Size,
			UploadedAt: obj.UploadedAt,
		})
	}

	resp, err := json.Marshal(ListFilesResponse{Files: files})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		return
	}
}

// HandleDeleteImage godoc
//
//	@Summary		Delete a stored image
//	@Description	Removes the file from storage. Recipe references to the
//	@Description	image are intentionally left untouched.
//	@Tags			Uploads
//	@Produce		json
//
//	@Param			file		query		string	true	"Filename within the category"
//	@Param			category	query		string	false	"Storage category (default: recipes)"
//
//	@Success		200			{object}	DeleteFileResponse
//	@Failure		400			{object}	apiError.Error	"Missing filename"
//	@Failure		401			{object}	apiError.Error	"Unauthorized"
//	@Failure		404			{object}	apiError.Error	"File not found"
//	@Failure		500			{object}	apiError.Error	"Internal server error"
//
//	@Security		AccessTokenCookie
//	@Router			/api/uploads [delete]
func HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	filename := strings.TrimSpace(r.URL.Query().Get(fileField))
	if filename == "" {
		env.Logger.ErrorContext(ctx, "missing file query parameter")
		_ = apiError.EncodeError(w, apiError.BadRequest, "expected a file query parameter", requestID)
		return
	}
	category := filestore.SanitizeCategory(r.URL.Query().Get(categoryField))

	env.Logger.DebugContext(ctx, "deleting image",
		slog.String("category", category), slog.String("filename", filename))
	err := env.Images.Delete(ctx, category, filename)
	if errors.Is(err, filestore.ErrNotFound) {
		env.Logger.ErrorContext(ctx, "file does not exist", slog.String("filename", filename))
		_ = apiError.EncodeError(w, apiError.FileNotFound, "file does not exist", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete image", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Revalidate.Notify(ctx, "/"+category, "/admin/images")

	resp, err := json.Marshal(DeleteFileResponse{
		Success:   true,
		Message:   "file deleted",
		FileName:  filename,
		Category:  category,
		DeletedAt: time.Now().UTC(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		return
	}
}

func tooLargeMessage(maxBytes int64) string {
	return fmt.Sprintf("File too large. Maximum size: %dMB", maxBytes>>20)
}
