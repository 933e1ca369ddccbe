package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	UnprocessibleEntity     ErrorCode = "unprocessible_entity"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	InvalidFileType         ErrorCode = "invalid_file_type"
	FileTooLarge            ErrorCode = "file_too_large"
	FileNotFound            ErrorCode = "file_not_found"
	MissingFile             ErrorCode = "missing_file"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	SlugConflict            ErrorCode = "slug_conflict"
	InvalidRole             ErrorCode = "invalid_role"
	WeakPassword            ErrorCode = "weak_password"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	UnprocessibleEntity:     http.StatusUnprocessableEntity,
	InvalidCredentials:      http.StatusUnauthorized,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	InvalidFileType:         http.StatusBadRequest,
	FileTooLarge:            http.StatusRequestEntityTooLarge,
	FileNotFound:            http.StatusNotFound,
	MissingFile:             http.StatusBadRequest,
	RecipeNotFound:          http.StatusNotFound,
	SlugConflict:            http.StatusConflict,
	InvalidRole:             http.StatusBadRequest,
	WeakPassword:            http.StatusUnprocessableEntity,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
