package http

import (
	"errors"
	"net/http"

	"procurement/internal/pkg/errs"
)

// statusFromError maps domain errors onto HTTP status codes: validation and
// illegal transitions are client errors, missing objects are 404, uniqueness
// and referential conflicts are 409, everything else is a server error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreFailure):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
