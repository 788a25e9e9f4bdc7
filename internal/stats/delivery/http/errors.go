package http

import (
	"errors"
	"net/http"

	"studypal/internal/stats"
	pkgErrors "studypal/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, stats.ErrDataUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "task data is temporarily unavailable")
	case errors.Is(err, stats.ErrMissingUser):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, stats.ErrInvalidLimit):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
