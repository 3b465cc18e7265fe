package http

import (
	"errors"

	"voice-srv/internal/content"
	pkgErrors "voice-srv/pkg/errors"
)

var (
	errEmptyInput = pkgErrors.NewHTTPError(
		400, "Content is empty",
	)
	errMissingPlatform = pkgErrors.NewHTTPError(
		400, "Target platform is required",
	)
	errInvalidCategory = pkgErrors.NewHTTPError(
		400, "Output category must be draft or final",
	)
	errInvalidFilename = pkgErrors.NewHTTPError(
		400, "Invalid output filename",
	)
	errInvalidElicitation = pkgErrors.NewHTTPError(
		400, "Invalid elicitation action",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, content.ErrEmptyInput):
		return errEmptyInput
	case errors.Is(err, content.ErrMissingPlatform):
		return errMissingPlatform
	case errors.Is(err, content.ErrInvalidCategory):
		return errInvalidCategory
	case errors.Is(err, content.ErrInvalidFilename):
		return errInvalidFilename
	default:
		panic(err)
	}
}
