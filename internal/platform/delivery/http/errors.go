package http

import (
	"errors"

	"voice-srv/internal/platform"
	pkgErrors "voice-srv/pkg/errors"
)

var (
	errInvalidName = pkgErrors.NewHTTPError(
		400, "Invalid platform name",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, platform.ErrInvalidName):
		return errInvalidName
	default:
		panic(err)
	}
}
