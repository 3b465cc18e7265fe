package http

import (
	"errors"

	"voice-srv/internal/analysis"
	pkgErrors "voice-srv/pkg/errors"
)

var (
	errEmptyCorpus = pkgErrors.NewHTTPError(
		400, "No readable writing samples found in the corpus",
	)
	errInvalidDepth = pkgErrors.NewHTTPError(
		400, "Analysis depth must be basic, comprehensive or detailed",
	)
	errRunNotFound = pkgErrors.NewHTTPError(
		404, "Analysis run not found",
	)
	errAsyncUnavailable = pkgErrors.NewHTTPError(
		503, "Asynchronous analysis is not available",
	)
	errInvalidRunID = pkgErrors.NewHTTPError(
		400, "Invalid analysis run id",
	)
	errInvalidElicitation = pkgErrors.NewHTTPError(
		400, "Invalid elicitation action",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrEmptyCorpus):
		return errEmptyCorpus
	case errors.Is(err, analysis.ErrInvalidDepth):
		return errInvalidDepth
	case errors.Is(err, analysis.ErrRunNotFound):
		return errRunNotFound
	case errors.Is(err, analysis.ErrAsyncUnavailable):
		return errAsyncUnavailable
	default:
		panic(err)
	}
}
