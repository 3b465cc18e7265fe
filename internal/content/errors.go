package content

import "errors"

var (
	ErrEmptyInput      = errors.New("content: empty content")
	ErrDeclined        = errors.New("content: preferences declined")
	ErrCancelled       = errors.New("content: request cancelled")
	ErrMissingPlatform = errors.New("content: target platform is required")
	ErrInvalidCategory = errors.New("content: invalid output category")
	ErrInvalidFilename = errors.New("content: invalid output filename")
)
