package platform

import "errors"

var (
	ErrInvalidName = errors.New("platform: invalid platform name")
)
