package analysis

import "errors"

var (
	ErrEmptyCorpus  = errors.New("analysis: no readable samples in corpus")
	ErrInvalidDepth = errors.New("analysis: invalid analysis depth")
	ErrRunNotFound  = errors.New("analysis: run not found")

	ErrAsyncUnavailable = errors.New("analysis: async analysis is not configured")
)
