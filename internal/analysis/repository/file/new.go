package file

import (
	"voice-srv/internal/analysis/repository"
	"voice-srv/pkg/log"
)

type implCorpusRepository struct {
	l   log.Logger
	dir string
}

type implProfileRepository struct {
	l    log.Logger
	path string
}

var (
	_ repository.CorpusRepository  = &implCorpusRepository{}
	_ repository.ProfileRepository = &implProfileRepository{}
)

// NewCorpusRepository reads writing samples from a directory tree.
func NewCorpusRepository(l log.Logger, dir string) repository.CorpusRepository {
	return &implCorpusRepository{l: l, dir: dir}
}

// NewProfileRepository persists the voice profile at path as a YAML document.
func NewProfileRepository(l log.Logger, path string) repository.ProfileRepository {
	return &implProfileRepository{l: l, path: path}
}
