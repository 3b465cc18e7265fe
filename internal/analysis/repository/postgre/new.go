package postgre

import (
	"database/sql"

	"voice-srv/internal/analysis/repository"
	"voice-srv/pkg/log"
)

type implRunRepository struct {
	l  log.Logger
	db *sql.DB
}

var _ repository.RunRepository = &implRunRepository{}

// NewRunRepository records analysis runs in the analysis_runs table.
func NewRunRepository(l log.Logger, db *sql.DB) repository.RunRepository {
	return &implRunRepository{l: l, db: db}
}
