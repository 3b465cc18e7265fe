package repository

import (
	"time"

	"voice-srv/internal/model"
	"voice-srv/pkg/paginator"

	"github.com/google/uuid"
)

// CreateRunOptions holds the fields of a new run row.
type CreateRunOptions struct {
	ID          uuid.UUID
	Status      model.AnalysisStatus
	Depth       string
	FocusAreas  []string
	RequestedBy string
	RequestedAt time.Time
}

// UpdateRunOptions holds the mutable fields of a run row. Nil pointers leave
// the column untouched.
type UpdateRunOptions struct {
	ID          uuid.UUID
	Status      model.AnalysisStatus
	SampleCount *int
	Profile     *model.VoiceProfile
	Error       *string
	CompletedAt *time.Time
}

// ListRunsOptions filters and pages the run history.
type ListRunsOptions struct {
	PaginateQuery paginator.PaginateQuery
	Status        model.AnalysisStatus
}
