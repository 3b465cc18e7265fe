package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus is the lifecycle state of an analysis run.
type AnalysisStatus string

const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusRunning   AnalysisStatus = "running"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
)

// AnalysisRun records one voice analysis request and its outcome.
type AnalysisRun struct {
	ID          uuid.UUID
	Status      AnalysisStatus
	Depth       string
	FocusAreas  []string
	SampleCount int
	Profile     *VoiceProfile
	Error       string
	RequestedBy string
	RequestedAt time.Time
	CompletedAt *time.Time
}
