package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"voice-srv/internal/analysis"
	"voice-srv/internal/analysis/repository"
	"voice-srv/internal/model"
	"voice-srv/pkg/paginator"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const createRunQuery = `
	INSERT INTO analysis_runs (id, status, depth, focus_areas, requested_by, requested_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

const detailRunQuery = `
	SELECT id, status, depth, focus_areas, sample_count, profile, error_message, requested_by, requested_at, completed_at
	FROM analysis_runs
	WHERE id = $1`

// Create inserts a new run row.
func (r *implRunRepository) Create(ctx context.Context, opts repository.CreateRunOptions) (model.AnalysisRun, error) {
	_, err := r.db.ExecContext(ctx, createRunQuery,
		opts.ID,
		string(opts.Status),
		opts.Depth,
		pq.Array(opts.FocusAreas),
		opts.RequestedBy,
		opts.RequestedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Create: %v", err)
		return model.AnalysisRun{}, fmt.Errorf("failed to create analysis run: %w", err)
	}

	return model.AnalysisRun{
		ID:          opts.ID,
		Status:      opts.Status,
		Depth:       opts.Depth,
		FocusAreas:  opts.FocusAreas,
		RequestedBy: opts.RequestedBy,
		RequestedAt: opts.RequestedAt,
	}, nil
}

// Update patches the run row; nil option fields leave columns untouched.
func (r *implRunRepository) Update(ctx context.Context, opts repository.UpdateRunOptions) error {
	sets := []string{"status = $1"}
	args := []any{string(opts.Status)}

	if opts.SampleCount != nil {
		args = append(args, *opts.SampleCount)
		sets = append(sets, fmt.Sprintf("sample_count = $%d", len(args)))
	}
	if opts.Profile != nil {
		snapshot, err := json.Marshal(opts.Profile)
		if err != nil {
			r.l.Errorf(ctx, "analysis.repository.postgre.Update: marshal profile: %v", err)
			return fmt.Errorf("failed to encode profile snapshot: %w", err)
		}
		args = append(args, snapshot)
		sets = append(sets, fmt.Sprintf("profile = $%d", len(args)))
	}
	if opts.Error != nil {
		args = append(args, *opts.Error)
		sets = append(sets, fmt.Sprintf("error_message = $%d", len(args)))
	}
	if opts.CompletedAt != nil {
		args = append(args, *opts.CompletedAt)
		sets = append(sets, fmt.Sprintf("completed_at = $%d", len(args)))
	}

	args = append(args, opts.ID)
	query := fmt.Sprintf("UPDATE analysis_runs SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Update: %v", err)
		return fmt.Errorf("failed to update analysis run: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return analysis.ErrRunNotFound
	}
	return nil
}

// Detail fetches one run row.
func (r *implRunRepository) Detail(ctx context.Context, id uuid.UUID) (model.AnalysisRun, error) {
	run, err := r.scanRun(r.db.QueryRowContext(ctx, detailRunQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AnalysisRun{}, analysis.ErrRunNotFound
		}
		r.l.Errorf(ctx, "analysis.repository.postgre.Detail: %v", err)
		return model.AnalysisRun{}, fmt.Errorf("failed to fetch analysis run: %w", err)
	}
	return run, nil
}

// List pages through runs, newest first, optionally filtered by status.
func (r *implRunRepository) List(ctx context.Context, opts repository.ListRunsOptions) ([]model.AnalysisRun, paginator.Paginator, error) {
	where := ""
	countArgs := []any{}
	if opts.Status != "" {
		where = "WHERE status = $1"
		countArgs = append(countArgs, string(opts.Status))
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM analysis_runs %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.List: count: %v", err)
		return nil, paginator.Paginator{}, fmt.Errorf("failed to count analysis runs: %w", err)
	}

	args := append([]any{}, countArgs...)
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())
	listQuery := fmt.Sprintf(`
		SELECT id, status, depth, focus_areas, sample_count, profile, error_message, requested_by, requested_at, completed_at
		FROM analysis_runs
		%s
		ORDER BY requested_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.List: %v", err)
		return nil, paginator.Paginator{}, fmt.Errorf("failed to list analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []model.AnalysisRun
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			r.l.Errorf(ctx, "analysis.repository.postgre.List: scan: %v", err)
			return nil, paginator.Paginator{}, fmt.Errorf("failed to scan analysis run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.List: rows: %v", err)
		return nil, paginator.Paginator{}, fmt.Errorf("failed to list analysis runs: %w", err)
	}

	return runs, paginator.Paginator{
		Total:       total,
		Count:       int64(len(runs)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRunRepository) scanRun(row rowScanner) (model.AnalysisRun, error) {
	var (
		run         model.AnalysisRun
		status      string
		focusAreas  pq.StringArray
		sampleCount sql.NullInt64
		snapshot    []byte
		errMsg      sql.NullString
		completedAt sql.NullTime
	)

	if err := row.Scan(
		&run.ID,
		&status,
		&run.Depth,
		&focusAreas,
		&sampleCount,
		&snapshot,
		&errMsg,
		&run.RequestedBy,
		&run.RequestedAt,
		&completedAt,
	); err != nil {
		return model.AnalysisRun{}, err
	}

	run.Status = model.AnalysisStatus(status)
	run.FocusAreas = focusAreas
	if sampleCount.Valid {
		run.SampleCount = int(sampleCount.Int64)
	}
	if errMsg.Valid {
		run.Error = errMsg.String
	}
	if completedAt.Valid {
		t := completedAt.Time
		run.CompletedAt = &t
	}
	if len(snapshot) > 0 {
		var profile model.VoiceProfile
		if err := json.Unmarshal(snapshot, &profile); err != nil {
			return model.AnalysisRun{}, fmt.Errorf("corrupt profile snapshot: %w", err)
		}
		run.Profile = &profile
	}
	return run, nil
}
