package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/dbmetrics"
	"github.com/rafaelruch/agendapro-sub002/pkg/psqlbuilder"
)

// Repository reads professionals and their weekly schedules.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a professional repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one professional with schedule entries attached.
func (r *Repository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"service_ids",
		"active",
		"created_at",
		"updated_at",
	).
		From("professionals").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var prof domain.Professional
	var serviceIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prof.ID,
		&prof.TenantID,
		&prof.Name,
		&serviceIDs,
		&prof.Active,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	prof.ServiceIDs = []int64(serviceIDs)
	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	schedules, err := r.getSchedules(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	prof.Schedules = schedules

	return &prof, nil
}

// getSchedules loads the weekly schedule entries of one professional.
func (r *Repository) getSchedules(ctx context.Context, executor dbmetrics.DBExecutor, professionalID int64) ([]domain.ScheduleEntry, error) {
	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("professional_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.ScheduleEntry, 0)
	for rows.Next() {
		var entry domain.ScheduleEntry
		if err := rows.Scan(&entry.DayOfWeek, &entry.StartTime, &entry.EndTime); err != nil {
			return nil, fmt.Errorf("%w: getSchedules - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSchedules - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
