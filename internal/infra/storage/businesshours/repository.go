package businesshours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/dbmetrics"
	"github.com/rafaelruch/agendapro-sub002/pkg/psqlbuilder"
)

var hoursColumns = []string{
	"id",
	"tenant_id",
	"day_of_week",
	"start_time",
	"end_time",
	"active",
	"created_at",
	"updated_at",
}

// Repository manages tenant business-hours rows.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a business-hours repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenant fetches every business-hours row of a tenant, active and
// inactive alike; the availability gate does its own active filtering.
func (r *Repository) GetByTenant(ctx context.Context, tenantID int64) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHours(rows)
}

// GetByTenantAndDay fetches the rows of one weekday.
func (r *Repository) GetByTenantAndDay(ctx context.Context, tenantID int64, dayOfWeek int) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID, "day_of_week": dayOfWeek}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHours(rows)
}

// HasAny reports whether the tenant has configured business hours on any
// weekday at all. Distinguishes the never-configured tenant (policy-driven)
// from an explicitly closed day (always closed).
func (r *Repository) HasAny(ctx context.Context, tenantID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasAny - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasAny - execute query: %v", ErrExecQuery, err)
	}
	return true, nil
}

// ReplaceForDay atomically replaces the rows of one weekday. Meant to run
// inside a transaction opened by the caller.
func (r *Repository) ReplaceForDay(ctx context.Context, tenantID int64, dayOfWeek int, rows []*domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID, "day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForDay - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForDay - execute delete: %v", ErrExecQuery, err)
	}

	if len(rows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("tenant_id", "day_of_week", "start_time", "end_time", "active")

	for _, row := range rows {
		insertBuilder = insertBuilder.Values(tenantID, dayOfWeek, row.StartTime, row.EndTime, row.Active)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func scanHours(rows *sql.Rows) ([]*domain.BusinessHours, error) {
	result := make([]*domain.BusinessHours, 0)

	for rows.Next() {
		var bh domain.BusinessHours
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&bh.ID,
			&bh.TenantID,
			&bh.DayOfWeek,
			&bh.StartTime,
			&bh.EndTime,
			&bh.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanHours - scan row: %v", ErrScanRow, err)
		}

		bh.CreatedAt = createdAt.Time
		bh.UpdatedAt = updatedAt.Time

		result = append(result, &bh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHours - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
