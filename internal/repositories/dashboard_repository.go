package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-system/pkg/types"
)

type DashboardRepositoryInterface interface {
	GetEmployeeTotals(ctx context.Context, officeID *uint64) (*types.DashboardTotals, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

// GetEmployeeTotals aggregates the caller-visible employee set in one query.
func (r *DashboardRepository) GetEmployeeTotals(ctx context.Context, officeID *uint64) (*types.DashboardTotals, error) {
	builder := psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE is_registered_on_igot)",
		"COALESCE(SUM(courses_enrolled), 0)",
		"COALESCE(SUM(courses_completed), 0)",
	).From("employees")
	if officeID != nil {
		builder = builder.Where(sq.Eq{"office_id": *officeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var totals types.DashboardTotals
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&totals.TotalEmployees,
		&totals.RegisteredOnIGOT,
		&totals.TotalCoursesEnrolled,
		&totals.TotalCoursesCompleted,
	)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
