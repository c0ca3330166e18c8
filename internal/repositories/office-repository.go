package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-system/internal/entities"
	apperrors "employee-system/pkg/errors"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const officeColumns = "id, name, location, description, created_by, created_at, updated_at"

type OfficeRepositoryInterface interface {
	GetOffices(ctx context.Context, officeID *uint64) ([]entities.Office, error)
	FindOffice(ctx context.Context, id uint64) (*entities.Office, error)
	CreateOffice(ctx context.Context, office entities.Office) (uint64, error)
	UpdateOffice(ctx context.Context, office entities.Office) error
	DeleteOffice(ctx context.Context, id uint64) error
}

type OfficeRepository struct {
	storage *pgxpool.Pool
}

func NewOfficeRepository(storage *pgxpool.Pool) OfficeRepositoryInterface {
	return &OfficeRepository{storage: storage}
}

func scanOffice(row pgx.Row) (*entities.Office, error) {
	var office entities.Office
	err := row.Scan(
		&office.ID,
		&office.Name,
		&office.Location,
		&office.Description,
		&office.CreatedBy,
		&office.CreatedAt,
		&office.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}
	return &office, nil
}

// GetOffices returns every office, or only the one matching officeID when a
// visibility scope is set.
func (r *OfficeRepository) GetOffices(ctx context.Context, officeID *uint64) ([]entities.Office, error) {
	builder := psql.Select(officeColumns).From("offices").OrderBy("id")
	if officeID != nil {
		builder = builder.Where(sq.Eq{"id": *officeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offices := make([]entities.Office, 0)
	for rows.Next() {
		office, err := scanOffice(rows)
		if err != nil {
			return nil, err
		}
		offices = append(offices, *office)
	}
	return offices, rows.Err()
}

func (r *OfficeRepository) FindOffice(ctx context.Context, id uint64) (*entities.Office, error) {
	query, args, err := psql.Select(officeColumns).From("offices").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanOffice(r.storage.QueryRow(ctx, query, args...))
}

func (r *OfficeRepository) CreateOffice(ctx context.Context, office entities.Office) (uint64, error) {
	query, args, err := psql.Insert("offices").
		Columns("name", "location", "description", "created_by").
		Values(office.Name, office.Location, office.Description, office.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *OfficeRepository) UpdateOffice(ctx context.Context, office entities.Office) error {
	query, args, err := psql.Update("offices").
		Set("name", office.Name).
		Set("location", office.Location).
		Set("description", office.Description).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": office.ID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

func (r *OfficeRepository) DeleteOffice(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete("offices").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}
