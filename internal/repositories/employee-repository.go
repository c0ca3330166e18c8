package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-system/internal/dto"
	"employee-system/internal/entities"
	apperrors "employee-system/pkg/errors"
)

const employeeColumns = "e.id, e.name, e.office_id, e.is_registered_on_igot, e.courses_enrolled, e.courses_completed, e.report_date, e.is_frozen, e.created_by, e.created_at, e.updated_at"

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, officeID *uint64) ([]dto.EmployeeDTO, error)
	GetEmployeeReport(ctx context.Context, filter dto.EmployeeReportFilter) ([]dto.EmployeeDTO, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	FindEmployeeDetail(ctx context.Context, id uint64) (*dto.EmployeeDTO, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) (uint64, error)
	UpdateEmployee(ctx context.Context, employee entities.Employee) error
	DeleteEmployee(ctx context.Context, id uint64) error
	SetFrozen(ctx context.Context, id uint64, frozen bool) error
	CountEmployeesByOffice(ctx context.Context, officeID uint64) (uint64, error)
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
}

func NewEmployeeRepository(storage *pgxpool.Pool) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage}
}

// GetEmployees lists employees with the office reference resolved, restricted
// to one office when a visibility scope is set.
func (r *EmployeeRepository) GetEmployees(ctx context.Context, officeID *uint64) ([]dto.EmployeeDTO, error) {
	builder := psql.Select(employeeColumns).
		Columns("o.name", "o.location").
		From("employees e").
		LeftJoin("offices o ON e.office_id = o.id").
		OrderBy("e.id")
	if officeID != nil {
		builder = builder.Where(sq.Eq{"e.office_id": *officeID})
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

	employees := make([]dto.EmployeeDTO, 0)
	for rows.Next() {
		var employee dto.EmployeeDTO
		var officeName, officeLocation *string

		err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.OfficeID,
			&employee.IsRegisteredOnIGOT,
			&employee.CoursesEnrolled,
			&employee.CoursesCompleted,
			&employee.ReportDate,
			&employee.IsFrozen,
			new(uint64), // created_by resolved only on detail reads
			&employee.CreatedAt,
			&employee.UpdatedAt,
			&officeName,
			&officeLocation,
		)
		if err != nil {
			return nil, err
		}
		if officeName != nil && officeLocation != nil {
			employee.Office = &dto.ShortOfficeDTO{Name: *officeName, Location: *officeLocation}
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

// GetEmployeeReport lists employees with both references resolved and an
// optional inclusive report_date range applied.
func (r *EmployeeRepository) GetEmployeeReport(ctx context.Context, filter dto.EmployeeReportFilter) ([]dto.EmployeeDTO, error) {
	builder := psql.Select(employeeColumns).
		Columns("o.name", "o.location", "u.id", "u.fio").
		From("employees e").
		LeftJoin("offices o ON e.office_id = o.id").
		LeftJoin("users u ON e.created_by = u.id").
		OrderBy("e.id")

	if filter.OfficeID != nil {
		builder = builder.Where(sq.Eq{"e.office_id": *filter.OfficeID})
	}
	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"e.report_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"e.report_date": *filter.EndDate})
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

	employees := make([]dto.EmployeeDTO, 0)
	for rows.Next() {
		employee, err := scanEmployeeDetail(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *employee)
	}
	return employees, rows.Err()
}

func scanEmployeeDetail(row pgx.Row) (*dto.EmployeeDTO, error) {
	var employee dto.EmployeeDTO
	var officeName, officeLocation *string
	var creatorID *uint64
	var creatorFio *string

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.OfficeID,
		&employee.IsRegisteredOnIGOT,
		&employee.CoursesEnrolled,
		&employee.CoursesCompleted,
		&employee.ReportDate,
		&employee.IsFrozen,
		new(uint64),
		&employee.CreatedAt,
		&employee.UpdatedAt,
		&officeName,
		&officeLocation,
		&creatorID,
		&creatorFio,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}
	if officeName != nil && officeLocation != nil {
		employee.Office = &dto.ShortOfficeDTO{Name: *officeName, Location: *officeLocation}
	}
	if creatorID != nil && creatorFio != nil {
		employee.CreatedBy = &dto.ShortUserDTO{ID: *creatorID, Fio: *creatorFio}
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	query, args, err := psql.Select(employeeColumns).From("employees e").Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var employee entities.Employee
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&employee.ID,
		&employee.Name,
		&employee.OfficeID,
		&employee.IsRegisteredOnIGOT,
		&employee.CoursesEnrolled,
		&employee.CoursesCompleted,
		&employee.ReportDate,
		&employee.IsFrozen,
		&employee.CreatedBy,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindEmployeeDetail(ctx context.Context, id uint64) (*dto.EmployeeDTO, error) {
	query, args, err := psql.Select(employeeColumns).
		Columns("o.name", "o.location", "u.id", "u.fio").
		From("employees e").
		LeftJoin("offices o ON e.office_id = o.id").
		LeftJoin("users u ON e.created_by = u.id").
		Where(sq.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEmployeeDetail(r.storage.QueryRow(ctx, query, args...))
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee entities.Employee) (uint64, error) {
	query, args, err := psql.Insert("employees").
		Columns("name", "office_id", "is_registered_on_igot", "courses_enrolled", "courses_completed", "report_date", "created_by").
		Values(
			employee.Name,
			employee.OfficeID,
			employee.IsRegisteredOnIGOT,
			employee.CoursesEnrolled,
			employee.CoursesCompleted,
			employee.ReportDate,
			employee.CreatedBy,
		).
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

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, employee entities.Employee) error {
	query, args, err := psql.Update("employees").
		Set("name", employee.Name).
		Set("office_id", employee.OfficeID).
		Set("is_registered_on_igot", employee.IsRegisteredOnIGOT).
		Set("courses_enrolled", employee.CoursesEnrolled).
		Set("courses_completed", employee.CoursesCompleted).
		Set("report_date", employee.ReportDate).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": employee.ID}).
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

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete("employees").Where(sq.Eq{"id": id}).ToSql()
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

// SetFrozen flips the freeze flag unconditionally; freezing an already frozen
// record is a no-op success.
func (r *EmployeeRepository) SetFrozen(ctx context.Context, id uint64, frozen bool) error {
	query, args, err := psql.Update("employees").
		Set("is_frozen", frozen).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
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

func (r *EmployeeRepository) CountEmployeesByOffice(ctx context.Context, officeID uint64) (uint64, error) {
	query, args, err := psql.Select("COUNT(*)").From("employees").Where(sq.Eq{"office_id": officeID}).ToSql()
	if err != nil {
		return 0, err
	}

	var count uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
