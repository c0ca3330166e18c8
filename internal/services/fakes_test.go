package services

import (
	"context"
	"time"

	"employee-system/internal/dto"
	"employee-system/internal/entities"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/types"
)

// In-memory repository fakes shared by the service tests.

type fakeEmployeeRepository struct {
	employees  map[uint64]entities.Employee
	nextID     uint64
	lastScope  *uint64
	lastFilter dto.EmployeeReportFilter
}

func newFakeEmployeeRepository(seed ...entities.Employee) *fakeEmployeeRepository {
	r := &fakeEmployeeRepository{employees: make(map[uint64]entities.Employee), nextID: 1}
	for _, e := range seed {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
		r.employees[e.ID] = e
	}
	return r
}

func toDetailDTO(e entities.Employee) *dto.EmployeeDTO {
	return &dto.EmployeeDTO{
		ID:                 e.ID,
		Name:               e.Name,
		OfficeID:           e.OfficeID,
		IsRegisteredOnIGOT: e.IsRegisteredOnIGOT,
		CoursesEnrolled:    e.CoursesEnrolled,
		CoursesCompleted:   e.CoursesCompleted,
		ReportDate:         e.ReportDate,
		IsFrozen:           e.IsFrozen,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func (r *fakeEmployeeRepository) GetEmployees(_ context.Context, officeID *uint64) ([]dto.EmployeeDTO, error) {
	r.lastScope = officeID
	var out []dto.EmployeeDTO
	for _, e := range r.employees {
		if officeID != nil && e.OfficeID != *officeID {
			continue
		}
		out = append(out, *toDetailDTO(e))
	}
	return out, nil
}

func (r *fakeEmployeeRepository) GetEmployeeReport(_ context.Context, filter dto.EmployeeReportFilter) ([]dto.EmployeeDTO, error) {
	r.lastFilter = filter
	var out []dto.EmployeeDTO
	for _, e := range r.employees {
		if filter.OfficeID != nil && e.OfficeID != *filter.OfficeID {
			continue
		}
		if filter.StartDate != nil && e.ReportDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.ReportDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, *toDetailDTO(e))
	}
	return out, nil
}

func (r *fakeEmployeeRepository) FindEmployee(_ context.Context, id uint64) (*entities.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	copy := e
	return &copy, nil
}

func (r *fakeEmployeeRepository) FindEmployeeDetail(_ context.Context, id uint64) (*dto.EmployeeDTO, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return toDetailDTO(e), nil
}

func (r *fakeEmployeeRepository) CreateEmployee(_ context.Context, employee entities.Employee) (uint64, error) {
	employee.ID = r.nextID
	r.nextID++
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.employees[employee.ID] = employee
	return employee.ID, nil
}

func (r *fakeEmployeeRepository) UpdateEmployee(_ context.Context, employee entities.Employee) error {
	if _, ok := r.employees[employee.ID]; !ok {
		return apperrors.ErrRecordNotFound
	}
	employee.UpdatedAt = time.Now()
	r.employees[employee.ID] = employee
	return nil
}

func (r *fakeEmployeeRepository) DeleteEmployee(_ context.Context, id uint64) error {
	if _, ok := r.employees[id]; !ok {
		return apperrors.ErrRecordNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepository) SetFrozen(_ context.Context, id uint64, frozen bool) error {
	e, ok := r.employees[id]
	if !ok {
		return apperrors.ErrRecordNotFound
	}
	e.IsFrozen = frozen
	r.employees[id] = e
	return nil
}

func (r *fakeEmployeeRepository) CountEmployeesByOffice(_ context.Context, officeID uint64) (uint64, error) {
	var n uint64
	for _, e := range r.employees {
		if e.OfficeID == officeID {
			n++
		}
	}
	return n, nil
}

type fakeOfficeRepository struct {
	offices   map[uint64]entities.Office
	nextID    uint64
	lastScope *uint64
}

func newFakeOfficeRepository(seed ...entities.Office) *fakeOfficeRepository {
	r := &fakeOfficeRepository{offices: make(map[uint64]entities.Office), nextID: 1}
	for _, o := range seed {
		if o.ID >= r.nextID {
			r.nextID = o.ID + 1
		}
		r.offices[o.ID] = o
	}
	return r
}

func (r *fakeOfficeRepository) GetOffices(_ context.Context, officeID *uint64) ([]entities.Office, error) {
	r.lastScope = officeID
	var out []entities.Office
	for _, o := range r.offices {
		if officeID != nil && o.ID != *officeID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOfficeRepository) FindOffice(_ context.Context, id uint64) (*entities.Office, error) {
	o, ok := r.offices[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	copy := o
	return &copy, nil
}

func (r *fakeOfficeRepository) CreateOffice(_ context.Context, office entities.Office) (uint64, error) {
	office.ID = r.nextID
	r.nextID++
	now := time.Now()
	office.CreatedAt = now
	office.UpdatedAt = now
	r.offices[office.ID] = office
	return office.ID, nil
}

func (r *fakeOfficeRepository) UpdateOffice(_ context.Context, office entities.Office) error {
	if _, ok := r.offices[office.ID]; !ok {
		return apperrors.ErrRecordNotFound
	}
	r.offices[office.ID] = office
	return nil
}

func (r *fakeOfficeRepository) DeleteOffice(_ context.Context, id uint64) error {
	if _, ok := r.offices[id]; !ok {
		return apperrors.ErrRecordNotFound
	}
	delete(r.offices, id)
	return nil
}

type fakeCacheRepository struct {
	values      map[string]string
	deletedKeys []string
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{values: make(map[string]string)}
}

func (r *fakeCacheRepository) Get(_ context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", apperrors.ErrRecordNotFound
	}
	return v, nil
}

func (r *fakeCacheRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s, ok := value.(string); ok {
		r.values[key] = s
	}
	return nil
}

func (r *fakeCacheRepository) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(r.values, key)
		r.deletedKeys = append(r.deletedKeys, key)
	}
	return nil
}

type fakeDashboardRepository struct {
	totals    types.DashboardTotals
	calls     int
	lastScope *uint64
}

func (r *fakeDashboardRepository) GetEmployeeTotals(_ context.Context, officeID *uint64) (*types.DashboardTotals, error) {
	r.calls++
	r.lastScope = officeID
	totals := r.totals
	return &totals, nil
}
