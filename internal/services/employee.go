package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"employee-system/internal/dto"
	"employee-system/internal/entities"
	"employee-system/internal/repositories"
	"employee-system/internal/validation"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/types"
)

const (
	timeFormat = time.RFC3339
	dateFormat = "2006-01-02"

	frozenRecordMessage = "This record is frozen and cannot be modified"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context, caller types.Caller) ([]dto.EmployeeResponseDTO, error)
	GetEmployeeReport(ctx context.Context, caller types.Caller, startDate, endDate *time.Time) ([]dto.EmployeeResponseDTO, error)
	FindEmployee(ctx context.Context, caller types.Caller, id uint64) (*dto.EmployeeResponseDTO, error)
	CreateEmployee(ctx context.Context, caller types.Caller, payload dto.CreateEmployeeDTO) (*dto.EmployeeResponseDTO, error)
	UpdateEmployee(ctx context.Context, caller types.Caller, id uint64, payload dto.UpdateEmployeeDTO) (*dto.EmployeeResponseDTO, error)
	DeleteEmployee(ctx context.Context, caller types.Caller, id uint64) error
	SetFrozen(ctx context.Context, caller types.Caller, id uint64, frozen bool) (*dto.EmployeeResponseDTO, error)
}

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	officeRepository   repositories.OfficeRepositoryInterface
	cacheRepository    repositories.CacheRepositoryInterface
	logger             *zap.Logger
}

func NewEmployeeService(
	employeeRepository repositories.EmployeeRepositoryInterface,
	officeRepository repositories.OfficeRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) EmployeeServiceInterface {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		officeRepository:   officeRepository,
		cacheRepository:    cacheRepository,
		logger:             logger,
	}
}

func toEmployeeResponseDTO(employee *dto.EmployeeDTO) *dto.EmployeeResponseDTO {
	if employee == nil {
		return nil
	}
	return &dto.EmployeeResponseDTO{
		ID:                 employee.ID,
		Name:               employee.Name,
		OfficeID:           employee.OfficeID,
		Office:             employee.Office,
		IsRegisteredOnIGOT: employee.IsRegisteredOnIGOT,
		CoursesEnrolled:    employee.CoursesEnrolled,
		CoursesCompleted:   employee.CoursesCompleted,
		ReportDate:         employee.ReportDate.Format(timeFormat),
		IsFrozen:           employee.IsFrozen,
		CreatedBy:          employee.CreatedBy,
		CreatedAt:          employee.CreatedAt.Format(timeFormat),
		UpdatedAt:          employee.UpdatedAt.Format(timeFormat),
	}
}

func toEmployeeResponseDTOs(employees []dto.EmployeeDTO) []dto.EmployeeResponseDTO {
	responseDTOs := make([]dto.EmployeeResponseDTO, 0, len(employees))
	for i := range employees {
		responseDTOs = append(responseDTOs, *toEmployeeResponseDTO(&employees[i]))
	}
	return responseDTOs
}

// invalidateDashboard drops the cached aggregates touched by a mutation in
// the given office.
func (s *EmployeeService) invalidateDashboard(ctx context.Context, officeIDs ...uint64) {
	keys := []string{DashboardCacheKeyAll()}
	for _, officeID := range officeIDs {
		keys = append(keys, DashboardCacheKeyOffice(officeID))
	}
	if err := s.cacheRepository.Del(ctx, keys...); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func (s *EmployeeService) GetEmployees(ctx context.Context, caller types.Caller) ([]dto.EmployeeResponseDTO, error) {
	employees, err := s.employeeRepository.GetEmployees(ctx, visibilityScope(caller))
	if err != nil {
		s.logger.Error("listing employees failed", zap.Error(err))
		return nil, err
	}
	return toEmployeeResponseDTOs(employees), nil
}

func (s *EmployeeService) GetEmployeeReport(ctx context.Context, caller types.Caller, startDate, endDate *time.Time) ([]dto.EmployeeResponseDTO, error) {
	filter := dto.EmployeeReportFilter{
		OfficeID:  visibilityScope(caller),
		StartDate: startDate,
		EndDate:   endDate,
	}

	employees, err := s.employeeRepository.GetEmployeeReport(ctx, filter)
	if err != nil {
		s.logger.Error("building employee report failed", zap.Error(err))
		return nil, err
	}
	return toEmployeeResponseDTOs(employees), nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, caller types.Caller, id uint64) (*dto.EmployeeResponseDTO, error) {
	employee, err := s.employeeRepository.FindEmployeeDetail(ctx, id)
	if err != nil {
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Employee not found")
		}
		return nil, err
	}
	if !caller.IsAdmin() && employee.OfficeID != caller.OfficeID {
		return nil, apperrors.NewForbiddenError("You do not have access to this employee")
	}
	return toEmployeeResponseDTO(employee), nil
}

func parseReportDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, dateFormat} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, caller types.Caller, payload dto.CreateEmployeeDTO) (*dto.EmployeeResponseDTO, error) {
	if !caller.IsAdmin() && payload.OfficeID != caller.OfficeID {
		return nil, apperrors.NewForbiddenError("You can only create employees in your own office")
	}

	// Not registered on the training platform means both counters start at
	// zero regardless of the input.
	if !payload.IsRegisteredOnIGOT {
		payload.CoursesEnrolled = 0
		payload.CoursesCompleted = 0
	}

	violations := validation.EmployeeViolations(
		payload.Name,
		payload.OfficeID,
		payload.IsRegisteredOnIGOT,
		payload.CoursesEnrolled,
		payload.CoursesCompleted,
	)

	reportDate := time.Now()
	if payload.ReportDate != "" {
		parsed, ok := parseReportDate(payload.ReportDate)
		if !ok {
			violations = append(violations, "reportDate must be an RFC3339 timestamp or a YYYY-MM-DD date")
		} else {
			reportDate = parsed
		}
	}

	if len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	if _, err := s.officeRepository.FindOffice(ctx, payload.OfficeID); err != nil {
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Office not found")
		}
		return nil, err
	}

	employee := entities.Employee{
		Name:               payload.Name,
		OfficeID:           payload.OfficeID,
		IsRegisteredOnIGOT: payload.IsRegisteredOnIGOT,
		CoursesEnrolled:    payload.CoursesEnrolled,
		CoursesCompleted:   payload.CoursesCompleted,
		ReportDate:         reportDate,
		CreatedBy:          caller.ID,
	}

	newID, err := s.employeeRepository.CreateEmployee(ctx, employee)
	if err != nil {
		s.logger.Error("creating employee failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("employee created", zap.Uint64("id", newID), zap.Uint64("createdBy", caller.ID))
	s.invalidateDashboard(ctx, payload.OfficeID)

	created, err := s.employeeRepository.FindEmployeeDetail(ctx, newID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponseDTO(created), nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, caller types.Caller, id uint64, payload dto.UpdateEmployeeDTO) (*dto.EmployeeResponseDTO, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Employee not found")
		}
		return nil, err
	}

	// The freeze check holds for every caller, admins included.
	if employee.IsFrozen {
		return nil, apperrors.NewForbiddenError(frozenRecordMessage)
	}
	if !caller.IsAdmin() && employee.OfficeID != caller.OfficeID {
		return nil, apperrors.NewForbiddenError("You do not have access to this employee")
	}

	previousOfficeID := employee.OfficeID

	if payload.Name != nil {
		employee.Name = *payload.Name
	}
	if payload.OfficeID != nil {
		employee.OfficeID = *payload.OfficeID
	}
	if payload.IsRegisteredOnIGOT != nil {
		employee.IsRegisteredOnIGOT = *payload.IsRegisteredOnIGOT
	}
	if payload.CoursesEnrolled != nil {
		employee.CoursesEnrolled = *payload.CoursesEnrolled
	}
	if payload.CoursesCompleted != nil {
		employee.CoursesCompleted = *payload.CoursesCompleted
	}

	violations := validation.EmployeeViolations(
		employee.Name,
		employee.OfficeID,
		employee.IsRegisteredOnIGOT,
		employee.CoursesEnrolled,
		employee.CoursesCompleted,
	)
	if payload.ReportDate != nil {
		parsed, ok := parseReportDate(*payload.ReportDate)
		if !ok {
			violations = append(violations, "reportDate must be an RFC3339 timestamp or a YYYY-MM-DD date")
		} else {
			employee.ReportDate = parsed
		}
	}
	if len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	if !caller.IsAdmin() && employee.OfficeID != caller.OfficeID {
		return nil, apperrors.NewForbiddenError("You can not move an employee outside your own office")
	}
	if employee.OfficeID != previousOfficeID {
		if _, err := s.officeRepository.FindOffice(ctx, employee.OfficeID); err != nil {
			if err == apperrors.ErrRecordNotFound {
				return nil, apperrors.NewNotFoundError("Office not found")
			}
			return nil, err
		}
	}

	if err := s.employeeRepository.UpdateEmployee(ctx, *employee); err != nil {
		// The row can vanish between the find and the write.
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Employee not found")
		}
		s.logger.Error("updating employee failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	s.logger.Info("employee updated", zap.Uint64("id", id))
	s.invalidateDashboard(ctx, previousOfficeID, employee.OfficeID)

	updated, err := s.employeeRepository.FindEmployeeDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponseDTO(updated), nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, caller types.Caller, id uint64) error {
	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		if err == apperrors.ErrRecordNotFound {
			return apperrors.NewNotFoundError("Employee not found")
		}
		return err
	}

	if employee.IsFrozen {
		return apperrors.NewForbiddenError(frozenRecordMessage)
	}
	if !caller.IsAdmin() && employee.OfficeID != caller.OfficeID {
		return apperrors.NewForbiddenError("You do not have access to this employee")
	}

	if err := s.employeeRepository.DeleteEmployee(ctx, id); err != nil {
		if err == apperrors.ErrRecordNotFound {
			return apperrors.NewNotFoundError("Employee not found")
		}
		s.logger.Error("deleting employee failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("employee deleted", zap.Uint64("id", id))
	s.invalidateDashboard(ctx, employee.OfficeID)
	return nil
}

// SetFrozen flips the freeze flag. Re-freezing or re-unfreezing is a no-op
// success.
func (s *EmployeeService) SetFrozen(ctx context.Context, caller types.Caller, id uint64, frozen bool) (*dto.EmployeeResponseDTO, error) {
	if err := s.employeeRepository.SetFrozen(ctx, id, frozen); err != nil {
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Employee not found")
		}
		s.logger.Error("setting freeze flag failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	s.logger.Info("employee freeze flag set",
		zap.Uint64("id", id),
		zap.Bool("frozen", frozen),
		zap.Uint64("callerID", caller.ID),
	)

	updated, err := s.employeeRepository.FindEmployeeDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponseDTO(updated), nil
}
