package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"employee-system/internal/dto"
	"employee-system/internal/entities"
	"employee-system/internal/repositories"
	"employee-system/internal/validation"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/types"
)

type OfficeServiceInterface interface {
	GetOffices(ctx context.Context, caller types.Caller) ([]dto.OfficeResponseDTO, error)
	FindOffice(ctx context.Context, caller types.Caller, id uint64) (*dto.OfficeResponseDTO, error)
	CreateOffice(ctx context.Context, caller types.Caller, payload dto.CreateOfficeDTO) (*dto.OfficeResponseDTO, error)
	UpdateOffice(ctx context.Context, caller types.Caller, id uint64, payload dto.UpdateOfficeDTO) (*dto.OfficeResponseDTO, error)
	DeleteOffice(ctx context.Context, caller types.Caller, id uint64) error
}

type OfficeService struct {
	officeRepository   repositories.OfficeRepositoryInterface
	employeeRepository repositories.EmployeeRepositoryInterface
	logger             *zap.Logger
}

func NewOfficeService(
	officeRepository repositories.OfficeRepositoryInterface,
	employeeRepository repositories.EmployeeRepositoryInterface,
	logger *zap.Logger,
) OfficeServiceInterface {
	return &OfficeService{
		officeRepository:   officeRepository,
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

// visibilityScope returns nil for admins (see everything) and the caller's
// own office id otherwise.
func visibilityScope(caller types.Caller) *uint64 {
	if caller.IsAdmin() {
		return nil
	}
	officeID := caller.OfficeID
	return &officeID
}

func toOfficeResponseDTO(office *entities.Office) *dto.OfficeResponseDTO {
	if office == nil {
		return nil
	}
	return &dto.OfficeResponseDTO{
		ID:          office.ID,
		Name:        office.Name,
		Location:    office.Location,
		Description: office.Description.String,
		CreatedBy:   office.CreatedBy,
		CreatedAt:   office.CreatedAt.Format(timeFormat),
		UpdatedAt:   office.UpdatedAt.Format(timeFormat),
	}
}

func (s *OfficeService) GetOffices(ctx context.Context, caller types.Caller) ([]dto.OfficeResponseDTO, error) {
	offices, err := s.officeRepository.GetOffices(ctx, visibilityScope(caller))
	if err != nil {
		s.logger.Error("listing offices failed", zap.Error(err))
		return nil, err
	}

	responseDTOs := make([]dto.OfficeResponseDTO, 0, len(offices))
	for i := range offices {
		responseDTOs = append(responseDTOs, *toOfficeResponseDTO(&offices[i]))
	}
	return responseDTOs, nil
}

func (s *OfficeService) FindOffice(ctx context.Context, caller types.Caller, id uint64) (*dto.OfficeResponseDTO, error) {
	office, err := s.officeRepository.FindOffice(ctx, id)
	if err != nil {
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Office not found")
		}
		return nil, err
	}
	if !caller.IsAdmin() && office.ID != caller.OfficeID {
		return nil, apperrors.NewForbiddenError("You do not have access to this office")
	}
	return toOfficeResponseDTO(office), nil
}

func (s *OfficeService) CreateOffice(ctx context.Context, caller types.Caller, payload dto.CreateOfficeDTO) (*dto.OfficeResponseDTO, error) {
	if violations := validation.OfficeViolations(payload.Name, payload.Location); len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	office := entities.Office{
		Name:        payload.Name,
		Location:    payload.Location,
		Description: null.StringFromPtr(payload.Description),
		CreatedBy:   caller.ID,
	}

	newID, err := s.officeRepository.CreateOffice(ctx, office)
	if err != nil {
		s.logger.Error("creating office failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("office created", zap.Uint64("id", newID), zap.Uint64("createdBy", caller.ID))

	created, err := s.officeRepository.FindOffice(ctx, newID)
	if err != nil {
		return nil, err
	}
	return toOfficeResponseDTO(created), nil
}

func (s *OfficeService) UpdateOffice(ctx context.Context, caller types.Caller, id uint64, payload dto.UpdateOfficeDTO) (*dto.OfficeResponseDTO, error) {
	office, err := s.officeRepository.FindOffice(ctx, id)
	if err != nil {
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Office not found")
		}
		return nil, err
	}

	if payload.Name != nil {
		office.Name = *payload.Name
	}
	if payload.Location != nil {
		office.Location = *payload.Location
	}
	if payload.Description != nil {
		office.Description = null.StringFrom(*payload.Description)
	}

	if violations := validation.OfficeViolations(office.Name, office.Location); len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	if err := s.officeRepository.UpdateOffice(ctx, *office); err != nil {
		// The row can vanish between the find and the write.
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Office not found")
		}
		s.logger.Error("updating office failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	s.logger.Info("office updated", zap.Uint64("id", id))

	updated, err := s.officeRepository.FindOffice(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOfficeResponseDTO(updated), nil
}

func (s *OfficeService) DeleteOffice(ctx context.Context, caller types.Caller, id uint64) error {
	if _, err := s.officeRepository.FindOffice(ctx, id); err != nil {
		if err == apperrors.ErrRecordNotFound {
			return apperrors.NewNotFoundError("Office not found")
		}
		return err
	}

	// Refuse to orphan employee records.
	dependents, err := s.employeeRepository.CountEmployeesByOffice(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return apperrors.NewValidationError([]string{"office still has employees and can not be deleted"})
	}

	if err := s.officeRepository.DeleteOffice(ctx, id); err != nil {
		if err == apperrors.ErrRecordNotFound {
			return apperrors.NewNotFoundError("Office not found")
		}
		s.logger.Error("deleting office failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("office deleted", zap.Uint64("id", id))
	return nil
}
