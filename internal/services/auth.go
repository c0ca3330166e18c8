package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"employee-system/internal/dto"
	"employee-system/internal/entities"
	"employee-system/internal/repositories"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/service"
	"employee-system/pkg/types"
	"employee-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	jwtService     service.JWTService
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func callerFromUser(user *entities.User) types.Caller {
	return types.Caller{
		ID:       user.ID,
		Role:     user.Role,
		OfficeID: user.OfficeID.Uint64,
	}
}

func (s *AuthService) issueTokens(user *entities.User) (*dto.TokenPairDTO, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(callerFromUser(user))
	if err != nil {
		s.logger.Error("issuing tokens failed", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), nil)
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, payload.Password) {
		s.logger.Warn("failed login attempt", zap.String("email", payload.Email))
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), nil)
	}

	s.logger.Info("user logged in", zap.Uint64("userID", user.ID))
	return s.issueTokens(user)
}

// Refresh re-reads the user so role or office changes take effect on the next
// token pair.
func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), nil)
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrTokenIsNotRefresh.Error(), nil)
	}

	user, err := s.userRepository.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if err == apperrors.ErrRecordNotFound {
			return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidToken.Error(), nil)
		}
		return nil, err
	}
	return s.issueTokens(user)
}
