package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-system/pkg/contextkeys"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/service"
	"employee-system/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth validates the bearer token and injects the caller identity into the
// request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrEmptyAuthHeader.Error(), nil), m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidAuthHeader.Error(), nil), m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), nil), m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrTokenIsNotAccess.Error(), nil), m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.CallerKey, claims.Caller())
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// AdminOnly gates a route on the admin role. It must run after Auth.
func (m *AuthMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, err := utils.GetCallerFromCtx(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), nil), m.logger)
		}
		if !caller.IsAdmin() {
			m.logger.Warn("non-admin attempted an admin route",
				zap.Uint64("callerID", caller.ID),
				zap.String("path", c.Path()),
			)
			return utils.ErrorResponse(c, apperrors.NewForbiddenError("Admin access required"), m.logger)
		}
		return next(c)
	}
}
