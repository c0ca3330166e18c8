package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-system/internal/dto"
	"employee-system/internal/services"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/utils"
)

type OfficeController struct {
	officeService services.OfficeServiceInterface
	logger        *zap.Logger
}

func NewOfficeController(officeService services.OfficeServiceInterface, logger *zap.Logger) *OfficeController {
	return &OfficeController{officeService: officeService, logger: logger}
}

// parseID treats a malformed id the same as a missing record.
func parseID(ctx echo.Context, notFoundMessage string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewNotFoundError(notFoundMessage)
	}
	return id, nil
}

func (c *OfficeController) GetOffices(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	offices, err := c.officeService.GetOffices(ctx.Request().Context(), caller)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, offices, len(offices))
}

func (c *OfficeController) FindOffice(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx, "Office not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	office, err := c.officeService.FindOffice(ctx.Request().Context(), caller, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusOK, office)
}

func (c *OfficeController) CreateOffice(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateOfficeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	office, err := c.officeService.CreateOffice(ctx.Request().Context(), caller, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusCreated, office)
}

func (c *OfficeController) UpdateOffice(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx, "Office not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateOfficeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	office, err := c.officeService.UpdateOffice(ctx.Request().Context(), caller, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusOK, office)
}

func (c *OfficeController) DeleteOffice(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx, "Office not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.officeService.DeleteOffice(ctx.Request().Context(), caller, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusOK, nil)
}
