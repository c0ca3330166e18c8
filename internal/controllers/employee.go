package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"employee-system/internal/dto"
	"employee-system/internal/services"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/utils"
)

type EmployeeController struct {
	employeeService  services.EmployeeServiceInterface
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewEmployeeController(
	employeeService services.EmployeeServiceInterface,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *EmployeeController {
	return &EmployeeController{
		employeeService:  employeeService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	employees, err := c.employeeService.GetEmployees(ctx.Request().Context(), caller)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessListResponse(ctx, employees, len(employees))
}

func (c *EmployeeController) GetDashboard(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	stats, err := c.dashboardService.GetDashboardStats(ctx.Request().Context(), caller)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusOK, stats)
}

// parseReportRange reads the optional date-only bounds. The end bound is
// widened to the last instant of its calendar day so the range stays
// inclusive for timestamped report dates.
func parseReportRange(ctx echo.Context) (startDate, endDate *time.Time, violations []string) {
	const dateLayout = "2006-01-02"

	if raw := ctx.QueryParam("startDate"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			violations = append(violations, "startDate must be a YYYY-MM-DD date")
		} else {
			startDate = &t
		}
	}
	if raw := ctx.QueryParam("endDate"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			violations = append(violations, "endDate must be a YYYY-MM-DD date")
		} else {
			end := t.Add(24*time.Hour - time.Nanosecond)
			endDate = &end
		}
	}
	return startDate, endDate, violations
}

func (c *EmployeeController) GetReport(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	startDate, endDate, violations := parseReportRange(ctx)
	if len(violations) > 0 {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError(violations), c.logger)
	}

	report, err := c.employeeService.GetEmployeeReport(ctx.Request().Context(), caller, startDate, endDate)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, report)
	}
	return utils.SuccessListResponse(ctx, report, len(report))
}

var reportHeaders = []string{
	"ID", "Name", "Office", "Location", "Registered on IGOT",
	"Courses Enrolled", "Courses Completed", "Report Date", "Frozen", "Created By",
}

func (c *EmployeeController) respondWithXLSX(ctx echo.Context, report []dto.EmployeeResponseDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, item := range report {
		officeName, officeLocation := "", ""
		if item.Office != nil {
			officeName = item.Office.Name
			officeLocation = item.Office.Location
		}
		creator := ""
		if item.CreatedBy != nil {
			creator = item.CreatedBy.Fio
		}

		row := []interface{}{
			item.ID, item.Name, officeName, officeLocation, item.IsRegisteredOnIGOT,
			item.CoursesEnrolled, item.CoursesCompleted, item.ReportDate, item.IsFrozen, creator,
		}
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("employee-report-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	if err := f.Write(ctx.Response()); err != nil {
		c.logger.Error("writing xlsx report failed", zap.Error(err))
		return err
	}
	return nil
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx, "Employee not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	employee, err := c.employeeService.FindEmployee(ctx.Request().Context(), caller, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusOK, employee)
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateEmployeeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	employee, err := c.employeeService.CreateEmployee(ctx.Request().Context(), caller, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusCreated, employee)
}

func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx, "Employee not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEmployeeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	employee, err := c.employeeService.UpdateEmployee(ctx.Request().Context(), caller, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusOK, employee)
}

func (c *EmployeeController) DeleteEmployee(ctx echo.Context) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx, "Employee not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.employeeService.DeleteEmployee(ctx.Request().Context(), caller, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusOK, nil)
}

func (c *EmployeeController) setFrozen(ctx echo.Context, frozen bool) error {
	caller, err := utils.GetCallerFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseID(ctx, "Employee not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	employee, err := c.employeeService.SetFrozen(ctx.Request().Context(), caller, id, frozen)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, http.StatusOK, employee)
}

func (c *EmployeeController) FreezeEmployee(ctx echo.Context) error {
	return c.setFrozen(ctx, true)
}

func (c *EmployeeController) UnfreezeEmployee(ctx echo.Context) error {
	return c.setFrozen(ctx, false)
}
