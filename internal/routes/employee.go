package routes

import (
	"github.com/labstack/echo/v4"

	"employee-system/internal/controllers"
	"employee-system/pkg/middleware"
)

// Static segments are registered alongside /employees/:id; echo routes them by
// exact match first, so /employees/dashboard never shadows an id lookup.
func runEmployeeRouter(secureGroup *echo.Group, employeeCtrl *controllers.EmployeeController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/employees", employeeCtrl.GetEmployees)
	secureGroup.GET("/employees/dashboard", employeeCtrl.GetDashboard)
	secureGroup.GET("/employees/report", employeeCtrl.GetReport)
	secureGroup.GET("/employees/:id", employeeCtrl.FindEmployee)
	secureGroup.POST("/employees", employeeCtrl.CreateEmployee)
	secureGroup.PUT("/employees/:id", employeeCtrl.UpdateEmployee)
	secureGroup.DELETE("/employees/:id", employeeCtrl.DeleteEmployee)

	secureGroup.PUT("/employees/freeze/:id", employeeCtrl.FreezeEmployee, authMW.AdminOnly)
	secureGroup.PUT("/employees/unfreeze/:id", employeeCtrl.UnfreezeEmployee, authMW.AdminOnly)
}
