package routes

import (
	"github.com/labstack/echo/v4"

	"employee-system/internal/controllers"
	"employee-system/pkg/middleware"
)

func runOfficeRouter(secureGroup *echo.Group, officeCtrl *controllers.OfficeController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/offices", officeCtrl.GetOffices)
	secureGroup.GET("/offices/:id", officeCtrl.FindOffice)

	secureGroup.POST("/offices", officeCtrl.CreateOffice, authMW.AdminOnly)
	secureGroup.PUT("/offices/:id", officeCtrl.UpdateOffice, authMW.AdminOnly)
	secureGroup.DELETE("/offices/:id", officeCtrl.DeleteOffice, authMW.AdminOnly)
}
