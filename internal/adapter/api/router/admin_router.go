package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ErniyazCode/kazproperty/internal/adapter/api/handler"
)

func SetupAdminRouter(e *echo.Echo) {
	adminHandler := handler.GetAdminHandler()

	e.POST("/api/admin/login", adminHandler.Login)
}
