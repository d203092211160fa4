package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ErniyazCode/kazproperty/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	SetupUserRouter(e, adminMiddleware)
	SetupPropertyRouter(e, adminMiddleware)
	SetupAdminRouter(e)
	SetupHealthRouter(e)
}
