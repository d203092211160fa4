package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ErniyazCode/kazproperty/internal/adapter/api/handler"
	"github.com/ErniyazCode/kazproperty/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/api/users")

	users.GET("", userHandler.List)
	users.POST("", userHandler.Register)
	users.GET("/:address", userHandler.GetByAddress)
	users.PUT("/:address/kyc", userHandler.UpdateKYC)
	users.PUT("/:address/ecp", userHandler.SignECP)

	// Verification is an administrative gate.
	users.PUT("/:address/verify", userHandler.Verify, adminMiddleware.RequireAdmin)
}
