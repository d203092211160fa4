package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ErniyazCode/kazproperty/internal/adapter/api/handler"
	"github.com/ErniyazCode/kazproperty/internal/adapter/api/middleware"
)

func SetupPropertyRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	propertyHandler := handler.GetPropertyHandler()

	properties := e.Group("/api/properties")

	properties.GET("", propertyHandler.List)
	properties.POST("", propertyHandler.Create)
	properties.GET("/:id", propertyHandler.GetByID)
	properties.PUT("/:id/sell", propertyHandler.Sell)
	properties.GET("/:id/transactions", propertyHandler.ListTransactions)

	// Approval is an administrative gate.
	properties.PUT("/:id/approve", propertyHandler.Approve, adminMiddleware.RequireAdmin)
}
