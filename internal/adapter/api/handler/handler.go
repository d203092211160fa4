package handler

import (
	"github.com/ErniyazCode/kazproperty/internal/usecase"
)

var (
	userHandler     *UserHandler
	propertyHandler *PropertyHandler
	adminHandler    *AdminHandler
	healthHandler   *HealthHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	propertyUseCase *usecase.PropertyUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	userHandler = NewUserHandler(userUseCase)
	propertyHandler = NewPropertyHandler(propertyUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	healthHandler = NewHealthHandler()
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
