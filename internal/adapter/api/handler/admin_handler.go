package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ErniyazCode/kazproperty/internal/usecase"
	"github.com/ErniyazCode/kazproperty/pkg/logger"
	"github.com/ErniyazCode/kazproperty/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	logger.Info("Admin login attempt: %s", req.Username)
	session, err := h.adminUseCase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, session)
}
