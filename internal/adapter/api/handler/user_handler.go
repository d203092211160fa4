package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ErniyazCode/kazproperty/internal/usecase"
	"github.com/ErniyazCode/kazproperty/pkg/logger"
	"github.com/ErniyazCode/kazproperty/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type registerUserRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
	Name    string `json:"name" validate:"omitempty,max=100"`
}

type updateKYCRequest struct {
	KYCDocument string `json:"kycDocument" validate:"required,url"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) GetByAddress(c echo.Context) error {
	address := c.Param("address")

	user, err := h.userUseCase.GetByAddress(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	logger.Info("Creating user: %s", req.Address)
	user, err := h.userUseCase.Register(c.Request().Context(), req.Address, req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}

func (h *UserHandler) UpdateKYC(c echo.Context) error {
	address := c.Param("address")

	var req updateKYCRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	logger.Info("Updating KYC document for: %s", address)
	user, err := h.userUseCase.UpdateKYC(c.Request().Context(), address, req.KYCDocument)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) Verify(c echo.Context) error {
	address := c.Param("address")

	logger.Info("Verifying user: %s", address)
	if err := h.userUseCase.Verify(c.Request().Context(), address); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "User verified successfully"})
}

func (h *UserHandler) SignECP(c echo.Context) error {
	address := c.Param("address")

	logger.Info("Setting ECP signed for user: %s", address)
	user, err := h.userUseCase.SignECP(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
