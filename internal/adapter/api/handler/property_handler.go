package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ErniyazCode/kazproperty/internal/usecase"
	"github.com/ErniyazCode/kazproperty/pkg/errors"
	"github.com/ErniyazCode/kazproperty/pkg/logger"
	"github.com/ErniyazCode/kazproperty/pkg/response"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

type createPropertyRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	RoomCount    int      `json:"roomCount" validate:"required,min=1"`
	SquareMeters int      `json:"squareMeters" validate:"required,min=1"`
	Images       []string `json:"images" validate:"required,min=1,max=5,dive,url"`
	Documents    string   `json:"documents" validate:"omitempty,url"`
	Owner        string   `json:"owner" validate:"required,eth_addr"`
	LedgerID     *int64   `json:"ledgerId"`
}

type sellPropertyRequest struct {
	Buyer           string `json:"buyer" validate:"required,eth_addr"`
	TransactionHash string `json:"transactionHash" validate:"omitempty"`
}

func propertyID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.BadRequest("Invalid property id", err)
	}
	return id, nil
}

func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.propertyUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, properties)
}

func (h *PropertyHandler) GetByID(c echo.Context) error {
	id, err := propertyID(c)
	if err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, property)
}

func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.Create(c.Request().Context(), usecase.CreatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Price:        req.Price,
		RoomCount:    req.RoomCount,
		SquareMeters: req.SquareMeters,
		Images:       req.Images,
		Documents:    req.Documents,
		Owner:        req.Owner,
		LedgerID:     req.LedgerID,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, property)
}

func (h *PropertyHandler) Approve(c echo.Context) error {
	id, err := propertyID(c)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Info("Approving property: %d", id)
	if err := h.propertyUseCase.Approve(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Property approved successfully"})
}

func (h *PropertyHandler) Sell(c echo.Context) error {
	id, err := propertyID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req sellPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	logger.Info("Marking property as sold: id=%d buyer=%s", id, req.Buyer)
	transaction, err := h.propertyUseCase.Sell(c.Request().Context(), id, req.Buyer, req.TransactionHash)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, transaction)
}

func (h *PropertyHandler) ListTransactions(c echo.Context) error {
	id, err := propertyID(c)
	if err != nil {
		return response.Error(c, err)
	}

	transactions, err := h.propertyUseCase.ListTransactions(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, transactions)
}
