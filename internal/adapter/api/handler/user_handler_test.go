package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErniyazCode/kazproperty/internal/adapter/api"
	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/usecase"
)

const testAddress = "0xE224597F4D54bA16E38308468280Ef0E7a2F76cA"

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestRegisterUser(t *testing.T) {
	e := newEcho()
	h := NewUserHandler(usecase.NewUserUseCase(newMemoryUserRepo()))

	req := jsonRequest(http.MethodPost, "/api/users", `{"address":"`+testAddress+`","name":"Александр"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Александр")
}

func TestRegisterUserInvalidAddress(t *testing.T) {
	e := newEcho()
	h := NewUserHandler(usecase.NewUserUseCase(newMemoryUserRepo()))

	req := jsonRequest(http.MethodPost, "/api/users", `{"address":"not-an-address"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "wallet address")
}

func TestGetUserNotFound(t *testing.T) {
	e := newEcho()
	h := NewUserHandler(usecase.NewUserUseCase(newMemoryUserRepo()))

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+testAddress, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("address")
	c.SetParamValues(testAddress)

	require.NoError(t, h.GetByAddress(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestGetUserCaseInsensitive(t *testing.T) {
	repo := newMemoryUserRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.User{Address: testAddress, Name: "Александр"}))

	e := newEcho()
	h := NewUserHandler(usecase.NewUserUseCase(repo))

	lower := strings.ToLower(testAddress)
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+lower, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("address")
	c.SetParamValues(lower)

	require.NoError(t, h.GetByAddress(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Александр")
}

func TestUpdateKYCRequiresURL(t *testing.T) {
	e := newEcho()
	h := NewUserHandler(usecase.NewUserUseCase(newMemoryUserRepo()))

	req := jsonRequest(http.MethodPut, "/api/users/"+testAddress+"/kyc", `{"kycDocument":"not a url"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("address")
	c.SetParamValues(testAddress)

	require.NoError(t, h.UpdateKYC(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSignECPCreatesRecord(t *testing.T) {
	e := newEcho()
	h := NewUserHandler(usecase.NewUserUseCase(newMemoryUserRepo()))

	req := jsonRequest(http.MethodPut, "/api/users/"+testAddress+"/ecp", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("address")
	c.SetParamValues(testAddress)

	require.NoError(t, h.SignECP(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hasSignedECP":true`)
}
