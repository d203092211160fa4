package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErniyazCode/kazproperty/internal/domain/entity"
	"github.com/ErniyazCode/kazproperty/internal/usecase"
)

func newPropertyHandler(repo *memoryPropertyRepo) *PropertyHandler {
	return NewPropertyHandler(usecase.NewPropertyUseCase(repo, &memoryTransactionRepo{}))
}

const createPropertyBody = `{
	"title": "3-комнатная квартира",
	"description": "Описание",
	"location": "Алматы",
	"price": 5.2,
	"roomCount": 3,
	"squareMeters": 85,
	"images": ["https://example.com/1.jpg"],
	"owner": "` + testAddress + `"
}`

func TestCreateProperty(t *testing.T) {
	e := newEcho()
	h := newPropertyHandler(newMemoryPropertyRepo())

	req := jsonRequest(http.MethodPost, "/api/properties", createPropertyBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
	assert.Contains(t, rec.Body.String(), `"isApproved":false`)
}

func TestCreatePropertyRequiresImages(t *testing.T) {
	e := newEcho()
	h := newPropertyHandler(newMemoryPropertyRepo())

	body := `{"title":"x","description":"y","location":"Алматы","price":1,"roomCount":1,"squareMeters":1,"images":[],"owner":"` + testAddress + `"}`
	req := jsonRequest(http.MethodPost, "/api/properties", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCreatePropertyUnknownLocation(t *testing.T) {
	e := newEcho()
	h := newPropertyHandler(newMemoryPropertyRepo())

	body := `{"title":"x","description":"y","location":"Нигде","price":1,"roomCount":1,"squareMeters":1,"images":["https://example.com/1.jpg"],"owner":"` + testAddress + `"}`
	req := jsonRequest(http.MethodPost, "/api/properties", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown location")
}

func TestGetPropertyInvalidID(t *testing.T) {
	e := newEcho()
	h := newPropertyHandler(newMemoryPropertyRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/properties/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSellPropertyTwiceConflicts(t *testing.T) {
	repo := newMemoryPropertyRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.Property{
		ID: 1, Title: "x", Owner: testAddress, Price: 5.2, IsApproved: true,
	}))

	e := newEcho()
	h := newPropertyHandler(repo)
	body := `{"buyer":"0x1234567890123456789012345678901234567890","transactionHash":"0xhash"}`

	req := jsonRequest(http.MethodPut, "/api/properties/1/sell", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Sell(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = jsonRequest(http.MethodPut, "/api/properties/1/sell", body)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Sell(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already sold")
}

func TestApproveProperty(t *testing.T) {
	repo := newMemoryPropertyRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.Property{ID: 1, Title: "x"}))

	e := newEcho()
	h := newPropertyHandler(repo)

	req := jsonRequest(http.MethodPut, "/api/properties/1/approve", "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Approve(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	property, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, property.IsApproved)
}

func TestListTransactionsUnknownProperty(t *testing.T) {
	e := newEcho()
	h := newPropertyHandler(newMemoryPropertyRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/properties/9/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
