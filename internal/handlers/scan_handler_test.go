package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"organizer/internal/apperr"
	"organizer/internal/models"
	"organizer/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Resolve(ownerID, payload string) (*models.Box, error) {
	args := m.Called(ownerID, payload)
	box, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockLookupService) ResolveKey(ownerID string, key *services.LookupKey) (*models.Box, error) {
	args := m.Called(ownerID, key)
	box, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func scanRequest(payload string) *http.Request {
	body, _ := json.Marshal(map[string]string{"payload": payload})
	req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestScanHandler_ResolvePayload(t *testing.T) {
	app := newAuthenticatedApp()
	mockLookup := new(MockLookupService)
	mockQR := new(MockQRService)
	handler := NewScanHandler(mockLookup, mockQR)

	app.Post("/scan", handler.ResolvePayload)

	box := &models.Box{BaseModel: models.BaseModel{ID: "box-1"}, Code: "LR01"}
	mockLookup.On("Resolve", testOwner, "myorganizer://box/LR01").Return(box, nil)
	mockQR.On("EncodePayload", box).Return("myorganizer://box/LR01")

	resp, err := app.Test(scanRequest("myorganizer://box/LR01"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockLookup.AssertExpectations(t)
}

func TestScanHandler_ResolvePayload_NotFound(t *testing.T) {
	app := newAuthenticatedApp()
	mockLookup := new(MockLookupService)
	handler := NewScanHandler(mockLookup, new(MockQRService))

	app.Post("/scan", handler.ResolvePayload)

	mockLookup.On("Resolve", testOwner, "myorganizer://box/ZZ99").Return(nil, apperr.ErrNotFound)

	resp, err := app.Test(scanRequest("myorganizer://box/ZZ99"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestScanHandler_ResolvePayload_InvalidFormat(t *testing.T) {
	app := newAuthenticatedApp()
	mockLookup := new(MockLookupService)
	handler := NewScanHandler(mockLookup, new(MockQRService))

	app.Post("/scan", handler.ResolvePayload)

	mockLookup.On("Resolve", testOwner, "not-a-qr-we-recognize").Return(nil, apperr.ErrInvalidFormat)

	resp, err := app.Test(scanRequest("not-a-qr-we-recognize"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestScanHandler_DeepLink(t *testing.T) {
	app := newAuthenticatedApp()
	mockLookup := new(MockLookupService)
	mockQR := new(MockQRService)
	handler := NewScanHandler(mockLookup, mockQR)

	app.Get("/box/:id", handler.DeepLink)

	box := &models.Box{BaseModel: models.BaseModel{ID: "box-1"}, Code: "LR01"}
	key := &services.LookupKey{Kind: services.KeyByID, Value: "box-1"}
	mockLookup.On("ResolveKey", testOwner, key).Return(box, nil)
	mockQR.On("EncodePayload", box).Return("myorganizer://box/LR01")

	req := httptest.NewRequest(http.MethodGet, "/box/box-1", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockLookup.AssertExpectations(t)
}
