package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proffy-go/proffy-api/internal/models"
	"github.com/proffy-go/proffy-api/internal/service"
	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
)

type classServiceMock struct {
	searchResp     []models.ClassWithUser
	searchErr      error
	registerErr    error
	lastQuery      service.SearchClassesQuery
	lastRegister   service.RegisterClassRequest
	searchCalled   bool
	registerCalled bool
}

func (m *classServiceMock) Search(ctx context.Context, q service.SearchClassesQuery) ([]models.ClassWithUser, error) {
	m.searchCalled = true
	m.lastQuery = q
	return m.searchResp, m.searchErr
}

func (m *classServiceMock) Register(ctx context.Context, req service.RegisterClassRequest) error {
	m.registerCalled = true
	m.lastRegister = req
	return m.registerErr
}

func TestClassHandlerIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &classServiceMock{
		searchResp: []models.ClassWithUser{{ID: "class-1", Subject: "Math", Name: "Ana"}},
	}
	handler := NewClassHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/classes?subject=Math&week_day=1&time=10:00", nil)
	c.Request = req

	handler.Index(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.searchCalled)
	assert.Equal(t, "Math", mockSvc.lastQuery.Subject)
	assert.Equal(t, "1", mockSvc.lastQuery.WeekDay)
	assert.Equal(t, "10:00", mockSvc.lastQuery.Time)

	var body []models.ClassWithUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "class-1", body[0].ID)
}

func TestClassHandlerIndexMissingFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &classServiceMock{searchErr: appErrors.ErrMissingFilter}
	handler := NewClassHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/classes?subject=Math", nil)
	c.Request = req

	handler.Index(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Missing filter to search classes."}`, w.Body.String())
}

func TestClassHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &classServiceMock{}
	handler := NewClassHandler(mockSvc)

	payload, _ := json.Marshal(service.RegisterClassRequest{
		Name:     "Ana",
		Avatar:   "https://cdn.example.com/ana.png",
		Whatsapp: "5511999990000",
		Bio:      "Teaches calculus",
		Subject:  "Math",
		Cost:     decimal.NewFromInt(60),
		Schedule: []service.ScheduleItemRequest{{WeekDay: 1, From: "08:00", To: "12:00"}},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/classes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.registerCalled)
	assert.Equal(t, "Math", mockSvc.lastRegister.Subject)
	assert.Empty(t, w.Body.String(), "created response has no body")
}

func TestClassHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &classServiceMock{}
	handler := NewClassHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/classes", bytes.NewBufferString(`{"name":"Ana"`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.registerCalled)
}

func TestClassHandlerCreateServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &classServiceMock{registerErr: appErrors.ErrRegistration}
	handler := NewClassHandler(mockSvc)

	payload, _ := json.Marshal(service.RegisterClassRequest{
		Name:     "Ana",
		Whatsapp: "5511999990000",
		Subject:  "Math",
		Schedule: []service.ScheduleItemRequest{{WeekDay: 1, From: "08:00", To: "27:00"}},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/classes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Unexpected error while creating new class"}`, w.Body.String())
}
