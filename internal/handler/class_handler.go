package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proffy-go/proffy-api/internal/models"
	"github.com/proffy-go/proffy-api/internal/service"
	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
	"github.com/proffy-go/proffy-api/pkg/response"
)

type classService interface {
	Search(ctx context.Context, q service.SearchClassesQuery) ([]models.ClassWithUser, error)
	Register(ctx context.Context, req service.RegisterClassRequest) error
}

// ClassHandler wires the class service to HTTP routes.
type ClassHandler struct {
	classes classService
}

// NewClassHandler constructs a ClassHandler.
func NewClassHandler(classes classService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// Index godoc
// @Summary Search classes by subject, weekday and time
// @Tags Classes
// @Produce json
// @Param subject query string true "Subject, exact match"
// @Param week_day query int true "Weekday 0-6"
// @Param time query string true "Time of day, HH:MM"
// @Success 200 {array} models.ClassWithUser
// @Failure 400 {object} map[string]string
// @Router /classes [get]
func (h *ClassHandler) Index(c *gin.Context) {
	query := service.SearchClassesQuery{
		Subject: c.Query("subject"),
		WeekDay: c.Query("week_day"),
		Time:    c.Query("time"),
	}

	results, err := h.classes.Search(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results)
}

// Create godoc
// @Summary Register a tutor profile with a class and its weekly windows
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body service.RegisterClassRequest true "Registration payload"
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.RegisterClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}

	if err := h.classes.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c)
}
