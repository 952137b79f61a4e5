package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
	"github.com/proffy-go/proffy-api/pkg/response"
)

type connectionService interface {
	Total(ctx context.Context) (int, error)
	Record(ctx context.Context, userID string) error
}

// CreateConnectionRequest is the contact-event payload.
type CreateConnectionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// ConnectionHandler wires the connection service to HTTP routes.
type ConnectionHandler struct {
	connections connectionService
}

// NewConnectionHandler constructs a ConnectionHandler.
func NewConnectionHandler(connections connectionService) *ConnectionHandler {
	return &ConnectionHandler{connections: connections}
}

// Index godoc
// @Summary Total recorded contact events
// @Tags Connections
// @Produce json
// @Success 200 {object} map[string]int
// @Router /connections [get]
func (h *ConnectionHandler) Index(c *gin.Context) {
	total, err := h.connections.Total(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"total": total})
}

// Create godoc
// @Summary Record a student-to-tutor contact event
// @Tags Connections
// @Accept json
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /connections [post]
func (h *ConnectionHandler) Create(c *gin.Context) {
	var req CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "user_id is required"))
		return
	}

	if err := h.connections.Record(c.Request.Context(), req.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c)
}
