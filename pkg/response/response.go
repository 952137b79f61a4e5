package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
)

// JSON sends a success response with the given payload.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 and an empty body, matching the
// registration contract.
func Created(c *gin.Context) {
	c.Status(http.StatusCreated)
}

// Error sends the flat error body the public API promises:
// {"error": "<message>"} with the status carried by the error.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
