package export

import (
	"errors"
	"net/http"

	"calorielog/internal/intake"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /entries/export
func (h *Handler) Export(c *gin.Context) {
	url, err := h.service.Export(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, intake.ErrFormat):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
