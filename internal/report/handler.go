package report

import (
	"errors"
	"net/http"

	"calorielog/internal/intake"
	"calorielog/internal/recommend"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /report?date=dd/MM/yyyy (defaults to today)
// --------------------------------------------------
func (h *Handler) Daily(c *gin.Context) {
	date := c.DefaultQuery("date", h.service.Today())

	rec, err := h.service.Daily(c.Request.Context(), date)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// --------------------------------------------------
// GET /report/history
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	overview, err := h.service.History(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// --------------------------------------------------
// GET /rules
// --------------------------------------------------
func (h *Handler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rules": recommend.Rules()})
}

func (h *Handler) fail(c *gin.Context, err error) {
	var formatErr *intake.FormatError

	switch {
	case errors.As(err, &formatErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     err.Error(),
			"record_id": formatErr.RecordID,
		})
	case errors.Is(err, ErrMissingDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
	}
}
