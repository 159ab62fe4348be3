package entries

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

// --------------------------------------------------
// POST /entries
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Calories int    `json:"calories"`
		Quantity int    `json:"quantity"`
		Date     string `json:"date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.service.LogFood(
		c.Request.Context(),
		req.Name,
		req.Calories,
		req.Quantity,
		req.Date,
	)
	if err != nil {
		if errors.Is(err, ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// --------------------------------------------------
// GET /entries?date=dd/MM/yyyy
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	var (
		list []intake.FoodEntry
		err  error
	)

	if date := c.Query("date"); date != "" {
		list, err = h.service.ListByDate(c.Request.Context(), date)
	} else {
		list, err = h.service.List(c.Request.Context())
	}
	if err != nil {
		if errors.Is(err, intake.ErrFormat) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": list})
}

// --------------------------------------------------
// DELETE /entries
// --------------------------------------------------
func (h *Handler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset entries"})
		return
	}

	c.Status(http.StatusNoContent)
}
