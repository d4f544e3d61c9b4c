package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/services"
)

// GamePatchHandler exposes the contribution-append patch for league
// fixtures; the CRUD surface stays on the generic data handler.
type GamePatchHandler struct {
	log     *logger.Logger
	service *services.GameService
}

func NewGamePatchHandler(log *logger.Logger, service *services.GameService) *GamePatchHandler {
	return &GamePatchHandler{
		log:     log.With("handler", "GamePatchHandler"),
		service: service,
	}
}

func (h *GamePatchHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch dtos.PatchGameDto
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.service.Patch(c.Request.Context(), id, &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
