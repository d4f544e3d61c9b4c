package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/services"
)

type TournamentHandler struct {
	log     *logger.Logger
	service *services.TournamentService
}

func NewTournamentHandler(log *logger.Logger, service *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		log:     log.With("handler", "TournamentHandler"),
		service: service,
	}
}

func (h *TournamentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	game, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *TournamentHandler) GetAll(c *gin.Context) {
	games, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *TournamentHandler) Upsert(c *gin.Context) {
	var dto dtos.EditTournamentGameDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.service.Update(c.Request.Context(), dto.ID, &dto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TournamentHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch dtos.PatchTournamentDto
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

func (h *TournamentHandler) AddSayg(c *gin.Context) {
	tournamentID, matchID, ok := h.matchRoute(c)
	if !ok {
		return
	}
	result, err := h.service.AddSayg(c.Request.Context(), tournamentID, matchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TournamentHandler) DeleteSayg(c *gin.Context) {
	tournamentID, matchID, ok := h.matchRoute(c)
	if !ok {
		return
	}
	result, err := h.service.DeleteSayg(c.Request.Context(), tournamentID, matchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TournamentHandler) matchRoute(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	tournamentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tournament id"})
		return uuid.Nil, uuid.Nil, false
	}
	matchID, err := uuid.Parse(c.Param("matchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return uuid.Nil, uuid.Nil, false
	}
	return tournamentID, matchID, true
}
