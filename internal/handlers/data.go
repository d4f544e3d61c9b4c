package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/services"
)

// DataHandler exposes a simple aggregate over HTTP. The transport stays
// thin: bind, delegate, serialise the outcome.
type DataHandler[T any, PT services.AggregatePtr[T], D dtos.Update] struct {
	log     *logger.Logger
	service *services.DataService[T, PT, D]
	newDto  func() D
}

func NewDataHandler[T any, PT services.AggregatePtr[T], D dtos.Update](log *logger.Logger, service *services.DataService[T, PT, D], newDto func() D) *DataHandler[T, PT, D] {
	return &DataHandler[T, PT, D]{log: log, service: service, newDto: newDto}
}

func (h *DataHandler[T, PT, D]) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	doc, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DataHandler[T, PT, D]) GetAll(c *gin.Context) {
	docs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DataHandler[T, PT, D]) Upsert(c *gin.Context) {
	dto := h.newDto()
	if err := c.ShouldBindJSON(dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.service.Upsert(c.Request.Context(), dto.GetID(), dto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *DataHandler[T, PT, D]) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
