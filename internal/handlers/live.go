package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/sse"
)

// LiveHandler streams aggregate updates to watching clients over SSE.
type LiveHandler struct {
	log *logger.Logger
	hub *sse.Hub
}

func NewLiveHandler(log *logger.Logger, hub *sse.Hub) *LiveHandler {
	return &LiveHandler{
		log: log.With("handler", "LiveHandler"),
		hub: hub,
	}
}

// Watch subscribes the connection to one or more aggregate ids (comma
// separated in the `id` query parameter) and streams updates until the
// connection drops.
func (h *LiveHandler) Watch(c *gin.Context) {
	ids := strings.Split(c.Query("id"), ",")
	client := h.hub.NewClient()

	subscribed := 0
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		h.hub.Subscribe(client, id)
		subscribed++
	}
	if subscribed == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one id must be supplied"})
		return
	}
	defer h.hub.RemoveClient(client)

	h.hub.Serve(c.Writer, c.Request, client)
}

func Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
