package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/sse"
)

// Publisher notifies subscribers that an aggregate changed. Commands and
// services depend on this interface, never on the hub directly.
type Publisher interface {
	Publish(ctx context.Context, id uuid.UUID, dataType string, data any)
}

type hubPublisher struct {
	log *logger.Logger
	hub *sse.Hub
}

func NewHubPublisher(log *logger.Logger, hub *sse.Hub) Publisher {
	return &hubPublisher{
		log: log.With("service", "HubPublisher"),
		hub: hub,
	}
}

func (p *hubPublisher) Publish(_ context.Context, id uuid.UUID, dataType string, data any) {
	p.hub.Broadcast(sse.Message{ID: id, Type: dataType, Data: data})
}

// NopPublisher discards every notification. Used in tests and tooling.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, uuid.UUID, string, any) {}
