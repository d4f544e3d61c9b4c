package services

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/sse"
)

func drain(t *testing.T, outbound chan sse.Message) []sse.Message {
	t.Helper()
	var got []sse.Message
	for {
		select {
		case msg := <-outbound:
			got = append(got, msg)
		default:
			return got
		}
	}
}

func TestRedisBus_ForwardedUpdateDeliveredOnce(t *testing.T) {
	log := logger.NewNop()
	hub := sse.NewHub(log)
	bus := &RedisBus{log: log, channel: "live-updates"}

	id := uuid.New()
	client := hub.NewClient()
	hub.Subscribe(client, id)

	raw, err := json.Marshal(sse.Message{ID: id, Type: TournamentUpdated})
	if err != nil {
		t.Fatal(err)
	}
	// The relayed payload is the only path into the hub: one publish must
	// reach each subscriber exactly once.
	bus.deliver(string(raw), hub.Broadcast)

	got := drain(t, client.Outbound)
	if len(got) != 1 {
		t.Fatalf("expected exactly one delivery, got %d", len(got))
	}
	if got[0].ID != id || got[0].Type != TournamentUpdated {
		t.Errorf("unexpected message: %+v", got[0])
	}
}

func TestRedisBus_DistinctPublishesEachDelivered(t *testing.T) {
	log := logger.NewNop()
	hub := sse.NewHub(log)
	bus := &RedisBus{log: log, channel: "live-updates"}

	id := uuid.New()
	client := hub.NewClient()
	hub.Subscribe(client, id)

	for i := 0; i < 2; i++ {
		raw, err := json.Marshal(sse.Message{ID: id, Type: TournamentUpdated})
		if err != nil {
			t.Fatal(err)
		}
		bus.deliver(string(raw), hub.Broadcast)
	}

	if got := drain(t, client.Outbound); len(got) != 2 {
		t.Fatalf("expected one delivery per publish, got %d", len(got))
	}
}

func TestRedisBus_BadPayloadIgnored(t *testing.T) {
	log := logger.NewNop()
	bus := &RedisBus{log: log, channel: "live-updates"}

	delivered := 0
	bus.deliver("not json", func(sse.Message) { delivered++ })
	if delivered != 0 {
		t.Errorf("a malformed payload must not be delivered, got %d", delivered)
	}
}
