package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/sse"
)

// RedisBus relays live updates between instances through a redis channel.
// Publish only writes to redis; local delivery happens exclusively through
// the forwarder, which receives this instance's own publishes back along
// with everyone else's. Each subscriber therefore sees every update
// exactly once.
type RedisBus struct {
	log     *logger.Logger
	rdb     *redis.Client
	channel string
}

func NewRedisBus(log *logger.Logger, addr, channel string) (*RedisBus, error) {
	if channel == "" {
		channel = "live-updates"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisBus{
		log:     log.With("service", "RedisBus"),
		rdb:     rdb,
		channel: channel,
	}, nil
}

func (b *RedisBus) Publish(ctx context.Context, id uuid.UUID, dataType string, data any) {
	raw, err := json.Marshal(sse.Message{ID: id, Type: dataType, Data: data})
	if err != nil {
		b.log.Warn("Could not marshal live update", "error", err)
		return
	}
	if err := b.rdb.Publish(ctx, b.channel, raw).Err(); err != nil {
		b.log.Warn("Could not relay live update", "error", err)
	}
}

// StartForwarder subscribes to the redis channel and invokes onMsg for
// every update until ctx is cancelled.
func (b *RedisBus) StartForwarder(ctx context.Context, onMsg func(sse.Message)) error {
	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					_ = sub.Close()
					return
				}
				b.deliver(m.Payload, onMsg)
			}
		}
	}()
	return nil
}

func (b *RedisBus) deliver(payload string, onMsg func(sse.Message)) {
	var msg sse.Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		b.log.Warn("Bad live-update payload", "error", err)
		return
	}
	onMsg(msg)
}

func (b *RedisBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
