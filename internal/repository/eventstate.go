package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vietanh2810/demo-night-api/internal/domain"
)

// ErrNoCurrentEvent is the absent-state result: no event is live right
// now. Expected, not exceptional; every consumer renders a fallback.
var ErrNoCurrentEvent = errors.New("no current event")

const currentEventKey = "demo-night:current-event"

// EventStateStore holds the CurrentEvent singleton in Redis as one JSON
// value. Reads and writes are whole-record; partial updates are built
// by the service from a fresh Get.
type EventStateStore struct {
	client *redis.Client
}

func NewEventStateStore(client *redis.Client) *EventStateStore {
	return &EventStateStore{
		client: client,
	}
}

func (s *EventStateStore) Get(ctx context.Context) (domain.CurrentEvent, error) {
	raw, err := s.client.Get(ctx, currentEventKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.CurrentEvent{}, ErrNoCurrentEvent
		}

		return domain.CurrentEvent{}, fmt.Errorf("s.client.Get -> %w", err)
	}

	var event domain.CurrentEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return domain.CurrentEvent{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return event, nil
}

func (s *EventStateStore) Set(ctx context.Context, event domain.CurrentEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err := s.client.Set(ctx, currentEventKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("s.client.Set -> %w", err)
	}

	return nil
}

func (s *EventStateStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, currentEventKey).Err(); err != nil {
		return fmt.Errorf("s.client.Del -> %w", err)
	}

	return nil
}
