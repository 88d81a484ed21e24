package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository"
	"github.com/vietanh2810/demo-night-api/monitoring"
)

var (
	ErrNoCurrentEvent = repository.ErrNoCurrentEvent
	ErrEventNotFound  = repository.ErrEventNotFound
	ErrInvalidPhase   = errors.New("unknown phase")
)

type EventStateStore interface {
	Get(ctx context.Context) (domain.CurrentEvent, error)
	Set(ctx context.Context, event domain.CurrentEvent) error
	Clear(ctx context.Context) error
}

type EventRepository interface {
	FindByID(ctx context.Context, id string) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	CreateDemo(ctx context.Context, demo domain.Demo) (domain.Demo, error)
	FindDemoByID(ctx context.Context, id string) (domain.Demo, error)
}

// EventService owns the CurrentEvent singleton. All reads and writes of
// the live event state go through here; nothing else touches the store.
type EventService struct {
	store EventStateStore
	repo  EventRepository
}

func NewEventService(store EventStateStore, repo EventRepository) *EventService {
	return &EventService{
		store: store,
		repo:  repo,
	}
}

func (s *EventService) Current(ctx context.Context) (domain.CurrentEvent, error) {
	current, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNoCurrentEvent) {
			return domain.CurrentEvent{}, ErrNoCurrentEvent
		}

		return domain.CurrentEvent{}, fmt.Errorf("s.store.Get -> %w", err)
	}

	return current, nil
}

// Activate makes the event live. Re-activating the event that is
// already live is a no-op; activating a different event resets the
// phase to Pre and clears both pointers.
func (s *EventService) Activate(ctx context.Context, id, name string) (domain.CurrentEvent, error) {
	existing, err := s.store.Get(ctx)
	if err == nil && existing.ID == id {
		return existing, nil
	}
	if err != nil && !errors.Is(err, ErrNoCurrentEvent) {
		return domain.CurrentEvent{}, fmt.Errorf("s.store.Get -> %w", err)
	}

	current := domain.CurrentEvent{
		ID:    id,
		Name:  name,
		Phase: domain.PhasePre,
	}
	if err := s.store.Set(ctx, current); err != nil {
		return domain.CurrentEvent{}, fmt.Errorf("s.store.Set -> %w", err)
	}

	monitoring.TrackPhase(current.Phase)

	return current, nil
}

func (s *EventService) Deactivate(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("s.store.Clear -> %w", err)
	}

	return nil
}

// UpdateState applies a partial patch to the live event's transient
// state. Each pointer patch touches exactly the named pointer; the
// phase may move to any of the five values (admin discretion), but
// never to an unknown one.
func (s *EventService) UpdateState(ctx context.Context, patch domain.StatePatch) (domain.CurrentEvent, error) {
	current, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNoCurrentEvent) {
			return domain.CurrentEvent{}, ErrNoCurrentEvent
		}

		return domain.CurrentEvent{}, fmt.Errorf("s.store.Get -> %w", err)
	}

	if patch.Phase != nil {
		if !patch.Phase.IsValid() {
			return domain.CurrentEvent{}, ErrInvalidPhase
		}
		if *patch.Phase != current.Phase {
			monitoring.TrackPhase(*patch.Phase)
		}
		current.Phase = *patch.Phase
	}
	if patch.CurrentDemoID != nil {
		current.CurrentDemoID = *patch.CurrentDemoID
	}
	if patch.CurrentAwardID != nil {
		current.CurrentAwardID = *patch.CurrentAwardID
	}

	if err := s.store.Set(ctx, current); err != nil {
		return domain.CurrentEvent{}, fmt.Errorf("s.store.Set -> %w", err)
	}

	return current, nil
}

// GetEvent returns the denormalized full-event projection (demos and
// awards included), the secondary fetch target for admin consumers.
func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) SubmitDemo(ctx context.Context, demo domain.Demo) (domain.Demo, error) {
	if _, err := s.repo.FindByID(ctx, demo.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Demo{}, ErrEventNotFound
		}

		return domain.Demo{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	created, err := s.repo.CreateDemo(ctx, demo)
	if err != nil {
		return domain.Demo{}, fmt.Errorf("s.repo.CreateDemo -> %w", err)
	}

	return created, nil
}
