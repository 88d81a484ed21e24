package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/demo-night-api/internal/domain"
)

type fakeStateStore struct {
	current *domain.CurrentEvent
}

func (f *fakeStateStore) Get(_ context.Context) (domain.CurrentEvent, error) {
	if f.current == nil {
		return domain.CurrentEvent{}, ErrNoCurrentEvent
	}

	return *f.current, nil
}

func (f *fakeStateStore) Set(_ context.Context, event domain.CurrentEvent) error {
	f.current = &event

	return nil
}

func (f *fakeStateStore) Clear(_ context.Context) error {
	f.current = nil

	return nil
}

func strPtr(s string) *string {
	return &s
}

func TestEventService_Current_NoActiveEvent(t *testing.T) {
	svc := NewEventService(&fakeStateStore{}, nil)

	_, err := svc.Current(context.Background())

	assert.ErrorIs(t, err, ErrNoCurrentEvent)
}

func TestEventService_Activate(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewEventService(store, nil)

	current, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")

	require.NoError(t, err)
	assert.Equal(t, "sf-demo-night", current.ID)
	assert.Equal(t, domain.PhasePre, current.Phase)
	assert.Nil(t, current.CurrentDemoID)
	assert.Nil(t, current.CurrentAwardID)
}

func TestEventService_Activate_SameEventIsNoOp(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewEventService(store, nil)

	_, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")
	require.NoError(t, err)

	// Move the event forward, then re-activate it.
	phase := domain.PhaseVoting
	_, err = svc.UpdateState(context.Background(), domain.StatePatch{Phase: &phase})
	require.NoError(t, err)

	current, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseVoting, current.Phase, "re-activation must not reset the live event")
}

func TestEventService_Activate_DifferentEventResetsState(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewEventService(store, nil)

	_, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")
	require.NoError(t, err)

	phase := domain.PhaseDemos
	demoID := strPtr("demo-1")
	_, err = svc.UpdateState(context.Background(), domain.StatePatch{
		Phase:         &phase,
		CurrentDemoID: &demoID,
	})
	require.NoError(t, err)

	current, err := svc.Activate(context.Background(), "nyc-demo-night", "NYC Demo Night")

	require.NoError(t, err)
	assert.Equal(t, "nyc-demo-night", current.ID)
	assert.Equal(t, domain.PhasePre, current.Phase)
	assert.Nil(t, current.CurrentDemoID)
}

func TestEventService_Deactivate(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewEventService(store, nil)

	_, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background()))

	_, err = svc.Current(context.Background())
	assert.ErrorIs(t, err, ErrNoCurrentEvent)
}

func TestEventService_UpdateState_NoActiveEvent(t *testing.T) {
	svc := NewEventService(&fakeStateStore{}, nil)

	phase := domain.PhaseDemos
	_, err := svc.UpdateState(context.Background(), domain.StatePatch{Phase: &phase})

	assert.ErrorIs(t, err, ErrNoCurrentEvent)
}

func TestEventService_UpdateState_RejectsUnknownPhase(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewEventService(store, nil)

	_, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")
	require.NoError(t, err)

	bogus := domain.Phase("Intermission")
	_, err = svc.UpdateState(context.Background(), domain.StatePatch{Phase: &bogus})

	assert.ErrorIs(t, err, ErrInvalidPhase)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PhasePre, current.Phase, "rejected patch must not mutate stored state")
}

func TestEventService_UpdateState_PartialPatch(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewEventService(store, nil)

	_, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")
	require.NoError(t, err)

	phase := domain.PhaseDemos
	demoID := strPtr("demo-1")
	current, err := svc.UpdateState(context.Background(), domain.StatePatch{
		Phase:         &phase,
		CurrentDemoID: &demoID,
	})
	require.NoError(t, err)
	require.Equal(t, "demo-1", *current.CurrentDemoID)

	// Patch only the demo pointer; the phase must stay put.
	nextDemo := strPtr("demo-2")
	current, err = svc.UpdateState(context.Background(), domain.StatePatch{CurrentDemoID: &nextDemo})

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseDemos, current.Phase)
	assert.Equal(t, "demo-2", *current.CurrentDemoID)
}

func TestEventService_UpdateState_ClearsPointer(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewEventService(store, nil)

	_, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")
	require.NoError(t, err)

	demoID := strPtr("demo-1")
	_, err = svc.UpdateState(context.Background(), domain.StatePatch{CurrentDemoID: &demoID})
	require.NoError(t, err)

	var cleared *string
	current, err := svc.UpdateState(context.Background(), domain.StatePatch{CurrentDemoID: &cleared})

	require.NoError(t, err)
	assert.Nil(t, current.CurrentDemoID)
}

func TestEventService_UpdateState_BackwardPhaseMoveAllowed(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewEventService(store, nil)

	_, err := svc.Activate(context.Background(), "sf-demo-night", "SF Demo Night")
	require.NoError(t, err)

	voting := domain.PhaseVoting
	_, err = svc.UpdateState(context.Background(), domain.StatePatch{Phase: &voting})
	require.NoError(t, err)

	// Admins can rewind the show when something goes sideways.
	demos := domain.PhaseDemos
	current, err := svc.UpdateState(context.Background(), domain.StatePatch{Phase: &demos})

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseDemos, current.Phase)
}
