// Package sync implements the polling contract that keeps the admin
// console, attendee UI and presentation display consistent with the
// shared event state. Consumers re-fetch the current event on a fixed
// interval; an observed phase change triggers exactly one secondary
// fetch of phase-scoped data.
package sync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository"
	"github.com/vietanh2810/demo-night-api/monitoring"
)

// EventSource yields the authoritative CurrentEvent. Absence is the
// repository.ErrNoCurrentEvent sentinel, never a nil-with-no-error.
type EventSource interface {
	FetchCurrent(ctx context.Context) (domain.CurrentEvent, error)
}

// EventSourceFunc adapts a plain function to an EventSource.
type EventSourceFunc func(ctx context.Context) (domain.CurrentEvent, error)

func (f EventSourceFunc) FetchCurrent(ctx context.Context) (domain.CurrentEvent, error) {
	return f(ctx)
}

// SecondaryFetch loads the consumer's phase-scoped data (the admin's
// full event projection, the attendee's feedback eligibility, ...).
// event is nil when no event is live.
type SecondaryFetch func(ctx context.Context, event *domain.CurrentEvent) error

// Snapshot is the consumer-side cached copy of the shared state.
type Snapshot struct {
	// Event is nil when no event is live. That is a rendered state
	// ("no active event"), not an error.
	Event *domain.CurrentEvent
	Mode  domain.DisplayMode
}

// Poller owns one consumer's interval timer, last-observed-phase marker
// and request sequencing. Responses are applied newest-request-wins: a
// response whose request was superseded is dropped so an old poll can
// never clobber newer state.
type Poller struct {
	consumer  string
	interval  time.Duration
	source    EventSource
	secondary SecondaryFetch
	log       *zap.Logger

	seq uint64 // last issued request sequence

	mu         sync.Mutex
	appliedSeq uint64
	cached     *domain.CurrentEvent
	lastPhase  *domain.Phase
}

func NewPoller(consumer string, interval time.Duration, source EventSource, secondary SecondaryFetch, log *zap.Logger) *Poller {
	return &Poller{
		consumer:  consumer,
		interval:  interval,
		source:    source,
		secondary: secondary,
		log:       log.With(zap.String("consumer", consumer)),
	}
}

// Run polls until ctx is cancelled. A failed poll keeps the previous
// snapshot and retries on the next tick.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Prime the cache immediately instead of waiting one full period.
	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			monitoring.TrackPollTick(p.consumer)
			p.poll(ctx)
		}
	}
}

// Refresh forces an immediate refetch of the current event and the
// phase-scoped data in one composite call, so callers can never forget
// the secondary fetch. It runs on the caller's goroutine and supersedes
// any in-flight interval poll by sequence.
func (p *Poller) Refresh(ctx context.Context) error {
	seq := atomic.AddUint64(&p.seq, 1)

	event, err := p.source.FetchCurrent(ctx)
	if err != nil && !errors.Is(err, repository.ErrNoCurrentEvent) {
		return err
	}

	var current *domain.CurrentEvent
	if err == nil {
		current = &event
	}

	if !p.apply(seq, current, true) {
		return nil
	}

	if p.secondary != nil {
		if err := p.secondary(ctx, current); err != nil {
			return err
		}
	}

	return nil
}

// Snapshot returns the cached state. Copy-out, so callers can't mutate
// shared state through it.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{Mode: domain.ModePreShow}
	if p.cached != nil {
		event := *p.cached
		snap.Event = &event
		snap.Mode = event.Phase.DisplayMode()
	}

	return snap
}

func (p *Poller) poll(ctx context.Context) {
	seq := atomic.AddUint64(&p.seq, 1)

	event, err := p.source.FetchCurrent(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoCurrentEvent) {
			// Absent is a first-class value: render "no active event".
			p.applyAndRefetch(ctx, seq, nil, false)
			return
		}

		// Transport failure: never corrupt the cached value.
		p.log.Warn("poll failed, keeping cached state", zap.Error(err))
		return
	}

	p.applyAndRefetch(ctx, seq, &event, false)
}

func (p *Poller) applyAndRefetch(ctx context.Context, seq uint64, event *domain.CurrentEvent, forced bool) {
	phaseChanged := p.apply(seq, event, forced)
	if !phaseChanged || p.secondary == nil {
		return
	}

	monitoring.TrackPhaseRefetch(p.consumer)
	if err := p.secondary(ctx, event); err != nil {
		// The marker already moved; the data refetch rides the next
		// tick or a manual Refresh.
		p.log.Warn("secondary fetch failed", zap.Error(err))
	}
}

// apply installs the response if its request is still the newest, and
// reports whether the observed phase differs from the last observed
// one (or forced is set). The last-observed marker moves before the
// caller runs the secondary fetch, so each change triggers exactly one
// extra refetch cycle.
func (p *Poller) apply(seq uint64, event *domain.CurrentEvent, forced bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq < p.appliedSeq {
		monitoring.TrackStaleResponse(p.consumer)
		return false
	}
	p.appliedSeq = seq
	p.cached = event

	var phase *domain.Phase
	if event != nil {
		phase = &event.Phase
	}

	changed := !phasesEqual(p.lastPhase, phase)
	p.lastPhase = phase

	return changed || forced
}

func phasesEqual(a, b *domain.Phase) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
