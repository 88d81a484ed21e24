package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vietanh2810/demo-night-api/internal/domain"
)

var (
	currentPhase = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "demo_night_current_phase",
			Help: "Current event phase (1 for the active phase, 0 otherwise)",
		},
		[]string{"phase"},
	)

	pollTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_night_poll_ticks_total",
			Help: "Interval poll ticks per consumer role",
		},
		[]string{"consumer"},
	)

	phaseRefetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_night_phase_refetches_total",
			Help: "Secondary fetches triggered by an observed phase change",
		},
		[]string{"consumer"},
	)

	staleResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_night_stale_responses_total",
			Help: "Poll responses dropped because a newer request superseded them",
		},
		[]string{"consumer"},
	)

	votesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_night_votes_total",
			Help: "Vote upserts per event",
		},
		[]string{"event_id"},
	)
)

var allPhases = []domain.Phase{
	domain.PhasePre,
	domain.PhaseDemos,
	domain.PhaseVoting,
	domain.PhaseResults,
	domain.PhaseRecap,
}

// TrackPhase marks one phase active on the gauge and zeroes the rest.
func TrackPhase(phase domain.Phase) {
	for _, p := range allPhases {
		value := 0.0
		if p == phase {
			value = 1.0
		}
		currentPhase.WithLabelValues(string(p)).Set(value)
	}
}

func TrackPollTick(consumer string) {
	pollTicks.WithLabelValues(consumer).Inc()
}

func TrackPhaseRefetch(consumer string) {
	phaseRefetches.WithLabelValues(consumer).Inc()
}

func TrackStaleResponse(consumer string) {
	staleResponses.WithLabelValues(consumer).Inc()
}

func TrackVote(eventID string) {
	votesTotal.WithLabelValues(eventID).Inc()
}
