package domain

import "time"

type Phase string

const (
	PhasePre     Phase = "Pre"
	PhaseDemos   Phase = "Demos"
	PhaseVoting  Phase = "Voting"
	PhaseResults Phase = "Results"
	PhaseRecap   Phase = "Recap"
)

// DisplayMode is the coarse grouping used by consumers that only
// distinguish the three show screens.
type DisplayMode string

const (
	ModePreShow    DisplayMode = "PreShow"
	ModeDemoShow   DisplayMode = "DemoShow"
	ModeAwardsShow DisplayMode = "AwardsShow"
)

var phaseOrder = map[Phase]int{
	PhasePre:     0,
	PhaseDemos:   1,
	PhaseVoting:  2,
	PhaseResults: 3,
	PhaseRecap:   4,
}

func (p Phase) IsValid() bool {
	_, ok := phaseOrder[p]
	return ok
}

// Order returns the phase's position in the event lifecycle. Unknown
// phases report -1; they are rejected at the request boundary and never
// reach stored state.
func (p Phase) Order() int {
	order, ok := phaseOrder[p]
	if !ok {
		return -1
	}
	return order
}

// DisplayMode maps every phase to exactly one show screen. The switch
// is exhaustive over the five phases; IsValid gates anything else.
func (p Phase) DisplayMode() DisplayMode {
	switch p {
	case PhasePre:
		return ModePreShow
	case PhaseDemos:
		return ModeDemoShow
	case PhaseVoting, PhaseResults, PhaseRecap:
		return ModeAwardsShow
	default:
		// Unreachable for stored state; treat garbage as pre-show
		// rather than rendering nothing.
		return ModePreShow
	}
}

// CurrentEvent is the singleton record describing which event is live.
// CurrentDemoID is meaningful only during Demos, CurrentAwardID only
// during Voting/Results.
type CurrentEvent struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phase          Phase   `json:"phase"`
	CurrentDemoID  *string `json:"current_demo_id"`
	CurrentAwardID *string `json:"current_award_id"`
}

// StatePatch mutates any subset of the current event's transient state.
// Pointer fields distinguish "leave untouched" (nil) from "clear"
// (pointer to nil demo/award), so a single patch can set the phase and
// clear a pointer at once.
type StatePatch struct {
	Phase          *Phase
	CurrentDemoID  **string
	CurrentAwardID **string
}

type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	Demos     []Demo    `json:"demos,omitempty"`
	Awards    []Award   `json:"awards,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
