package domain

import "time"

// Vote is an attendee's pick of a demo for one award. At most one vote
// exists per (event, attendee, award); re-voting replaces the demo in
// place, keyed by the caller-supplied ID for idempotent retries.
type Vote struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	AttendeeID uint      `json:"attendee_id"`
	AwardID    string    `json:"award_id"`
	DemoID     *string   `json:"demo_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
