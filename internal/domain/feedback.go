package domain

import (
	"time"
	"unicode/utf8"
)

// Feedback collects an attendee's reactions to one demo. Fields fill in
// incrementally as the attendee watches (claps now, comment later), so
// everything beyond the identity pair is optional.
type Feedback struct {
	ID           string    `json:"id"`
	AttendeeID   uint      `json:"attendee_id"`
	DemoID       string    `json:"demo_id"`
	Rating       *int      `json:"rating"`
	Claps        int       `json:"claps"`
	Star         bool      `json:"star"`
	WantToAccess bool      `json:"want_to_access"`
	WantToInvest bool      `json:"want_to_invest"`
	WantToWork   bool      `json:"want_to_work"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// QuickActions counts the boolean interest flags that are set.
func (f *Feedback) QuickActions() int {
	count := 0
	for _, set := range []bool{f.WantToAccess, f.WantToInvest, f.WantToWork} {
		if set {
			count++
		}
	}
	return count
}

// Score ranks feedback for the admin dashboard. Any feedback with a
// comment outranks any without; the remaining signals reward engagement
// monotonically. Never persisted.
func (f *Feedback) Score() int {
	score := 0
	if f.Comment != nil && *f.Comment != "" {
		// Character count, not bytes: a non-ASCII comment must not
		// outrank an equally long ASCII one.
		score += 1000 + utf8.RuneCountInString(*f.Comment)
	}
	if f.Rating != nil {
		score += *f.Rating * 5
	}
	score += f.Claps
	if f.Star {
		score += 10
	}
	score += 20 * f.QuickActions()
	return score
}

// FeedbackPatch is a partial-field merge: only non-nil fields mutate
// the stored record.
type FeedbackPatch struct {
	Rating       *int
	Claps        *int
	Star         *bool
	WantToAccess *bool
	WantToInvest *bool
	WantToWork   *bool
	Comment      *string
}

// EventFeedback is an attendee's single end-of-event comment, unique
// per (event, attendee).
type EventFeedback struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	AttendeeID uint      `json:"attendee_id"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EventFeedbackSummary is the admin review row: the comment plus the
// attendee's display name and type, nothing else.
type EventFeedbackSummary struct {
	EventFeedback
	AttendeeName string `json:"attendee_name"`
	AttendeeType string `json:"attendee_type"`
}
