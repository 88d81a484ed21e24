package domain

import "time"

type Attendee struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // "attendee", "presenter", or "admin"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Attendee) IsAdmin() bool {
	return a.Type == "admin"
}
