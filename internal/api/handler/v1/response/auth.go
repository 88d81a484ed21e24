package response

import "github.com/vietanh2810/demo-night-api/internal/domain"

type LoginResponse struct {
	Token    string          `json:"token"`
	Attendee domain.Attendee `json:"attendee"`
}
