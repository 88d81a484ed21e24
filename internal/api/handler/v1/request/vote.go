package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// UpsertVoteRequest carries the vote body; the vote ID comes from the
// URL so retries reuse it.
type UpsertVoteRequest struct {
	EventID string  `json:"event_id"`
	AwardID string  `json:"award_id"`
	DemoID  *string `json:"demo_id"`
}

func (req *UpsertVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.AwardID, validation.Required),
	)
}
