package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/demo-night-api/internal/domain"
)

type CreateFeedbackRequest struct {
	DemoID string `json:"demo_id"`
}

func (req *CreateFeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DemoID, validation.Required),
	)
}

// UpdateFeedbackRequest is a partial-field merge: nil fields leave the
// stored record untouched.
type UpdateFeedbackRequest struct {
	Rating       *int    `json:"rating"`
	Claps        *int    `json:"claps"`
	Star         *bool   `json:"star"`
	WantToAccess *bool   `json:"want_to_access"`
	WantToInvest *bool   `json:"want_to_invest"`
	WantToWork   *bool   `json:"want_to_work"`
	Comment      *string `json:"comment"`
}

func (req *UpdateFeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Rating, validation.Min(0), validation.Max(10)),
		validation.Field(&req.Claps, validation.Min(0)),
		validation.Field(&req.Comment, validation.Length(0, 2000)),
	)
}

func (req *UpdateFeedbackRequest) Patch() domain.FeedbackPatch {
	return domain.FeedbackPatch{
		Rating:       req.Rating,
		Claps:        req.Claps,
		Star:         req.Star,
		WantToAccess: req.WantToAccess,
		WantToInvest: req.WantToInvest,
		WantToWork:   req.WantToWork,
		Comment:      req.Comment,
	}
}

// EventFeedbackRequest is the PUT body for end-of-event feedback. The
// ID is optional on first submission and required to replace.
type EventFeedbackRequest struct {
	ID      string  `json:"id"`
	Comment *string `json:"comment"`
}

func (req *EventFeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Comment, validation.Length(0, 2000)),
	)
}
