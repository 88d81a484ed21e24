package request

import (
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/demo-night-api/internal/domain"
)

var errUnknownPhase = errors.New("unknown phase")

// OptionalString distinguishes "field absent" (leave untouched) from
// "field null" (clear the pointer) in PATCH bodies. Plain *string
// collapses both into nil.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	return json.Unmarshal(data, &o.Value)
}

// ActivateEventRequest is the PUT /event/current body. A JSON null body
// deactivates instead; see the handler.
type ActivateEventRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (req *ActivateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}

type UpdateStateRequest struct {
	Phase          *string        `json:"phase"`
	CurrentDemoID  OptionalString `json:"current_demo_id"`
	CurrentAwardID OptionalString `json:"current_award_id"`
}

func (req *UpdateStateRequest) Validate() error {
	if req.Phase != nil && !domain.Phase(*req.Phase).IsValid() {
		return errUnknownPhase
	}

	return nil
}

// Patch converts the request into a domain patch.
func (req *UpdateStateRequest) Patch() domain.StatePatch {
	patch := domain.StatePatch{}

	if req.Phase != nil {
		phase := domain.Phase(*req.Phase)
		patch.Phase = &phase
	}
	if req.CurrentDemoID.Set {
		patch.CurrentDemoID = &req.CurrentDemoID.Value
	}
	if req.CurrentAwardID.Set {
		patch.CurrentAwardID = &req.CurrentAwardID.Value
	}

	return patch
}

type CreateEventRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Date, validation.Required, validation.Date("02/01/2006")),
	)
}

type CreateDemoRequest struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	URL         string `json:"url"`
}

func (req *CreateDemoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.URL, is.URL),
	)
}
