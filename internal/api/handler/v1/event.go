package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/service"
)

type EventService interface {
	Current(ctx context.Context) (domain.CurrentEvent, error)
	Activate(ctx context.Context, id, name string) (domain.CurrentEvent, error)
	Deactivate(ctx context.Context) error
	UpdateState(ctx context.Context, patch domain.StatePatch) (domain.CurrentEvent, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	SubmitDemo(ctx context.Context, demo domain.Demo) (domain.Demo, error)
}

type AttendeeService interface {
	GetAttendee(ctx context.Context, id uint) (domain.Attendee, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetCurrentEvent godoc
// @Summary      Get the live event state
// @Description  Returns the CurrentEvent singleton polled by all consumers. 404 with "No active event." when nothing is live.
// @Tags         event
// @Produce      json
// @Success      200  {object}  domain.CurrentEvent
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /event/current [get]
func (h *EventHandler) HandleGetCurrentEvent(ctx *gin.Context) {
	current, err := h.svc.Current(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoCurrentEvent) {
			response.RenderErr(ctx, response.ErrNoActiveEvent())
			return
		}

		err = fmt.Errorf("v1.HandleGetCurrentEvent -> h.svc.Current -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, current)
}

// HandleSetCurrentEvent godoc
// @Summary      Activate or deactivate an event
// @Description  A JSON body {id, name} activates the event (idempotent for the same id); a JSON null deactivates.
// @Tags         event
// @Accept       json
// @Produce      json
// @Param        input  body      request.ActivateEventRequest  true  "Event identity, or null"
// @Success      200    {object}  domain.CurrentEvent
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /event/current [put]
// @Security     BearerAuth
func (h *EventHandler) HandleSetCurrentEvent(ctx *gin.Context) {
	var raw json.RawMessage
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if string(raw) == "null" {
		if err := h.svc.Deactivate(ctx.Request.Context()); err != nil {
			err = fmt.Errorf("v1.HandleSetCurrentEvent -> h.svc.Deactivate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		ctx.Status(http.StatusNoContent)
		return
	}

	var req request.ActivateEventRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	current, err := h.svc.Activate(ctx.Request.Context(), req.ID, req.Name)
	if err != nil {
		err = fmt.Errorf("v1.HandleSetCurrentEvent -> h.svc.Activate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, current)
}

// HandleUpdateEventState godoc
// @Summary      Patch the live event state
// @Description  Mutates any subset of {phase, current_demo_id, current_award_id}. Pointer fields accept null to clear.
// @Tags         event
// @Accept       json
// @Produce      json
// @Param        input  body      request.UpdateStateRequest  true  "State patch"
// @Success      200    {object}  domain.CurrentEvent
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /event/current/state [patch]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEventState(ctx *gin.Context) {
	var req request.UpdateStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	current, err := h.svc.UpdateState(ctx.Request.Context(), req.Patch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCurrentEvent):
			response.RenderErr(ctx, response.ErrNoActiveEvent())
		case errors.Is(err, service.ErrInvalidPhase):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateEventState -> h.svc.UpdateState -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, current)
}

// HandleGetEvent godoc
// @Summary      Get the full event projection
// @Description  Returns the event with its demos and awards, the secondary fetch target of the sync protocol.
// @Tags         event
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security     BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID := ctx.Param("eventID")

	event, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         event
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "Event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	parsedDate, err := time.Parse("02/01/2006", req.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		ID:       req.ID,
		Name:     req.Name,
		Date:     parsedDate,
		Location: req.Location,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleSubmitDemo godoc
// @Summary      Submit a demo
// @Tags         demos
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDemoRequest  true  "Demo details"
// @Success      201    {object}  domain.Demo
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /demos [post]
// @Security     BearerAuth
func (h *EventHandler) HandleSubmitDemo(ctx *gin.Context) {
	var req request.CreateDemoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	demo, err := h.svc.SubmitDemo(ctx.Request.Context(), domain.Demo{
		ID:          req.ID,
		EventID:     req.EventID,
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		URL:         req.URL,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
			return
		}

		err = fmt.Errorf("v1.HandleSubmitDemo -> h.svc.SubmitDemo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, demo)
}
