package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/service"
)

type FeedbackService interface {
	BeginFeedback(ctx context.Context, attendeeID uint, demoID string) (domain.Feedback, error)
	UpdateFeedback(ctx context.Context, id string, patch domain.FeedbackPatch) (domain.Feedback, error)
	GetFeedback(ctx context.Context, id string) (domain.Feedback, error)
	DeleteFeedback(ctx context.Context, id string) error
	GetDemoFeedback(ctx context.Context, demoID string) ([]domain.Feedback, error)
	UpsertEventFeedback(ctx context.Context, feedback domain.EventFeedback) (domain.EventFeedback, error)
	GetEventFeedback(ctx context.Context, eventID string, attendeeID uint) (domain.EventFeedback, error)
	GetEventFeedbackAdmin(ctx context.Context, eventID string) ([]domain.EventFeedbackSummary, error)
}

type FeedbackHandler struct {
	svc  FeedbackService
	aSvc AttendeeService
}

func NewFeedbackHandler(svc FeedbackService, aSvc AttendeeService) *FeedbackHandler {
	return &FeedbackHandler{
		svc:  svc,
		aSvc: aSvc,
	}
}

// HandleBeginFeedback godoc
// @Summary      Start feedback for a demo
// @Description  Creates the caller's feedback record for the demo with defaults, or returns the existing one.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateFeedbackRequest  true  "Demo reference"
// @Success      201    {object}  domain.Feedback
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /feedback [post]
// @Security     BearerAuth
func (h *FeedbackHandler) HandleBeginFeedback(ctx *gin.Context) {
	attendee, respErr := getAttendeeFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	feedback, err := h.svc.BeginFeedback(ctx.Request.Context(), attendee.ID, req.DemoID)
	if err != nil {
		err = fmt.Errorf("v1.HandleBeginFeedback -> h.svc.BeginFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, feedback)
}

// HandleUpdateFeedback godoc
// @Summary      Update feedback fields
// @Description  Partial merge: only fields present in the body mutate the stored record.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        feedbackID  path      string                         true  "Feedback ID"
// @Param        input       body      request.UpdateFeedbackRequest  true  "Fields to merge"
// @Success      200         {object}  domain.Feedback
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /feedback/{feedbackID} [patch]
// @Security     BearerAuth
func (h *FeedbackHandler) HandleUpdateFeedback(ctx *gin.Context) {
	attendee, respErr := getAttendeeFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	feedbackID := ctx.Param("feedbackID")

	var req request.UpdateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	existing, err := h.svc.GetFeedback(ctx.Request.Context(), feedbackID)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("feedback", "ID", feedbackID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateFeedback -> h.svc.GetFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if existing.AttendeeID != attendee.ID && !attendee.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("attendee %v does not own feedback %v", attendee.ID, feedbackID)))
		return
	}

	feedback, err := h.svc.UpdateFeedback(ctx.Request.Context(), feedbackID, req.Patch())
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateFeedback -> h.svc.UpdateFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, feedback)
}

// HandleDeleteFeedback godoc
// @Summary      Retract feedback
// @Tags         feedback
// @Produce      json
// @Param        feedbackID  path  string  true  "Feedback ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /feedback/{feedbackID} [delete]
// @Security     BearerAuth
func (h *FeedbackHandler) HandleDeleteFeedback(ctx *gin.Context) {
	attendee, respErr := getAttendeeFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	feedbackID := ctx.Param("feedbackID")

	feedback, err := h.svc.GetFeedback(ctx.Request.Context(), feedbackID)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("feedback", "ID", feedbackID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteFeedback -> h.svc.GetFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if feedback.AttendeeID != attendee.ID && !attendee.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("attendee %v does not own feedback %v", attendee.ID, feedbackID)))
		return
	}

	if err := h.svc.DeleteFeedback(ctx.Request.Context(), feedbackID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteFeedback -> h.svc.DeleteFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetDemoFeedback godoc
// @Summary      Get a demo's feedback, ranked
// @Description  Admin view of all feedback for a demo, highest score first.
// @Tags         feedback
// @Produce      json
// @Param        demoID  path      string  true  "Demo ID"
// @Success      200  {array}   domain.Feedback
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /demos/{demoID}/feedback [get]
// @Security     BearerAuth
func (h *FeedbackHandler) HandleGetDemoFeedback(ctx *gin.Context) {
	demoID := ctx.Param("demoID")

	feedback, err := h.svc.GetDemoFeedback(ctx.Request.Context(), demoID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDemoFeedback -> h.svc.GetDemoFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, feedback)
}

// HandleGetEventFeedback godoc
// @Summary      Get the caller's end-of-event feedback
// @Tags         feedback
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {object}  domain.EventFeedback
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/feedback [get]
// @Security     BearerAuth
func (h *FeedbackHandler) HandleGetEventFeedback(ctx *gin.Context) {
	attendee, respErr := getAttendeeFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	feedback, err := h.svc.GetEventFeedback(ctx.Request.Context(), eventID, attendee.ID)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event feedback", "eventID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEventFeedback -> h.svc.GetEventFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, feedback)
}

// HandleUpsertEventFeedback godoc
// @Summary      Submit end-of-event feedback
// @Description  One feedback per attendee per event; replaying with the original ID replaces the comment, a fresh ID for an existing pair is rejected with 409.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                        true  "Event ID"
// @Param        input    body      request.EventFeedbackRequest  true  "Feedback body"
// @Success      200      {object}  domain.EventFeedback
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/feedback [put]
// @Security     BearerAuth
func (h *FeedbackHandler) HandleUpsertEventFeedback(ctx *gin.Context) {
	attendee, respErr := getAttendeeFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	var req request.EventFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	feedback, err := h.svc.UpsertEventFeedback(ctx.Request.Context(), domain.EventFeedback{
		ID:         req.ID,
		EventID:    eventID,
		AttendeeID: attendee.ID,
		Comment:    req.Comment,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateFeedback) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrDuplicateFeedback))
			return
		}

		err = fmt.Errorf("v1.HandleUpsertEventFeedback -> h.svc.UpsertEventFeedback -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, feedback)
}

// HandleGetEventFeedbackAdmin godoc
// @Summary      Review end-of-event feedback
// @Description  All event feedback joined with each attendee's display name and type. Admin only.
// @Tags         feedback
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {array}   domain.EventFeedbackSummary
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/feedback/admin [get]
// @Security     BearerAuth
func (h *FeedbackHandler) HandleGetEventFeedbackAdmin(ctx *gin.Context) {
	eventID := ctx.Param("eventID")

	summaries, err := h.svc.GetEventFeedbackAdmin(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEventFeedbackAdmin -> h.svc.GetEventFeedbackAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summaries)
}
