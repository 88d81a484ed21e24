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

type VoteService interface {
	UpsertVote(ctx context.Context, vote domain.Vote) (domain.Vote, error)
	GetVotes(ctx context.Context, eventID string, attendeeID uint) (map[string]domain.Vote, error)
	DeleteVote(ctx context.Context, id string) error
}

type VoteHandler struct {
	svc  VoteService
	aSvc AttendeeService
}

func NewVoteHandler(svc VoteService, aSvc AttendeeService) *VoteHandler {
	return &VoteHandler{
		svc:  svc,
		aSvc: aSvc,
	}
}

// HandleGetVotes godoc
// @Summary      Get the caller's votes for an event
// @Description  Returns the attendee's votes keyed by award ID for O(1) "did I vote for award X" lookup.
// @Tags         votes
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {object}  map[string]domain.Vote
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/votes [get]
// @Security     BearerAuth
func (h *VoteHandler) HandleGetVotes(ctx *gin.Context) {
	attendee, respErr := getAttendeeFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	votes, err := h.svc.GetVotes(ctx.Request.Context(), eventID, attendee.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetVotes -> h.svc.GetVotes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, votes)
}

// HandleUpsertVote godoc
// @Summary      Cast or replace a vote
// @Description  Inserts the vote, or replaces the chosen demo when retried with the original vote ID. A fresh ID for an award already voted on is rejected with 409.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        voteID  path      string                     true  "Vote ID (caller-supplied, reused on retry)"
// @Param        input   body      request.UpsertVoteRequest  true  "Vote body"
// @Success      200     {object}  domain.Vote
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /votes/{voteID} [put]
// @Security     BearerAuth
func (h *VoteHandler) HandleUpsertVote(ctx *gin.Context) {
	attendee, respErr := getAttendeeFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	voteID := ctx.Param("voteID")
	if voteID == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("vote ID is required")))
		return
	}

	var req request.UpsertVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	vote, err := h.svc.UpsertVote(ctx.Request.Context(), domain.Vote{
		ID:         voteID,
		EventID:    req.EventID,
		AttendeeID: attendee.ID,
		AwardID:    req.AwardID,
		DemoID:     req.DemoID,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateVote) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrDuplicateVote))
			return
		}

		err = fmt.Errorf("v1.HandleUpsertVote -> h.svc.UpsertVote -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, vote)
}

// HandleDeleteVote godoc
// @Summary      Retract a vote
// @Tags         votes
// @Produce      json
// @Param        voteID  path      string  true  "Vote ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /votes/{voteID} [delete]
// @Security     BearerAuth
func (h *VoteHandler) HandleDeleteVote(ctx *gin.Context) {
	_, respErr := getAttendeeFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	voteID := ctx.Param("voteID")

	if err := h.svc.DeleteVote(ctx.Request.Context(), voteID); err != nil {
		if errors.Is(err, service.ErrVoteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("vote", "ID", voteID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteVote -> h.svc.DeleteVote -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
