package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/response"
	gosync "github.com/vietanh2810/demo-night-api/internal/sync"
)

// PresentationHandler exposes the server-side display poller: the big
// screen renders whatever Snapshot says, and admins can force a refetch
// after a backstage change instead of waiting for the next tick.
type PresentationHandler struct {
	poller *gosync.Poller
}

func NewPresentationHandler(poller *gosync.Poller) *PresentationHandler {
	return &PresentationHandler{
		poller: poller,
	}
}

// HandleGetPresentationState godoc
// @Summary      Get the presentation snapshot
// @Description  Cached event state plus the display mode the screen should render. Event is null when nothing is live.
// @Tags         presentation
// @Produce      json
// @Success      200  {object}  sync.Snapshot
// @Router       /presentation/state [get]
func (h *PresentationHandler) HandleGetPresentationState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.poller.Snapshot())
}

// HandleRefreshPresentation godoc
// @Summary      Force a presentation refresh
// @Description  Refetches the current event and its phase-scoped data in one composite call.
// @Tags         presentation
// @Produce      json
// @Success      200  {object}  sync.Snapshot
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /presentation/refresh [post]
// @Security     BearerAuth
func (h *PresentationHandler) HandleRefreshPresentation(ctx *gin.Context) {
	if err := h.poller.Refresh(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleRefreshPresentation -> h.poller.Refresh -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, h.poller.Snapshot())
}
