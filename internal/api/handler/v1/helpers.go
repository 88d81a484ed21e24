package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/demo-night-api/internal/api/middleware"
	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/service"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getAttendeeFromContext(ctx *gin.Context, svc AttendeeService) (domain.Attendee, *response.Err) {
	attendeeID, ok := middleware.AttendeeIDFromContext(ctx)
	if !ok {
		return domain.Attendee{}, response.ErrUnauthorized(errors.New("missing authentication"))
	}

	attendee, err := svc.GetAttendee(ctx.Request.Context(), attendeeID)
	if err != nil {
		// A valid token for a deleted attendee is stale credentials.
		if errors.Is(err, service.ErrAttendeeNotFound) {
			return domain.Attendee{}, response.ErrUnauthorized(err)
		}

		return domain.Attendee{}, response.ErrInternalServerError(fmt.Errorf("getAttendeeFromContext -> svc.GetAttendee -> %w", err))
	}

	return attendee, nil
}
