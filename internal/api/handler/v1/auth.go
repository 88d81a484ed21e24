package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/demo-night-api/internal/config"
	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/demo-night-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error)
	Login(ctx context.Context, email, password string) (domain.Attendee, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new attendee
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   domain.Attendee
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// Admins are provisioned out of band, never through signup.
	attendeeType := req.Type
	if attendeeType == "admin" {
		attendeeType = "attendee"
	}

	attendee, err := h.svc.Signup(ctx.Request.Context(), domain.Attendee{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Type:     attendeeType,
	})
	if err != nil {
		if errors.Is(err, service.ErrAttendeeEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAttendeeEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, attendee)
}

// HandleLogin godoc
// @Summary      Login an attendee
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	attendee, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAttendeeNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), attendee.ID, attendee.IsAdmin(), ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:    token,
		Attendee: attendee,
	})
}
