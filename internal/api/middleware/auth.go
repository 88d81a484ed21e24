package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/demo-night-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/demo-night-api/internal/pkg/jwthelper"
)

const (
	attendeeIDKey = "attendeeID"
	isAdminKey    = "isAdmin"
)

// Authenticator verifies bearer tokens and stashes the caller's identity
// on the gin context for handlers to read back.
type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing Authorization header")))
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("malformed Authorization header")))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Set(attendeeIDKey, claims.AttendeeID)
		ctx.Set(isAdminKey, claims.IsAdmin)

		ctx.Next()
	}
}

// RequireAdmin gates a route group on the is_admin token claim. It must
// run after VerifyJWT.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool(isAdminKey) {
			response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("admin access required")))
			return
		}

		ctx.Next()
	}
}

func AttendeeIDFromContext(ctx *gin.Context) (uint, bool) {
	value, ok := ctx.Get(attendeeIDKey)
	if !ok {
		return 0, false
	}

	id, ok := value.(uint)

	return id, ok
}
