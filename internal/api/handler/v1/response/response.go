package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	Error error `json:"-"` // low-level runtime error

	StatusCode int    `json:"status"`          // http response status code
	StatusText string `json:"error"`           // user-level status message
	ErrorText  string `json:"error_text,omitempty"` // application-level error message
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.StatusCode == http.StatusInternalServerError {
		// Hide internals from the response body, keep them in the log.
		zap.L().Error("internal server error", zap.Error(e.Error))
		e.ErrorText = ""
	}

	ctx.AbortWithStatusJSON(e.StatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Error:      err,
		StatusCode: http.StatusBadRequest,
		StatusText: "Bad request.",
		ErrorText:  err.Error(),
	}
}

func ErrNotFound(what, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		StatusText: "Resource not found.",
		ErrorText:  fmt.Sprintf("%v with %v (%v) not found", what, key, value),
	}
}

// ErrNoActiveEvent is the AbsentState render: expected, recoverable,
// and distinguishable from a plain 404 by its status text.
func ErrNoActiveEvent() *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		StatusText: "No active event.",
	}
}

// ErrConflict renders a domain conflict (duplicate vote, duplicate
// event feedback) as a user-facing validation message.
func ErrConflict(err error) *Err {
	return &Err{
		Error:      err,
		StatusCode: http.StatusConflict,
		StatusText: "Conflict.",
		ErrorText:  err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Error:      err,
		StatusCode: http.StatusUnauthorized,
		StatusText: "Unauthorized.",
		ErrorText:  err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Error:      err,
		StatusCode: http.StatusUnauthorized,
		StatusText: "Wrong credentials.",
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		Error:      err,
		StatusCode: http.StatusForbidden,
		StatusText: "Permission denied.",
		ErrorText:  err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Error:      err,
		StatusCode: http.StatusInternalServerError,
		StatusText: "Internal server error.",
	}
}
