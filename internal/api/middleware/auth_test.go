package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/demo-night-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

// newAuthTestRouter mounts a stub handler behind the given middlewares
// and reports whether it ran.
func newAuthTestRouter(handlerRan *bool, middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/", middlewares...)
	group.GET("/protected", func(ctx *gin.Context) {
		*handlerRan = true
		ctx.Status(http.StatusOK)
	})

	return router
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestVerifyJWT_MissingHeader(t *testing.T) {
	handlerRan := false
	router := newAuthTestRouter(&handlerRan, NewAuthenticator(testSigningKey).VerifyJWT())

	recorder := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, handlerRan, "rejection must happen before the handler runs")
}

func TestVerifyJWT_MalformedHeader(t *testing.T) {
	handlerRan := false
	router := newAuthTestRouter(&handlerRan, NewAuthenticator(testSigningKey).VerifyJWT())

	recorder := doRequest(router, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, handlerRan)
}

func TestVerifyJWT_ForgedToken(t *testing.T) {
	forged, err := jwthelper.GenerateToken([]byte("other-key"), 42, true, "")
	require.NoError(t, err)

	handlerRan := false
	router := newAuthTestRouter(&handlerRan, NewAuthenticator(testSigningKey).VerifyJWT())

	recorder := doRequest(router, "Bearer "+forged)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, handlerRan, "a token signed with the wrong key must never reach the handler")
}

func TestVerifyJWT_ValidTokenExposesAttendeeID(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, false, "")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	var gotID uint
	var gotOK bool
	group := router.Group("/", NewAuthenticator(testSigningKey).VerifyJWT())
	group.GET("/protected", func(ctx *gin.Context) {
		gotID, gotOK = AttendeeIDFromContext(ctx)
		ctx.Status(http.StatusOK)
	})

	recorder := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, gotOK)
	assert.Equal(t, uint(42), gotID)
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, false, "")
	require.NoError(t, err)

	authenticator := NewAuthenticator(testSigningKey)
	handlerRan := false
	router := newAuthTestRouter(&handlerRan, authenticator.VerifyJWT(), authenticator.RequireAdmin())

	recorder := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, handlerRan, "a non-admin must be rejected before any state change")
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, true, "")
	require.NoError(t, err)

	authenticator := NewAuthenticator(testSigningKey)
	handlerRan := false
	router := newAuthTestRouter(&handlerRan, authenticator.VerifyJWT(), authenticator.RequireAdmin())

	recorder := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, handlerRan)
}
