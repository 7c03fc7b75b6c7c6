package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/validation"
)

func TestSessionService_RoundTrip(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour, false)

	sess, token, err := svc.SignIn(model.RoleManager, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, model.RoleManager, got.Role)
	assert.Equal(t, int64(1), got.UserID)
	assert.True(t, got.IsManager())
}

func TestSessionService_RejectsInvalidIdentity(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour, false)

	_, _, err := svc.SignIn(model.Role("admin"), 1)
	assert.ErrorIs(t, err, validation.ErrInvalidRole)

	_, _, err = svc.SignIn(model.RoleEmployee, 0)
	assert.ErrorIs(t, err, validation.ErrInvalidID)
}

func TestSessionService_RejectsTamperedAndExpired(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour, false)
	_, token, err := svc.SignIn(model.RoleEmployee, 2)
	require.NoError(t, err)

	other := NewSessionService("other-secret", time.Hour, false)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = svc.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidSession)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_Cookies(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour, true)

	rec := httptest.NewRecorder()
	svc.SetCookie(rec, "abc")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	rec = httptest.NewRecorder()
	svc.ClearCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
