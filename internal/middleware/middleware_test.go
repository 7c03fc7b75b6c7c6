package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/perfdesk/internal/config"
	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/service"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(okHandler), mark("a"), mark("b"), mark("c"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestCSRFProtection(t *testing.T) {
	h := CSRFProtection(http.HandlerFunc(okHandler))

	// GET issues a token cookie
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	token := cookies[0].Value

	// POST without a token is rejected
	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// POST with the matching form field passes
	form := url.Values{CSRFFormField: {token}}
	req = httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Header works too
	req = httptest.NewRequest(http.MethodPost, "/session", nil)
	req.Header.Set(csrfHeader, token)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))

	// One token refills every window/limit
	now = now.Add(30 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))

	// The next call after the cleanup interval forgets idle IPs
	now = now.Add(10 * time.Minute)
	assert.True(t, rl.Allow("10.0.0.3"))
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.3")
}

func TestRateLimit_Middleware(t *testing.T) {
	h := RateLimit(NewRateLimiter(1, time.Hour))(okHandler)

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/session", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		h(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.9"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.10"), "rotating X-Forwarded-For does not reset the limit")
}

func TestRateLimit_TrustedProxy(t *testing.T) {
	h := RateLimit(NewRateLimiter(1, time.Hour))(okHandler)
	cfg := &config.Config{TrustProxy: true}

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/session", nil)
		req = req.WithContext(ctxkeys.WithConfig(req.Context(), cfg))
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		h(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.9, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9, 10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("198.51.100.7"), "each forwarded client has its own bucket")
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("X-Real-IP", " 198.51.100.7 ")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "192.0.2.1", getClientIP(req), "forwarding headers ignored without a trusted proxy")

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", getClientIP(req))

	trusted := req.WithContext(ctxkeys.WithConfig(req.Context(), &config.Config{TrustProxy: true}))
	assert.Equal(t, "203.0.113.9", getClientIP(trusted))

	trusted.Header.Del("X-Forwarded-For")
	assert.Equal(t, "198.51.100.7", getClientIP(trusted))
}

func TestSession(t *testing.T) {
	sessions := service.NewSessionService("secret", time.Hour, false)
	_, token, err := sessions.SignIn(model.RoleManager, 1)
	require.NoError(t, err)

	var got *model.Session
	h := Session(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Session(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/app/goals", nil)
	req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: token})
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.UserID)

	got = nil
	req = httptest.NewRequest(http.MethodGet, "/app/goals", nil)
	req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Nil(t, got)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}

func TestRequireSession(t *testing.T) {
	h := RequireSession(okHandler)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/app/goals", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/app/goals", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))

	req = httptest.NewRequest(http.MethodGet, "/app/goals", nil)
	req = req.WithContext(ctxkeys.WithSession(req.Context(), &model.Session{Role: model.RoleEmployee, UserID: 2}))
	rec = httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireGuest(t *testing.T) {
	h := RequireGuest(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxkeys.WithSession(req.Context(), &model.Session{Role: model.RoleManager, UserID: 1}))
	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/app/goals", rec.Header().Get("Location"))
}

type countingScanner struct {
	calls  int
	result service.ScanResult
	err    error
}

func (s *countingScanner) Scan(ctx context.Context) (service.ScanResult, error) {
	s.calls++
	return s.result, s.err
}

func TestReminderScan(t *testing.T) {
	scanner := &countingScanner{}
	h := ReminderScan(scanner)(okHandler)
	signedIn := func(method string) *http.Request {
		req := httptest.NewRequest(method, "/app/goals", nil)
		return req.WithContext(ctxkeys.WithSession(req.Context(), &model.Session{Role: model.RoleManager, UserID: 1}))
	}

	h(httptest.NewRecorder(), signedIn(http.MethodGet))
	assert.Equal(t, 1, scanner.calls)

	h(httptest.NewRecorder(), signedIn(http.MethodPost))
	assert.Equal(t, 1, scanner.calls, "only page loads scan")

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app/goals", nil))
	assert.Equal(t, 1, scanner.calls, "anonymous requests do not scan")

	scanner.err = assert.AnError
	rec := httptest.NewRecorder()
	h(rec, signedIn(http.MethodGet))
	assert.Equal(t, http.StatusOK, rec.Code, "scan failure never fails the page")
}

func TestReminderScan_PassesOutcomeToPage(t *testing.T) {
	scanner := &countingScanner{result: service.ScanResult{
		Examined: 2,
		Created:  []service.Reminder{{Goal: &model.Goal{ID: 4}}},
	}}

	var seen *model.ScanOutcome
	h := ReminderScan(scanner)(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxkeys.Scan(r.Context())
	})
	signedIn := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/app/goals", nil)
		return req.WithContext(ctxkeys.WithSession(req.Context(), &model.Session{Role: model.RoleEmployee, UserID: 2}))
	}

	h(httptest.NewRecorder(), signedIn())
	require.NotNil(t, seen)
	assert.Equal(t, []int64{4}, seen.RemindedGoalIDs)
	assert.False(t, seen.Failed)

	scanner.result = service.ScanResult{Examined: 1, Failed: 1}
	h(httptest.NewRecorder(), signedIn())
	require.NotNil(t, seen)
	assert.Empty(t, seen.RemindedGoalIDs)
	assert.True(t, seen.Failed, "a goal that could not be reminded is reported")

	scanner.result = service.ScanResult{}
	scanner.err = assert.AnError
	h(httptest.NewRecorder(), signedIn())
	require.NotNil(t, seen)
	assert.True(t, seen.Failed)
}

func TestTimeout(t *testing.T) {
	var deadline time.Time
	var ok bool
	h := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestSecurityHeaders(t *testing.T) {
	var nonce string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce = templ.GetNonce(r.Context())
	}), NonceMiddleware, SecurityHeaders)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, nonce)
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "'nonce-"+nonce+"'")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestRequestLogging_RequestID(t *testing.T) {
	var id string
	h := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = ctxkeys.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/goals", nil))
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/app/goals", nil)
	req.Header.Set(requestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", id)
}
