package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/validation"
)

const SessionCookieName = "session_token"

var ErrInvalidSession = errors.New("invalid session token")

type sessionClaims struct {
	Role   model.Role `json:"role"`
	UserID int64      `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies signed session cookies. Sign-in trusts
// the declared role and identifier; nothing is checked against a user store.
type SessionService struct {
	secret []byte
	expiry time.Duration
	secure bool
	now    clock
}

func NewSessionService(secret string, expiry time.Duration, secure bool) *SessionService {
	return &SessionService{
		secret: []byte(secret),
		expiry: expiry,
		secure: secure,
		now:    utcNow,
	}
}

// SignIn builds a session for the declared identity and its signed token.
func (s *SessionService) SignIn(role model.Role, userID int64) (*model.Session, string, error) {
	if !role.Valid() {
		return nil, "", validation.ErrInvalidRole
	}
	if userID < 1 {
		return nil, "", validation.ErrInvalidID
	}

	now := s.now()
	sess := &model.Session{
		ID:       uuid.New().String(),
		Role:     role,
		UserID:   userID,
		IssuedAt: now,
	}

	claims := sessionClaims{
		Role:   role,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   fmt.Sprintf("%s:%d", role, userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session: %w", err)
	}

	return sess, tokenString, nil
}

func (s *SessionService) Verify(tokenString string) (*model.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	if !claims.Role.Valid() || claims.UserID < 1 {
		return nil, ErrInvalidSession
	}

	sess := &model.Session{
		ID:     claims.ID,
		Role:   claims.Role,
		UserID: claims.UserID,
	}
	if claims.IssuedAt != nil {
		sess.IssuedAt = claims.IssuedAt.Time
	}
	return sess, nil
}

func (s *SessionService) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  s.now().Add(s.expiry),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionService) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
