package service

import (
	"errors"
	"time"

	"github.com/templui/perfdesk/internal/model"
)

var (
	ErrUnauthenticated = errors.New("no active session")
	ErrForbidden       = errors.New("action not allowed for this role")
)

// clock is swapped in tests to pin "now".
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

func requireSession(sess *model.Session) error {
	if sess == nil || !sess.Role.Valid() || sess.UserID < 1 {
		return ErrUnauthenticated
	}
	return nil
}

func requireManager(sess *model.Session) error {
	err := requireSession(sess)
	if err != nil {
		return err
	}
	if !sess.IsManager() {
		return ErrForbidden
	}
	return nil
}
