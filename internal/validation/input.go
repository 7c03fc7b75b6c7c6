package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/templui/perfdesk/internal/model"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidID   = errors.New("identifier must be a positive whole number")
	ErrInvalidDate = errors.New("date must use YYYY-MM-DD format")
	ErrInvalidRole = errors.New("role must be manager or employee")
)

// ParseID parses a numeric identifier from form or path input
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseDueDate parses a date input. Past dates are accepted.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d.UTC(), nil
}

func ParseRole(s string) (model.Role, error) {
	role := model.Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
