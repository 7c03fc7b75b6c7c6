package model

import (
	"time"
)

type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

// Session is the caller identity every service operation runs as.
// Identity is self-declared at sign-in; there is no credential check.
type Session struct {
	ID       string
	Role     Role
	UserID   int64
	IssuedAt time.Time
}

func (s *Session) IsManager() bool {
	return s != nil && s.Role == RoleManager
}

func (s *Session) IsEmployee() bool {
	return s != nil && s.Role == RoleEmployee
}
