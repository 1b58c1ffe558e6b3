package domain

import "time"

// RequestStatus represents the lifecycle state of a transfer/LOA request
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// IsDecision reports whether s is a valid reviewer decision
func (s RequestStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// RequestKind distinguishes the two request record types
type RequestKind string

const (
	KindTransfer RequestKind = "transfer"
	KindLoa      RequestKind = "loa"
)

// Default assignment for accounts created on first verification
const (
	DefaultDepartment    = "Operations"
	DefaultSubDepartment = "General"
)

// Account represents a verified group member in the domain layer
type Account struct {
	ID             uint
	RobloxUsername string
	RobloxUserID   int64
	RankLabel      string
	RankID         int
	Department     string
	SubDepartment  string
	VerifiedAt     time.Time
	LastLoginAt    time.Time
}

// RobloxUser is the identity resolved from the external platform
type RobloxUser struct {
	ID          int64
	Username    string
	DisplayName string
}

// GroupRole is a user's role within the configured group
type GroupRole struct {
	RoleID   int
	RoleName string
}

// Session is a server-side login session referenced by an opaque token
type Session struct {
	ID         uint
	AccountID  uint
	ExpiresAt  time.Time
	LastSeenAt time.Time
	CreatedAt  time.Time
}
