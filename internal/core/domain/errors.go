package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
	ErrSessionExpired = errors.New("session expired")
	ErrSessionInvalid = errors.New("session invalid")
)

// Verification errors
var (
	ErrRobloxUserNotFound = errors.New("roblox user not found")
	ErrIneligible         = errors.New("group rank below portal minimum")
	ErrNoCodeFound        = errors.New("no active verification code")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrCodeNotInProfile   = errors.New("verification code not found in profile")
)

// Gateway errors
var (
	ErrNotGroupMember     = errors.New("user is not a member of the group")
	ErrGatewayUnavailable = errors.New("roblox lookup failed")
)

// Request errors
var (
	ErrRequestNotFound = errors.New("request not found")
	ErrInvalidStatus   = errors.New("invalid request status")
)
