package services

import (
	"context"

	"rbx-staffhub/internal/core/domain"
)

// RobloxGateway abstracts the external identity lookups. Implementations
// return domain.ErrGatewayUnavailable for transport/5xx failures so callers
// can tell "lookup failed" apart from "genuinely absent" — current policy
// treats both the same, but the distinction is kept at the type level.
type RobloxGateway interface {
	// LookupUserByName resolves a username to a stable numeric user id.
	// Returns domain.ErrRobloxUserNotFound if no such user exists.
	LookupUserByName(ctx context.Context, name string) (*domain.RobloxUser, error)

	// FetchProfileText returns the user's free-text profile field.
	// On any failure it returns "" alongside the error.
	FetchProfileText(ctx context.Context, userID int64) (string, error)

	// FetchGroupRole returns the user's role within the configured group.
	// Returns domain.ErrNotGroupMember if the user is not in the group.
	FetchGroupRole(ctx context.Context, userID int64, groupID int64) (*domain.GroupRole, error)
}
