package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
)

// UserRepository defines the read contract for user accounts. Account
// management itself lives outside the engine; the engine only needs to
// resolve actors and notification recipients.
type UserRepository interface {
	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetAllByRole retrieves every active user holding the given role.
	// Used for the administrator and parcel manager notification fan-outs.
	GetAllByRole(ctx context.Context, role account.Role) ([]*account.User, error)
}
