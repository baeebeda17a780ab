package names

import (
	"context"
	"time"
)

// Repository is the persistence surface the allocator needs. Insert must be
// atomic and must return common.ErrNameTaken when the unique constraint on
// the name column rejects the row; the constraint, not Exists, is the
// collision guard.
type Repository interface {
	// Exists reports whether name is already present in the store.
	Exists(ctx context.Context, name string) (bool, error)

	// Insert atomically reserves name with the given expiration.
	Insert(ctx context.Context, name string, expireAt time.Time) error
}
