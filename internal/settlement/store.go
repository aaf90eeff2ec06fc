package settlement

import "context"

// Store is the persistence sink for settlement records. The service layer
// only depends on this interface, so the Postgres implementation can be
// swapped for a mock in tests or another backend entirely.
type Store interface {
	// Insert persists a new settlement atomically. Implementations must
	// serialize concurrent inserts for the same group so two callers working
	// from the same stale balance snapshot cannot both record overlapping
	// settlements unchecked.
	Insert(ctx context.Context, s *Settlement) error

	// ListByGroup returns every settlement of a group, newest created first.
	ListByGroup(ctx context.Context, groupID string) ([]*Settlement, error)

	// ListCompleted returns the completed settlements of a group, newest
	// completed first.
	ListCompleted(ctx context.Context, groupID string) ([]*Settlement, error)

	// ExistsCompleted reports whether a completed settlement from payer to
	// payee exists in the group, optionally matching a cent-rounded amount.
	ExistsCompleted(ctx context.Context, groupID, payerID, payeeID string, amount *float64) (bool, error)
}
