package ports

import "context"

// LockoutStore tracks failed sign-in attempts per account inside a sliding
// window. An account is locked while its failure count within the window is
// at or above the configured threshold; the lock expires with the window.
type LockoutStore interface {
	// Locked reports whether the account is currently locked out.
	Locked(ctx context.Context, email string) (bool, error)
	// RecordFailure registers one failed attempt and returns the count
	// accumulated inside the current window.
	RecordFailure(ctx context.Context, email string) (int64, error)
	// Clear resets the failure count after a successful sign-in.
	Clear(ctx context.Context, email string) error
}
