package ports

import "context"

// CodeStore keeps verification codes with a TTL. Backed by Redis so codes
// survive restarts and are shared across instances, unlike a process-memory
// map.
type CodeStore interface {
	// Put stores the code for the key, replacing any previous one.
	Put(ctx context.Context, key, code string) error
	// Get returns the stored code, or ("", nil) when absent or expired.
	Get(ctx context.Context, key string) (string, error)
	// Delete removes the code so it cannot be replayed.
	Delete(ctx context.Context, key string) error
}

// VerificationService issues and checks one-time phone verification codes.
type VerificationService interface {
	// Send generates a code for the phone number and hands it to the
	// delivery channel. The code is returned only for development logging.
	Send(ctx context.Context, phone string) error
	// Check consumes the code on success. A wrong code leaves the stored
	// code in place.
	Check(ctx context.Context, phone, code string) (bool, error)
}
