package keys

import (
	"context"
	"crypto/rsa"
	"errors"
)

// ServiceAccount is an exported constant or variable used by the token engine.
const ServiceAccount = "account"

var (
	// ErrKeyNotFound is an exported constant or variable used by the token engine.
	ErrKeyNotFound = errors.New("key not found for service")
	// ErrInvalidKeyMaterial is an exported constant or variable used by the token engine.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)

// Provider defines a public type used by nexAuth APIs.
//
// Provider implementations may involve I/O and caching. Lookup failures are
// reported with [ErrKeyNotFound] (or an implementation-specific error) and
// must be propagated unchanged by callers — the token engine performs no
// retry and no fallback.
type Provider interface {
	SymmetricKey(ctx context.Context, service string) ([]byte, error)
	PublicKey(ctx context.Context, service string) (*rsa.PublicKey, error)
	PrivateKey(ctx context.Context, service string) (*rsa.PrivateKey, error)
	HMACSecret(ctx context.Context, service string) ([]byte, error)
}
