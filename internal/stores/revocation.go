package stores

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrRevocationRedisUnavailable = errors.New("revocation redis unavailable")
)

// RevocationStore is a Redis-backed denylist of revoked wire tokens. Tokens
// themselves are never persisted; only the SHA-256 of the wire bytes is
// stored, bounded by the token's remaining lifetime.
type RevocationStore struct {
	redis  redis.UniversalClient
	prefix string
}

func NewRevocationStore(redisClient redis.UniversalClient, prefix string) *RevocationStore {
	if prefix == "" {
		prefix = "nxr"
	}
	return &RevocationStore{
		redis:  redisClient,
		prefix: prefix,
	}
}

func (s *RevocationStore) key(wire []byte) string {
	sum := sha256.Sum256(wire)
	return s.prefix + ":" + hex.EncodeToString(sum[:])
}

// Revoke marks a wire token revoked for ttl. A non-positive ttl means the
// token has already expired and nothing needs to be stored.
func (s *RevocationStore) Revoke(ctx context.Context, wire []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := s.redis.Set(ctx, s.key(wire), 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRevocationRedisUnavailable, err)
	}

	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, wire []byte) (bool, error) {
	n, err := s.redis.Exists(ctx, s.key(wire)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRevocationRedisUnavailable, err)
	}
	return n > 0, nil
}
