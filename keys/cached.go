package keys

import (
	"context"
	"crypto/rsa"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	classAES  = "aes"
	classHMAC = "hmac"
)

// Cached defines a public type used by nexAuth APIs.
//
// Cached instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Cached wraps a [Provider] with a Redis read-through cache for symmetric
// material (AES keys and HMAC secrets). RSA keys are memoized in-process
// only: private keys must never be written to an external store. Cache
// unavailability is never an error — lookups fall through to the inner
// provider.
type Cached struct {
	inner  Provider
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration

	rsaPublic  sync.Map // service -> *rsa.PublicKey
	rsaPrivate sync.Map // service -> *rsa.PrivateKey
}

// NewCached describes the newcached operation and its observable behavior.
//
// NewCached may return an error when input validation, dependency calls, or security checks fail.
// NewCached does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewCached(inner Provider, redisClient redis.UniversalClient, prefix string, ttl time.Duration) *Cached {
	if prefix == "" {
		prefix = "nxk"
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cached{
		inner:  inner,
		redis:  redisClient,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *Cached) key(class, service string) string {
	return c.prefix + ":" + class + ":" + service
}

func (c *Cached) lookupSymmetric(ctx context.Context, class, service string, fetch func() ([]byte, error)) ([]byte, error) {
	if c.redis != nil {
		if data, err := c.redis.Get(ctx, c.key(class, service)).Bytes(); err == nil && len(data) > 0 {
			return data, nil
		}
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	if c.redis != nil {
		// Best effort; the authoritative copy is the inner provider.
		_ = c.redis.Set(ctx, c.key(class, service), data, c.ttl).Err()
	}

	return data, nil
}

// SymmetricKey describes the symmetrickey operation and its observable behavior.
//
// SymmetricKey may return an error when input validation, dependency calls, or security checks fail.
// SymmetricKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cached) SymmetricKey(ctx context.Context, service string) ([]byte, error) {
	return c.lookupSymmetric(ctx, classAES, service, func() ([]byte, error) {
		return c.inner.SymmetricKey(ctx, service)
	})
}

// HMACSecret describes the hmacsecret operation and its observable behavior.
//
// HMACSecret may return an error when input validation, dependency calls, or security checks fail.
// HMACSecret does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cached) HMACSecret(ctx context.Context, service string) ([]byte, error) {
	return c.lookupSymmetric(ctx, classHMAC, service, func() ([]byte, error) {
		return c.inner.HMACSecret(ctx, service)
	})
}

// PublicKey describes the publickey operation and its observable behavior.
//
// PublicKey may return an error when input validation, dependency calls, or security checks fail.
// PublicKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cached) PublicKey(ctx context.Context, service string) (*rsa.PublicKey, error) {
	if cached, ok := c.rsaPublic.Load(service); ok {
		return cached.(*rsa.PublicKey), nil
	}

	pub, err := c.inner.PublicKey(ctx, service)
	if err != nil {
		return nil, err
	}

	c.rsaPublic.Store(service, pub)
	return pub, nil
}

// PrivateKey describes the privatekey operation and its observable behavior.
//
// PrivateKey may return an error when input validation, dependency calls, or security checks fail.
// PrivateKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Cached) PrivateKey(ctx context.Context, service string) (*rsa.PrivateKey, error) {
	if cached, ok := c.rsaPrivate.Load(service); ok {
		return cached.(*rsa.PrivateKey), nil
	}

	priv, err := c.inner.PrivateKey(ctx, service)
	if err != nil {
		return nil, err
	}

	c.rsaPrivate.Store(service, priv)
	return priv, nil
}
