package nexAuth

import (
	"errors"

	internalaudit "github.com/MrEthical07/nexAuth/internal/audit"
	"github.com/MrEthical07/nexAuth/internal/stores"
	"github.com/MrEthical07/nexAuth/jwt"
	"github.com/MrEthical07/nexAuth/keys"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by nexAuth APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	keyProvider keys.Provider
	auditSink   AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithKeyProvider describes the withkeyprovider operation and its observable behavior.
//
// WithKeyProvider may return an error when input validation, dependency calls, or security checks fail.
// WithKeyProvider does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithKeyProvider(p keys.Provider) *Builder {
	b.keyProvider = p
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Build is the only place dependencies are wired together. It performs no
// I/O; the first Redis round-trip happens on the first Engine call that
// needs one.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	if b.keyProvider == nil {
		return nil, errors.New("key provider is required")
	}
	if b.config.Revocation.Enabled && b.redis == nil {
		return nil, errors.New("revocation requires a redis client")
	}
	if b.config.Keys.CacheEnabled && b.redis == nil {
		return nil, errors.New("key caching requires a redis client")
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	provider := b.keyProvider
	if b.config.Keys.CacheEnabled {
		provider = keys.NewCached(provider, b.redis, b.config.Keys.CachePrefix, b.config.Keys.CacheTTL)
	}

	var webManager *jwt.Manager
	if b.config.Web.Enabled {
		mgr, err := jwt.NewManager(jwt.Config{
			AccessTTL:     b.config.Web.AccessTTL,
			SigningMethod: jwt.SigningMethod(b.config.Web.SigningMethod),
			PrivateKey:    b.config.Web.PrivateKey,
			PublicKey:     b.config.Web.PublicKey,
			Issuer:        b.config.Web.Issuer,
			Audience:      b.config.Web.Audience,
		})
		if err != nil {
			return nil, err
		}
		webManager = mgr
	}

	var revocation *stores.RevocationStore
	if b.config.Revocation.Enabled {
		revocation = stores.NewRevocationStore(b.redis, b.config.Revocation.RedisPrefix)
	}

	e := &Engine{
		config:     b.config,
		keys:       provider,
		web:        webManager,
		revocation: revocation,
		metrics:    NewMetrics(b.config.Metrics),
		audit: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    b.config.Audit.Enabled,
			BufferSize: b.config.Audit.BufferSize,
			DropIfFull: b.config.Audit.DropIfFull,
		}, b.auditSink),
	}

	b.built = true
	return e, nil
}
