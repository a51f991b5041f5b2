package nexAuth

import (
	"errors"
	"time"

	"github.com/MrEthical07/nexAuth/keys"
)

// Config defines a public type used by nexAuth APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Token      TokenConfig
	Keys       KeysConfig
	Web        WebConfig
	Revocation RevocationConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig defines a public type used by nexAuth APIs.
//
// TokenConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Service selects the key set requested from the [keys.Provider] on every
// issue and verify call. QueryEncoding switches the text encoding of issued
// tokens from standard base64 to the console-safe alphabet in package nb64.
type TokenConfig struct {
	Service          string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	NexTTL           time.Duration
	ServiceTTL       time.Duration
	PasswordResetTTL time.Duration
	QueryEncoding    bool
}

/*
====================================
KEYS CONFIG
====================================
*/

// KeysConfig defines a public type used by nexAuth APIs.
//
// KeysConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// When CacheEnabled is set and a Redis client is configured, the key provider
// is wrapped in [keys.Cached]. Only symmetric material is cached in Redis;
// RSA keys are memoized in process regardless of this setting.
type KeysConfig struct {
	CacheEnabled bool
	CachePrefix  string
	CacheTTL     time.Duration
}

/*
====================================
WEB CONFIG
====================================
*/

// WebConfig defines a public type used by nexAuth APIs.
//
// WebConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type WebConfig struct {
	Enabled       bool
	AccessTTL     time.Duration
	SigningMethod string // "ed25519" (default), "hs256" optional
	PrivateKey    []byte
	PublicKey     []byte
	Issuer        string
	Audience      string
}

/*
====================================
REVOCATION CONFIG
====================================
*/

// RevocationConfig defines a public type used by nexAuth APIs.
//
// RevocationConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RevocationConfig struct {
	Enabled     bool
	RedisPrefix string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by nexAuth APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by nexAuth APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Token: TokenConfig{
			Service:          keys.ServiceAccount,
			AccessTTL:        time.Hour,
			RefreshTTL:       14 * 24 * time.Hour,
			NexTTL:           time.Hour,
			ServiceTTL:       24 * time.Hour,
			PasswordResetTTL: 24 * time.Hour,
		},
		Keys: KeysConfig{
			CachePrefix: "nxk",
			CacheTTL:    15 * time.Minute,
		},
		Web: WebConfig{
			AccessTTL:     15 * time.Minute,
			SigningMethod: "ed25519",
		},
		Revocation: RevocationConfig{
			RedisPrefix: "nxr",
		},
		Audit: AuditConfig{
			BufferSize: 256,
			DropIfFull: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	cloned := cfg
	cloned.Web.PrivateKey = cloneBytes(cfg.Web.PrivateKey)
	cloned.Web.PublicKey = cloneBytes(cfg.Web.PublicKey)
	return cloned
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	if c.Token.Service == "" {
		return errors.New("token service name is required")
	}
	if c.Token.AccessTTL <= 0 || c.Token.RefreshTTL <= 0 || c.Token.NexTTL <= 0 ||
		c.Token.ServiceTTL <= 0 || c.Token.PasswordResetTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.Keys.CacheEnabled && c.Keys.CacheTTL < 0 {
		return errors.New("key cache TTL must not be negative")
	}
	if c.Web.Enabled {
		if c.Web.AccessTTL <= 0 {
			return errors.New("web access TTL must be positive")
		}
		switch c.Web.SigningMethod {
		case "ed25519", "hs256":
		default:
			return errors.New("unsupported web signing method")
		}
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("audit buffer size must be positive")
	}
	return nil
}
