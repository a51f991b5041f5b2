package keys

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// ServiceKeys defines a public type used by nexAuth APIs.
//
// ServiceKeys instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Any subset of the fields may be set; lookups for an absent class fail with
// [ErrKeyNotFound]. RSA keys are supplied as PEM (PKIX public, PKCS#8 or
// PKCS#1 private).
type ServiceKeys struct {
	AESKey           []byte
	RSAPublicKeyPEM  []byte
	RSAPrivateKeyPEM []byte
	HMACSecret       []byte
}

type staticEntry struct {
	aesKey     []byte
	publicKey  *rsa.PublicKey
	privateKey *rsa.PrivateKey
	hmacSecret []byte
}

// Static defines a public type used by nexAuth APIs.
//
// Static instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Static struct {
	services map[string]staticEntry
}

// NewStatic describes the newstatic operation and its observable behavior.
//
// NewStatic may return an error when input validation, dependency calls, or security checks fail.
// NewStatic does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// All PEM material is parsed up front so malformed keys fail at construction
// rather than on the first token operation.
func NewStatic(services map[string]ServiceKeys) (*Static, error) {
	s := &Static{services: make(map[string]staticEntry, len(services))}

	for service, sk := range services {
		entry := staticEntry{
			aesKey:     cloneBytes(sk.AESKey),
			hmacSecret: cloneBytes(sk.HMACSecret),
		}

		if len(sk.RSAPublicKeyPEM) > 0 {
			pub, err := parseRSAPublicKey(sk.RSAPublicKeyPEM)
			if err != nil {
				return nil, fmt.Errorf("service %q: %w", service, err)
			}
			entry.publicKey = pub
		}
		if len(sk.RSAPrivateKeyPEM) > 0 {
			priv, err := parseRSAPrivateKey(sk.RSAPrivateKeyPEM)
			if err != nil {
				return nil, fmt.Errorf("service %q: %w", service, err)
			}
			entry.privateKey = priv
		}

		s.services[service] = entry
	}

	return s, nil
}

// SymmetricKey describes the symmetrickey operation and its observable behavior.
//
// SymmetricKey may return an error when input validation, dependency calls, or security checks fail.
// SymmetricKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Static) SymmetricKey(_ context.Context, service string) ([]byte, error) {
	entry, ok := s.services[service]
	if !ok || len(entry.aesKey) == 0 {
		return nil, fmt.Errorf("%w: %s (aes)", ErrKeyNotFound, service)
	}
	return cloneBytes(entry.aesKey), nil
}

// PublicKey describes the publickey operation and its observable behavior.
//
// PublicKey may return an error when input validation, dependency calls, or security checks fail.
// PublicKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Static) PublicKey(_ context.Context, service string) (*rsa.PublicKey, error) {
	entry, ok := s.services[service]
	if !ok || entry.publicKey == nil {
		return nil, fmt.Errorf("%w: %s (rsa public)", ErrKeyNotFound, service)
	}
	return entry.publicKey, nil
}

// PrivateKey describes the privatekey operation and its observable behavior.
//
// PrivateKey may return an error when input validation, dependency calls, or security checks fail.
// PrivateKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Static) PrivateKey(_ context.Context, service string) (*rsa.PrivateKey, error) {
	entry, ok := s.services[service]
	if !ok || entry.privateKey == nil {
		return nil, fmt.Errorf("%w: %s (rsa private)", ErrKeyNotFound, service)
	}
	return entry.privateKey, nil
}

// HMACSecret describes the hmacsecret operation and its observable behavior.
//
// HMACSecret may return an error when input validation, dependency calls, or security checks fail.
// HMACSecret does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Static) HMACSecret(_ context.Context, service string) ([]byte, error) {
	entry, ok := s.services[service]
	if !ok || len(entry.hmacSecret) == 0 {
		return nil, fmt.Errorf("%w: %s (hmac)", ErrKeyNotFound, service)
	}
	return cloneBytes(entry.hmacSecret), nil
}

func parseRSAPublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in public key", ErrInvalidKeyMaterial)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Legacy deployments ship PKCS#1 public keys.
		if pub, pkcs1Err := x509.ParsePKCS1PublicKey(block.Bytes); pkcs1Err == nil {
			return pub, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not RSA", ErrInvalidKeyMaterial)
	}
	return pub, nil
}

func parseRSAPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in private key", ErrInvalidKeyMaterial)
	}

	if priv, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return priv, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not RSA", ErrInvalidKeyMaterial)
	}
	return priv, nil
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
