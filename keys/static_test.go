package keys

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
)

func testKeyPairPEM(t *testing.T) (publicPEM, privatePEM []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("rsa key generation failed: %v", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key failed: %v", err)
	}
	publicPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal private key failed: %v", err)
	}
	privatePEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})

	return publicPEM, privatePEM
}

func TestStaticLookup(t *testing.T) {
	pubPEM, privPEM := testKeyPairPEM(t)

	provider, err := NewStatic(map[string]ServiceKeys{
		ServiceAccount: {
			AESKey:           make([]byte, 16),
			RSAPublicKeyPEM:  pubPEM,
			RSAPrivateKeyPEM: privPEM,
			HMACSecret:       []byte("secret"),
		},
	})
	if err != nil {
		t.Fatalf("NewStatic error: %v", err)
	}

	ctx := context.Background()

	if _, err := provider.SymmetricKey(ctx, ServiceAccount); err != nil {
		t.Fatalf("SymmetricKey error: %v", err)
	}
	if _, err := provider.PublicKey(ctx, ServiceAccount); err != nil {
		t.Fatalf("PublicKey error: %v", err)
	}
	if _, err := provider.PrivateKey(ctx, ServiceAccount); err != nil {
		t.Fatalf("PrivateKey error: %v", err)
	}
	if _, err := provider.HMACSecret(ctx, ServiceAccount); err != nil {
		t.Fatalf("HMACSecret error: %v", err)
	}
}

func TestStaticUnknownService(t *testing.T) {
	provider, err := NewStatic(map[string]ServiceKeys{
		ServiceAccount: {AESKey: make([]byte, 16)},
	})
	if err != nil {
		t.Fatalf("NewStatic error: %v", err)
	}

	ctx := context.Background()

	if _, err := provider.SymmetricKey(ctx, "friends"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
	// Service known, key class absent.
	if _, err := provider.PublicKey(ctx, ServiceAccount); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
}

func TestStaticRejectsMalformedPEM(t *testing.T) {
	_, err := NewStatic(map[string]ServiceKeys{
		ServiceAccount: {RSAPublicKeyPEM: []byte("not a pem block")},
	})
	if !errors.Is(err, ErrInvalidKeyMaterial) {
		t.Fatalf("err = %v, want ErrInvalidKeyMaterial", err)
	}
}

func TestStaticKeyIsolation(t *testing.T) {
	aesKey := make([]byte, 16)
	provider, err := NewStatic(map[string]ServiceKeys{
		ServiceAccount: {AESKey: aesKey},
	})
	if err != nil {
		t.Fatalf("NewStatic error: %v", err)
	}

	got, err := provider.SymmetricKey(context.Background(), ServiceAccount)
	if err != nil {
		t.Fatalf("SymmetricKey error: %v", err)
	}

	// Mutating the returned slice must not corrupt the provider's copy.
	got[0] = 0xFF
	again, err := provider.SymmetricKey(context.Background(), ServiceAccount)
	if err != nil {
		t.Fatalf("SymmetricKey error: %v", err)
	}
	if again[0] != 0 {
		t.Fatal("provider key material was mutated through a returned slice")
	}
}
