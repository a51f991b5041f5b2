package token

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"fmt"
	mathrand "math/rand"
)

var (
	// ErrIncompleteFields is an exported constant or variable used by the token engine.
	ErrIncompleteFields = errors.New("token fields incomplete for long format")
	// ErrMissingMaterial is an exported constant or variable used by the token engine.
	ErrMissingMaterial = errors.New("token crypto material missing")
	// ErrMalformed is an exported constant or variable used by the token engine.
	ErrMalformed = errors.New("token malformed")
	// ErrIntegrity is an exported constant or variable used by the token engine.
	ErrIntegrity = errors.New("token signature mismatch")
)

const (
	rsaBlockLen   = 128 // 1024-bit modulus
	pointRange    = 120 // 8-byte IV windows must stay inside the RSA block
	signatureLen  = sha1.Size
	longHeaderLen = rsaBlockLen + 2 + signatureLen // 0x96

	offsetPoint1    = 0x80
	offsetPoint2    = 0x81
	offsetSignature = 0x82
	offsetBody      = 0x96

	ephemeralKeyLen = 16

)

// ShortWireMax is the format-selection threshold on Decode: wires of this
// many bytes or fewer take the short path. It is a heuristic inherited from
// the wire design, not a self-describing tag: any future variant whose
// ciphertext length can land on the other side of this boundary makes
// decoding ambiguous.
const ShortWireMax = 32

// Material defines a public type used by nexAuth APIs.
//
// Material instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// AESKey drives the short format. RSAPublicKey (encode) or RSAPrivateKey
// (decode) together with HMACSecret drive the long format. The codec never
// fetches keys itself; a key provider fills this in per call.
type Material struct {
	AESKey        []byte
	RSAPublicKey  *rsa.PublicKey
	RSAPrivateKey *rsa.PrivateKey
	HMACSecret    []byte
}

// Encode describes the encode operation and its observable behavior.
//
// Encode may return an error when input validation, dependency calls, or security checks fail.
// Encode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// When m carries no RSA public key the short format is produced; otherwise
// the long format. A long-format request with missing AccessLevel or TitleID
// fails with [ErrIncompleteFields] before any cryptographic work.
func Encode(f Fields, m Material) ([]byte, error) {
	if m.RSAPublicKey == nil {
		return encodeShort(f, m.AESKey)
	}
	return encodeLong(f, m)
}

// Decode describes the decode operation and its observable behavior.
//
// Decode may return an error when input validation, dependency calls, or security checks fail.
// Decode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A signature mismatch on the long path returns [ErrIntegrity]. Forged and
// tampered tokens are routine input, not a program fault; callers reject the
// token and move on. Malformed or truncated input returns [ErrMalformed].
func Decode(wire []byte, m Material) (Fields, error) {
	if len(wire) <= ShortWireMax {
		return decodeShort(wire, m.AESKey)
	}
	return decodeLong(wire, m)
}

/*
====================================
SHORT FORMAT
====================================
*/

// encodeShort encrypts the 14-byte payload under the service AES key with a
// zero IV. The zero IV and shared key mean identical payloads produce
// identical ciphertexts; the deployed client fleet expects this exact
// construction, so it is preserved rather than strengthened.
func encodeShort(f Fields, aesKey []byte) ([]byte, error) {
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingMaterial, err)
	}

	plaintext := pkcs7Pad(f.marshalShort(), block.BlockSize())
	ciphertext := make([]byte, len(plaintext))

	iv := make([]byte, block.BlockSize())
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	return ciphertext, nil
}

func decodeShort(wire []byte, aesKey []byte) (Fields, error) {
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return Fields{}, fmt.Errorf("%w: %v", ErrMissingMaterial, err)
	}

	if len(wire) == 0 || len(wire)%block.BlockSize() != 0 {
		return Fields{}, fmt.Errorf("%w: short ciphertext misaligned", ErrMalformed)
	}

	plaintext := make([]byte, len(wire))
	iv := make([]byte, block.BlockSize())
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, wire)

	payload, err := pkcs7Unpad(plaintext, block.BlockSize())
	if err != nil {
		return Fields{}, err
	}

	return unmarshalShort(payload)
}

/*
====================================
LONG FORMAT
====================================
*/

// encodeLong produces the hybrid envelope:
//
//	[0x00] RSA-OAEP(SHA-256) ciphertext of a fresh 16-byte AES key
//	[0x80] point1, [0x81] point2 — offsets in [0,120)
//	[0x82] HMAC-SHA1 over the plaintext payload
//	[0x96] AES-128-CBC body, IV derived from two ciphertext windows
//
// The IV is ciphertext[point1:point1+8] ++ ciphertext[point2:point2+8],
// which avoids transmitting a separate IV at the cost of weak IV entropy.
// The offsets come from a non-cryptographic source to match the reference
// design; the ephemeral AES key itself always comes from crypto/rand.
func encodeLong(f Fields, m Material) ([]byte, error) {
	if !f.Extended() {
		return nil, ErrIncompleteFields
	}
	if len(m.HMACSecret) == 0 {
		return nil, fmt.Errorf("%w: hmac secret required for long format", ErrMissingMaterial)
	}

	payload := f.marshalLong()

	mac := hmac.New(sha1.New, m.HMACSecret)
	mac.Write(payload)
	signature := mac.Sum(nil)

	aesKey := make([]byte, ephemeralKeyLen)
	if _, err := rand.Read(aesKey); err != nil {
		return nil, err
	}

	encryptedKey, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, m.RSAPublicKey, aesKey, nil)
	if err != nil {
		return nil, err
	}
	if len(encryptedKey) != rsaBlockLen {
		return nil, fmt.Errorf("%w: unexpected rsa modulus size", ErrMissingMaterial)
	}

	point1 := mathrand.Intn(pointRange)
	point2 := mathrand.Intn(pointRange)
	iv := deriveIV(encryptedKey, point1, point2)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, err
	}

	plaintext := pkcs7Pad(payload, block.BlockSize())
	body := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(body, plaintext)

	var buf bytes.Buffer
	buf.Grow(longHeaderLen + len(body))
	buf.Write(encryptedKey)
	buf.WriteByte(byte(point1))
	buf.WriteByte(byte(point2))
	buf.Write(signature)
	buf.Write(body)

	return buf.Bytes(), nil
}

func decodeLong(wire []byte, m Material) (Fields, error) {
	if m.RSAPrivateKey == nil || len(m.HMACSecret) == 0 {
		return Fields{}, fmt.Errorf("%w: long format requires rsa private key and hmac secret", ErrMissingMaterial)
	}
	if len(wire) < longHeaderLen+aes.BlockSize {
		return Fields{}, fmt.Errorf("%w: long token too short", ErrMalformed)
	}

	encryptedKey := wire[:rsaBlockLen]

	// The reference client reads the offsets as signed bytes. Encode only
	// ever emits [0,120), so anything outside that domain is malformed input
	// and must not be allowed to index the RSA block.
	point1 := int(int8(wire[offsetPoint1]))
	point2 := int(int8(wire[offsetPoint2]))
	if point1 < 0 || point1 >= pointRange || point2 < 0 || point2 >= pointRange {
		return Fields{}, fmt.Errorf("%w: iv offsets out of range", ErrMalformed)
	}

	signature := wire[offsetSignature:offsetBody]
	body := wire[offsetBody:]
	if len(body)%aes.BlockSize != 0 {
		return Fields{}, fmt.Errorf("%w: long ciphertext misaligned", ErrMalformed)
	}

	aesKey, err := rsa.DecryptOAEP(sha256.New(), nil, m.RSAPrivateKey, encryptedKey, nil)
	if err != nil {
		return Fields{}, fmt.Errorf("%w: key unwrap failed", ErrMalformed)
	}
	if len(aesKey) != ephemeralKeyLen {
		return Fields{}, fmt.Errorf("%w: unexpected wrapped key size", ErrMalformed)
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return Fields{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	iv := deriveIV(encryptedKey, point1, point2)
	plaintext := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, body)

	payload, err := pkcs7Unpad(plaintext, block.BlockSize())
	if err != nil {
		return Fields{}, err
	}

	mac := hmac.New(sha1.New, m.HMACSecret)
	mac.Write(payload)
	if !hmac.Equal(mac.Sum(nil), signature) {
		return Fields{}, ErrIntegrity
	}

	return unmarshalLong(payload)
}

// deriveIV concatenates two 8-byte windows of the RSA ciphertext. Both
// offsets are below pointRange, so the windows stay inside the block.
func deriveIV(encryptedKey []byte, point1, point2 int) []byte {
	iv := make([]byte, 0, aes.BlockSize)
	iv = append(iv, encryptedKey[point1:point1+8]...)
	iv = append(iv, encryptedKey[point2:point2+8]...)
	return iv
}

/*
====================================
PADDING
====================================
*/

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: unpad on misaligned data", ErrMalformed)
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, fmt.Errorf("%w: invalid padding", ErrMalformed)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("%w: invalid padding", ErrMalformed)
		}
	}
	return data[:len(data)-padding], nil
}
