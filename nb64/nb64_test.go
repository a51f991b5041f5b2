package nb64

import (
	"bytes"
	"strings"
	"testing"
)

func TestBijection(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single zero", []byte{0}},
		{"all 0xFF", bytes.Repeat([]byte{0xFF}, 64)},
		{"one block", []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{"binary run", func() []byte {
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := Encode(tc.data)
			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if !bytes.Equal(decoded, tc.data) {
				t.Fatalf("round trip mismatch: got %x want %x", decoded, tc.data)
			}
		})
	}
}

func TestAlphabetSubstitution(t *testing.T) {
	// 0xFF runs force '+'-class and '/'-class symbols plus padding in the
	// standard alphabet; none of those may survive the substitution.
	encoded := Encode(bytes.Repeat([]byte{0xFF}, 7))

	if strings.ContainsAny(encoded, "+/=") {
		t.Fatalf("standard alphabet leaked into output: %q", encoded)
	}
	if !strings.ContainsRune(encoded, '-') {
		t.Fatalf("expected '-' substitution in output: %q", encoded)
	}
	if !strings.HasSuffix(encoded, "*") {
		t.Fatalf("expected '*' padding in output: %q", encoded)
	}
}

func TestDecodeRejectsStandardAlphabet(t *testing.T) {
	if _, err := Decode("AA=="); err == nil {
		t.Fatal("expected standard padding to be rejected")
	}
	if _, err := Decode("A+B-"); err == nil {
		t.Fatal("expected '+' to be rejected")
	}
}

func TestEncodeEmptyIsEmpty(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Fatalf("Encode(nil) = %q, want empty string", got)
	}
}

func FuzzBijection(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xFF})
	f.Add([]byte("token"))

	f.Fuzz(func(t *testing.T, data []byte) {
		decoded, err := Decode(Encode(data))
		if err != nil {
			t.Fatalf("Decode error on encoder output: %v", err)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("round trip mismatch: got %x want %x", decoded, data)
		}
	})
}
