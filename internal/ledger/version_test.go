package ledger

import (
	"errors"
	"testing"
)

func TestDecodeVersion(t *testing.T) {
	v, err := DecodeVersion([]byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 || v.Flags != 0 {
		t.Fatalf("version mismatch: %+v", v)
	}
	if v.String() != "1.2.3" {
		t.Fatalf("string mismatch: %q", v.String())
	}
}

func TestDecodeVersionWithFlags(t *testing.T) {
	v, err := DecodeVersion([]byte{0x02, 0x00, 0x09, 0x01})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Flags != 0x01 {
		t.Fatalf("flags mismatch: 0x%02X", v.Flags)
	}
}

func TestDecodeVersionTooShort(t *testing.T) {
	for _, payload := range [][]byte{nil, {}, {0x01}, {0x01, 0x02}} {
		if _, err := DecodeVersion(payload); !errors.Is(err, ErrMalformed) {
			t.Fatalf("payload=%X: expected ErrMalformed, got %v", payload, err)
		}
	}
}
