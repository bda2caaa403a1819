package ledger

import (
	"errors"
	"testing"
)

func appInfoPayload() []byte {
	buf := []byte{0x01}
	buf = append(buf, 0x05)
	buf = append(buf, []byte("BOLOS")...)
	buf = append(buf, 0x05)
	buf = append(buf, []byte("1.0.0")...)
	buf = append(buf, 0x01, 0x84)
	return buf
}

func TestDecodeAppInfo(t *testing.T) {
	info, err := DecodeAppInfo(appInfoPayload())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Name != "BOLOS" || info.Version != "1.0.0" {
		t.Fatalf("record mismatch: %+v", info)
	}
	if !info.Flags.Onboarded() || !info.Flags.PINValidated() {
		t.Fatalf("flag bits mismatch: 0x%02X", byte(info.Flags))
	}
	if info.Flags.Recovery() || info.Flags.SignedMCU() {
		t.Fatalf("unexpected flag bits set: 0x%02X", byte(info.Flags))
	}
}

func TestDecodeAppInfoUnknownFormat(t *testing.T) {
	payload := appInfoPayload()
	payload[0] = 0x02
	if _, err := DecodeAppInfo(payload); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDecodeAppInfoAllTruncations(t *testing.T) {
	full := appInfoPayload()
	for n := 0; n < len(full); n++ {
		if _, err := DecodeAppInfo(full[:n]); !errors.Is(err, ErrMalformed) {
			t.Fatalf("len=%d: expected ErrMalformed, got %v", n, err)
		}
	}
}

func TestDecodeAppInfoNameLengthPastEnd(t *testing.T) {
	payload := []byte{0x01, 0xFF, 'B'}
	if _, err := DecodeAppInfo(payload); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
