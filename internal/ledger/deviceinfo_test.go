package ledger

import (
	"bytes"
	"errors"
	"testing"
)

func deviceInfoPayload() []byte {
	buf := []byte{0x31, 0x10, 0x00, 0x04}
	buf = append(buf, 0x05)
	buf = append(buf, []byte("2.1.0")...)
	buf = append(buf, 0x01, 0x00)
	buf = append(buf, 0x05)
	buf = append(buf, []byte("1.12\x00")...)
	return buf
}

func TestDecodeDeviceInfo(t *testing.T) {
	info, err := DecodeDeviceInfo(deviceInfoPayload())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.TargetID != 0x31100004 {
		t.Fatalf("target id mismatch: 0x%08X", info.TargetID)
	}
	if info.SEVersion != "2.1.0" {
		t.Fatalf("se version mismatch: %q", info.SEVersion)
	}
	if !bytes.Equal(info.Flags, []byte{0x00}) {
		t.Fatalf("flags mismatch: %X", info.Flags)
	}
	if info.MCUVersion != "1.12" {
		t.Fatalf("mcu version should drop the trailing NUL: %q", info.MCUVersion)
	}
}

func TestDecodeDeviceInfoMalformed(t *testing.T) {
	full := deviceInfoPayload()
	cases := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"below minimum", full[:4]},
		{"se version cut", full[:7]},
		{"flags length missing", full[:10]},
		{"mcu version cut short", full[:len(full)-1]},
		{"declared length past end", append(append([]byte{}, full[:4]...), 0xFF)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeDeviceInfo(tc.payload); !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

// Every truncation of a valid payload must fail cleanly, never panic.
func TestDecodeDeviceInfoAllTruncations(t *testing.T) {
	full := deviceInfoPayload()
	for n := 0; n < len(full); n++ {
		if _, err := DecodeDeviceInfo(full[:n]); !errors.Is(err, ErrMalformed) {
			t.Fatalf("len=%d: expected ErrMalformed, got %v", n, err)
		}
	}
}
