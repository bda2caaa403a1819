package apdu

import (
	"strings"
	"testing"
)

func TestStatusNames(t *testing.T) {
	cases := []struct {
		sw   Status
		want string
	}{
		{StatusOK, "ok"},
		{StatusWrongLength, "wrong length"},
		{StatusClaNotSupported, "class not supported"},
		{StatusInsNotSupported, "instruction not supported"},
	}
	for _, tc := range cases {
		if got := tc.sw.String(); got != tc.want {
			t.Fatalf("0x%04X: got %q want %q", uint16(tc.sw), got, tc.want)
		}
	}
}

func TestStatusUnrecognizedKeepsRawValue(t *testing.T) {
	got := Status(0x6A82).String()
	if !strings.Contains(got, "0x6A82") {
		t.Fatalf("unrecognized status must carry its raw value, got %q", got)
	}
}
