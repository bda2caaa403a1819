package ledger

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// DeviceInfo identifies the device target and its firmware components.
type DeviceInfo struct {
	TargetID   uint32 `json:"target_id"`
	SEVersion  string `json:"se_version"`
	Flags      []byte `json:"flags"`
	MCUVersion string `json:"mcu_version"`
}

func (d *DeviceInfo) String() string {
	return fmt.Sprintf("target 0x%08X se %s mcu %s", d.TargetID, d.SEVersion, d.MCUVersion)
}

// DecodeDeviceInfo parses the bootloader device-info payload: a 4-byte
// target id followed by length-prefixed SE version, flags and MCU version
// fields, in that order.
func DecodeDeviceInfo(payload []byte) (*DeviceInfo, error) {
	if len(payload) < 5 {
		return nil, malformed("device info below minimum length")
	}
	info := &DeviceInfo{TargetID: binary.BigEndian.Uint32(payload[:4])}

	rest := payload[4:]
	seVersion, rest, err := readPrefixed(rest, "se version")
	if err != nil {
		return nil, err
	}
	flags, rest, err := readPrefixed(rest, "flags")
	if err != nil {
		return nil, err
	}
	mcuVersion, _, err := readPrefixed(rest, "mcu version")
	if err != nil {
		return nil, err
	}

	info.SEVersion = string(seVersion)
	info.Flags = flags
	// Some firmware NUL-terminates the MCU version string.
	info.MCUVersion = string(bytes.TrimRight(mcuVersion, "\x00"))
	return info, nil
}

// readPrefixed consumes one length byte and that many value bytes. A
// declared length past the end of the buffer is malformed.
func readPrefixed(buf []byte, field string) ([]byte, []byte, error) {
	if len(buf) < 1 {
		return nil, nil, malformed(field + " length missing")
	}
	n := int(buf[0])
	if len(buf)-1 < n {
		return nil, nil, malformed(field + " length exceeds payload")
	}
	value := make([]byte, n)
	copy(value, buf[1:1+n])
	return value, buf[1+n:], nil
}
