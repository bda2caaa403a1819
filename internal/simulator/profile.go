package simulator

import "encoding/binary"

// Profile is the canned device a simulator answers for.
type Profile struct {
	TargetID   uint32 `json:"target_id" toml:"target_id"`
	SEVersion  string `json:"se_version" toml:"se_version"`
	MCUVersion string `json:"mcu_version" toml:"mcu_version"`
	Flags      []byte `json:"flags" toml:"flags"`

	AppName    string `json:"app_name" toml:"app_name"`
	AppVersion string `json:"app_version" toml:"app_version"`
	AppFlags   byte   `json:"app_flags" toml:"app_flags"`

	Major uint8 `json:"major" toml:"major"`
	Minor uint8 `json:"minor" toml:"minor"`
	Patch uint8 `json:"patch" toml:"patch"`
}

// DefaultProfile resembles a Nano S bootloader with a BOLOS dashboard app.
func DefaultProfile() Profile {
	return Profile{
		TargetID:   0x31100004,
		SEVersion:  "2.1.0",
		MCUVersion: "1.12",
		Flags:      []byte{0x00},
		AppName:    "BOLOS",
		AppVersion: "1.0.0",
		AppFlags:   0x04,
		Major:      1,
		Minor:      0,
		Patch:      0,
	}
}

func (p Profile) deviceInfoPayload() []byte {
	buf := make([]byte, 4, 16)
	binary.BigEndian.PutUint32(buf, p.TargetID)
	buf = appendPrefixed(buf, []byte(p.SEVersion))
	buf = appendPrefixed(buf, p.Flags)
	buf = appendPrefixed(buf, []byte(p.MCUVersion))
	return buf
}

func (p Profile) appInfoPayload() []byte {
	buf := []byte{0x01}
	buf = appendPrefixed(buf, []byte(p.AppName))
	buf = appendPrefixed(buf, []byte(p.AppVersion))
	buf = appendPrefixed(buf, []byte{p.AppFlags})
	return buf
}

func (p Profile) versionPayload() []byte {
	return []byte{p.Major, p.Minor, p.Patch, p.AppFlags}
}

func appendPrefixed(buf, value []byte) []byte {
	buf = append(buf, byte(len(value)))
	return append(buf, value...)
}
