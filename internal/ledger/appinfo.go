package ledger

import "fmt"

// appInfoFormat is the only payload format revision this decoder accepts.
const appInfoFormat = 1

// AppFlags is the first byte of the app-info flags block.
type AppFlags byte

const (
	FlagRecovery     AppFlags = 0x01
	FlagSignedMCU    AppFlags = 0x02
	FlagOnboarded    AppFlags = 0x04
	FlagPINValidated AppFlags = 0x80
)

func (f AppFlags) Recovery() bool     { return f&FlagRecovery != 0 }
func (f AppFlags) SignedMCU() bool    { return f&FlagSignedMCU != 0 }
func (f AppFlags) Onboarded() bool    { return f&FlagOnboarded != 0 }
func (f AppFlags) PINValidated() bool { return f&FlagPINValidated != 0 }

// AppInfo describes the application currently running on the device.
type AppInfo struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Flags   AppFlags `json:"flags"`
}

func (a *AppInfo) String() string {
	return fmt.Sprintf("%s %s (flags 0x%02X)", a.Name, a.Version, byte(a.Flags))
}

// DecodeAppInfo parses the app-info payload: one format byte, then
// length-prefixed name, version string and flags block in fixed order.
func DecodeAppInfo(payload []byte) (*AppInfo, error) {
	if len(payload) < 1 {
		return nil, malformed("app info below minimum length")
	}
	if payload[0] != appInfoFormat {
		return nil, malformed(fmt.Sprintf("unknown app info format %d", payload[0]))
	}

	rest := payload[1:]
	name, rest, err := readPrefixed(rest, "app name")
	if err != nil {
		return nil, err
	}
	version, rest, err := readPrefixed(rest, "app version")
	if err != nil {
		return nil, err
	}
	flags, _, err := readPrefixed(rest, "app flags")
	if err != nil {
		return nil, err
	}

	info := &AppInfo{Name: string(name), Version: string(version)}
	if len(flags) > 0 {
		info.Flags = AppFlags(flags[0])
	}
	return info, nil
}
