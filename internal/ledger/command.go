package ledger

import (
	"errors"
	"fmt"

	"github.com/danmuck/ledgerctl/internal/apdu"
)

// Instruction constants for the device family. Device info lives under the
// bootloader class; app info and get-version are answered by the running
// application.
const (
	ClaDeviceInfo byte = 0xE0
	InsDeviceInfo byte = 0x01
	ClaAppInfo    byte = 0xB0
	InsAppInfo    byte = 0x01
	InsGetVersion byte = 0x00
)

var ErrUnsupportedCommand = errors.New("ledger: unsupported command")

// Command is one logical request to the device. The set is closed: each
// variant maps to exactly one command frame and one response decoder, both
// resolved by exhaustive switches in the client.
type Command interface {
	command()
}

// DeviceInfoCommand requests bootloader-level target identification.
type DeviceInfoCommand struct{}

// AppInfoCommand requests name, version and flags of the running app.
type AppInfoCommand struct{}

// AppVersionCommand requests the compact version triple from the app
// registered under Cla.
type AppVersionCommand struct {
	Cla byte
}

func (DeviceInfoCommand) command() {}
func (AppInfoCommand) command()    {}
func (AppVersionCommand) command() {}

// buildFrame maps a logical command onto its unencoded frame. Unknown
// variants are a hard error, never a silent default.
func buildFrame(cmd Command) (apdu.Command, error) {
	switch c := cmd.(type) {
	case DeviceInfoCommand:
		return apdu.NewCommand(ClaDeviceInfo, InsDeviceInfo), nil
	case AppInfoCommand:
		return apdu.NewCommand(ClaAppInfo, InsAppInfo), nil
	case AppVersionCommand:
		return apdu.NewCommand(c.Cla, InsGetVersion), nil
	default:
		return apdu.Command{}, fmt.Errorf("%w: %T", ErrUnsupportedCommand, cmd)
	}
}

// decodeRecord dispatches validated payload bytes to the decoder matching
// the command that produced them.
func decodeRecord(cmd Command, payload []byte) (Record, error) {
	switch cmd.(type) {
	case DeviceInfoCommand:
		return DecodeDeviceInfo(payload)
	case AppInfoCommand:
		return DecodeAppInfo(payload)
	case AppVersionCommand:
		return DecodeVersion(payload)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCommand, cmd)
	}
}
