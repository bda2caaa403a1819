package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/ledgerctl/internal/transport"
)

// USB HID, BLE and Zemu are declared so the command surface matches the
// transport kinds the device family supports, but only TCP is implemented.
// They fail loudly instead of falling through to another link.

func unsupportedTransportCmd(use, short string, kind transport.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%w: %s", transport.ErrUnsupported, kind)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		unsupportedTransportCmd("hid", "Talk to a device over USB HID (not yet implemented)", transport.KindHID),
		unsupportedTransportCmd("ble", "Talk to a device over Bluetooth LE (not yet implemented)", transport.KindBLE),
		unsupportedTransportCmd("zemu", "Talk to a Zemu simulator (not yet implemented)", transport.KindZemu),
	)
}
