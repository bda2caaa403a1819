package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/danmuck/ledgerctl/internal/ledger"
	"github.com/danmuck/ledgerctl/internal/transport"
)

var (
	tcpHost      string
	tcpPort      int
	tcpTimeoutMS int

	appVersionCla string
)

var tcpCmd = &cobra.Command{
	Use:   "tcp",
	Short: "Talk to a Speculos simulator over TCP",
}

var deviceInfoCmd = &cobra.Command{
	Use:   "device-info",
	Short: "Fetch device info",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExchange(cmd.Context(), func(ctx context.Context, client *ledger.Client) (ledger.Record, error) {
			return client.DeviceInfo(ctx)
		})
	},
}

var appInfoCmd = &cobra.Command{
	Use:   "app-info",
	Short: "Fetch application info",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExchange(cmd.Context(), func(ctx context.Context, client *ledger.Client) (ledger.Record, error) {
			return client.AppInfo(ctx)
		})
	},
}

var appVersionCmd = &cobra.Command{
	Use:   "app-version",
	Short: "Fetch application version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cla, err := parseCla(appVersionCla)
		if err != nil {
			return err
		}
		return runExchange(cmd.Context(), func(ctx context.Context, client *ledger.Client) (ledger.Record, error) {
			return client.AppVersion(ctx, cla)
		})
	},
}

// runExchange dials the configured transport, runs one command and prints
// the decoded record through the active formatter.
func runExchange(ctx context.Context, fn func(context.Context, *ledger.Client) (ledger.Record, error)) error {
	tr, err := transport.Open(ctx, transport.KindTCP, tcpOptions())
	if err != nil {
		return err
	}
	defer tr.Close()

	rec, err := fn(ctx, ledger.NewClient(tr))
	if err != nil {
		return err
	}
	fmt.Print(formatter.Format(rec))
	return nil
}

func tcpOptions() transport.TCPOptions {
	opts := cfg.TCPOptions()
	if tcpHost != "" {
		opts.Host = tcpHost
	}
	if tcpPort != 0 {
		opts.Port = tcpPort
	}
	if tcpTimeoutMS != 0 {
		opts.Timeout = time.Duration(tcpTimeoutMS) * time.Millisecond
	}
	return opts
}

// parseCla accepts decimal and 0x-prefixed class bytes.
func parseCla(raw string) (byte, error) {
	v, err := strconv.ParseUint(raw, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid cla %q: %w", raw, err)
	}
	return byte(v), nil
}

func init() {
	tcpCmd.PersistentFlags().StringVar(&tcpHost, "host", "", "simulator host")
	tcpCmd.PersistentFlags().IntVar(&tcpPort, "port", 0, "simulator port")
	tcpCmd.PersistentFlags().IntVar(&tcpTimeoutMS, "timeout-ms", 0, "dial timeout in milliseconds")

	appVersionCmd.Flags().StringVar(&appVersionCla, "cla", "0xB0", "application instruction class byte")

	tcpCmd.AddCommand(deviceInfoCmd, appInfoCmd, appVersionCmd)
	rootCmd.AddCommand(tcpCmd)
}
