package transport_test

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/danmuck/ledgerctl/internal/ledger"
	"github.com/danmuck/ledgerctl/internal/simulator"
	"github.com/danmuck/ledgerctl/internal/testutil/testlog"
	"github.com/danmuck/ledgerctl/internal/transport"
)

func startSimulator(t *testing.T) (*simulator.Simulator, transport.TCPOptions) {
	t.Helper()
	sim := simulator.New(simulator.DefaultProfile())
	if err := sim.Listen("127.0.0.1:0"); err != nil {
		t.Fatalf("simulator listen: %v", err)
	}
	t.Cleanup(func() { sim.Close() })

	host, portStr, err := net.SplitHostPort(sim.Addr().String())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port: %v", err)
	}
	return sim, transport.TCPOptions{Host: host, Port: port, Timeout: 2 * time.Second}
}

func TestExchangeAgainstSimulator(t *testing.T) {
	testlog.Start(t)
	_, opts := startSimulator(t)

	tr, err := transport.DialTCP(context.Background(), opts)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer tr.Close()

	client := ledger.NewClient(tr)

	info, err := client.DeviceInfo(context.Background())
	if err != nil {
		t.Fatalf("device info: %v", err)
	}
	if info.SEVersion != "2.1.0" || info.MCUVersion != "1.12" {
		t.Fatalf("device info mismatch: %+v", info)
	}

	app, err := client.AppInfo(context.Background())
	if err != nil {
		t.Fatalf("app info: %v", err)
	}
	if app.Name != "BOLOS" {
		t.Fatalf("app info mismatch: %+v", app)
	}

	v, err := client.AppVersion(context.Background(), ledger.ClaAppInfo)
	if err != nil {
		t.Fatalf("app version: %v", err)
	}
	if v.Major != 1 || v.Minor != 0 || v.Patch != 0 {
		t.Fatalf("app version mismatch: %+v", v)
	}
}

func TestExchangeUnknownClaSurfacesStatus(t *testing.T) {
	testlog.Start(t)
	_, opts := startSimulator(t)

	tr, err := transport.DialTCP(context.Background(), opts)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer tr.Close()

	_, err = ledger.NewClient(tr).AppVersion(context.Background(), 0x42)
	var statusErr *ledger.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if uint16(statusErr.Status) != 0x6E00 {
		t.Fatalf("status mismatch: got 0x%04X", uint16(statusErr.Status))
	}
}

func TestExchangeCancelledContext(t *testing.T) {
	testlog.Start(t)
	_, opts := startSimulator(t)

	tr, err := transport.DialTCP(context.Background(), opts)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer tr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := tr.Exchange(ctx, []byte{0xE0, 0x01, 0x00, 0x00, 0x00}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOpenUnsupportedKinds(t *testing.T) {
	for _, kind := range []transport.Kind{transport.KindHID, transport.KindBLE, transport.KindZemu, transport.Kind("serial")} {
		_, err := transport.Open(context.Background(), kind, transport.TCPOptions{})
		if !errors.Is(err, transport.ErrUnsupported) {
			t.Fatalf("kind=%s: expected ErrUnsupported, got %v", kind, err)
		}
	}
}
