// Package transport carries encoded command frames to a device and returns
// its raw replies. The exchange contract is the only thing the protocol
// layer sees; everything link-specific stays behind it.
package transport

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnsupported = errors.New("transport: kind not supported")

// Transport performs one frame exchange with the device. Implementations
// own serialization of the underlying link: callers may invoke Exchange
// from multiple goroutines, but at most one exchange is in flight per
// connection.
type Transport interface {
	Exchange(ctx context.Context, frame []byte) ([]byte, error)
	Close() error
}

// Kind names a concrete link to the device.
type Kind string

const (
	KindTCP  Kind = "tcp"
	KindHID  Kind = "hid"
	KindBLE  Kind = "ble"
	KindZemu Kind = "zemu"
)

// Open connects the requested transport kind. Kinds without an
// implementation fail loudly instead of defaulting to another link.
func Open(ctx context.Context, kind Kind, opts TCPOptions) (Transport, error) {
	switch kind {
	case KindTCP:
		return DialTCP(ctx, opts)
	case KindHID, KindBLE, KindZemu:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, kind)
	}
}
