package transport

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Speculos prefixes both directions with a 4-byte big-endian length. The
// reply length covers payload bytes only; the two status bytes always
// follow uncounted.
const lenPrefixSize = 4

var ErrReplyTooLarge = errors.New("transport: reply length exceeds limit")

// MaxReplyLen bounds a single reply so a misbehaving simulator cannot make
// us allocate arbitrarily.
const MaxReplyLen = 64 * 1024

// TCPOptions configures the connection to a Speculos-style simulator.
type TCPOptions struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// DefaultTCPOptions matches a locally running Speculos instance.
func DefaultTCPOptions() TCPOptions {
	return TCPOptions{Host: "127.0.0.1", Port: 1237, Timeout: 5 * time.Second}
}

// TCP exchanges frames with a simulator over a single TCP connection.
type TCP struct {
	mu   sync.Mutex
	conn net.Conn
}

// DialTCP connects to the simulator described by opts.
func DialTCP(ctx context.Context, opts TCPOptions) (*TCP, error) {
	addr := net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
	dialer := net.Dialer{Timeout: opts.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", addr, err)
	}
	log.Debug().Str("addr", addr).Msg("tcp transport connected")
	return &TCP{conn: conn}, nil
}

// Exchange writes one length-prefixed frame and reads one length-prefixed
// reply. The connection is serialized so overlapping calls cannot
// interleave frames on the wire.
func (t *TCP) Exchange(ctx context.Context, frame []byte) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("transport: exchange aborted: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := t.conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("transport: set deadline: %w", err)
		}
		defer t.conn.SetDeadline(time.Time{})
	}

	log.Debug().Hex("frame", frame).Msg("tcp exchange request")

	out := make([]byte, lenPrefixSize+len(frame))
	binary.BigEndian.PutUint32(out[:lenPrefixSize], uint32(len(frame)))
	copy(out[lenPrefixSize:], frame)
	if _, err := t.conn.Write(out); err != nil {
		return nil, fmt.Errorf("transport: write frame: %w", err)
	}

	var prefix [lenPrefixSize]byte
	if _, err := io.ReadFull(t.conn, prefix[:]); err != nil {
		return nil, fmt.Errorf("transport: read reply length: %w", err)
	}
	payloadLen := binary.BigEndian.Uint32(prefix[:])
	if payloadLen > MaxReplyLen {
		return nil, ErrReplyTooLarge
	}

	reply := make([]byte, int(payloadLen)+2)
	if _, err := io.ReadFull(t.conn, reply); err != nil {
		return nil, fmt.Errorf("transport: read reply: %w", err)
	}

	log.Debug().Hex("reply", reply).Msg("tcp exchange reply")
	return reply, nil
}

func (t *TCP) Close() error {
	return t.conn.Close()
}
