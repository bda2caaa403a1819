// Package ledger implements the command/response protocol spoken with a
// hardware wallet: logical commands, their frame shapes, status validation
// and the typed decoders for the replies.
package ledger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/ledgerctl/internal/apdu"
	"github.com/danmuck/ledgerctl/internal/transport"
)

// Client runs logical commands against one transport. It keeps no state
// between calls; each call is a single build, send, validate, decode pass
// with no retries.
type Client struct {
	tr transport.Transport
}

func NewClient(tr transport.Transport) *Client {
	return &Client{tr: tr}
}

// Do executes one logical command and returns its typed record. Every
// failure is terminal for the call: encoding, transport, a non-success
// status word, or a payload the matching decoder rejects.
func (c *Client) Do(ctx context.Context, cmd Command) (Record, error) {
	frame, err := buildFrame(cmd)
	if err != nil {
		return nil, err
	}
	encoded, err := frame.Encode()
	if err != nil {
		return nil, fmt.Errorf("ledger: encode command: %w", err)
	}

	raw, err := c.tr.Exchange(ctx, encoded)
	if err != nil {
		return nil, fmt.Errorf("ledger: exchange: %w", err)
	}

	payload, sw, err := apdu.ParseResponse(raw)
	if err != nil {
		return nil, err
	}
	if !sw.OK() {
		return nil, &StatusError{Status: sw}
	}

	log.Debug().Hex("payload", payload).Msg("response payload")
	return decodeRecord(cmd, payload)
}

// DeviceInfo fetches bootloader-level device identification.
func (c *Client) DeviceInfo(ctx context.Context) (*DeviceInfo, error) {
	rec, err := c.Do(ctx, DeviceInfoCommand{})
	if err != nil {
		return nil, err
	}
	return rec.(*DeviceInfo), nil
}

// AppInfo fetches name, version and flags of the running application.
func (c *Client) AppInfo(ctx context.Context) (*AppInfo, error) {
	rec, err := c.Do(ctx, AppInfoCommand{})
	if err != nil {
		return nil, err
	}
	return rec.(*AppInfo), nil
}

// AppVersion fetches the version triple from the app class cla.
func (c *Client) AppVersion(ctx context.Context, cla byte) (*Version, error) {
	rec, err := c.Do(ctx, AppVersionCommand{Cla: cla})
	if err != nil {
		return nil, err
	}
	return rec.(*Version), nil
}
