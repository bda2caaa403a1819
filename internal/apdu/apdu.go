package apdu

import (
	"encoding/binary"
	"errors"
)

// MaxDataLen is the largest data payload a single command frame can carry;
// the wire format has a one-byte length field.
const MaxDataLen = 255

// headerLen covers cla, ins, p1, p2 and the data length byte.
const headerLen = 5

var (
	ErrDataTooLarge      = errors.New("apdu: command data exceeds 255 bytes")
	ErrTruncatedResponse = errors.New("apdu: response shorter than status word")
	ErrMalformedCommand  = errors.New("apdu: malformed command frame")
)

// Command is one unencoded command frame. P1 and P2 are fixed at zero for
// every command this tool issues but remain addressable for completeness.
type Command struct {
	Cla  byte
	Ins  byte
	P1   byte
	P2   byte
	Data []byte
}

// NewCommand builds a data-less command frame.
func NewCommand(cla, ins byte) Command {
	return Command{Cla: cla, Ins: ins}
}

// Encode serializes the command into its wire form:
// [cla, ins, p1, p2, len, data...].
func (c Command) Encode() ([]byte, error) {
	if len(c.Data) > MaxDataLen {
		return nil, ErrDataTooLarge
	}
	buf := make([]byte, headerLen+len(c.Data))
	buf[0] = c.Cla
	buf[1] = c.Ins
	buf[2] = c.P1
	buf[3] = c.P2
	buf[4] = byte(len(c.Data))
	copy(buf[headerLen:], c.Data)
	return buf, nil
}

// DecodeCommand parses an encoded command frame back into its parts. The
// declared length byte must match the trailing data exactly.
func DecodeCommand(raw []byte) (Command, error) {
	if len(raw) < headerLen {
		return Command{}, ErrMalformedCommand
	}
	dataLen := int(raw[4])
	if len(raw) != headerLen+dataLen {
		return Command{}, ErrMalformedCommand
	}
	cmd := Command{Cla: raw[0], Ins: raw[1], P1: raw[2], P2: raw[3]}
	if dataLen > 0 {
		cmd.Data = make([]byte, dataLen)
		copy(cmd.Data, raw[headerLen:])
	}
	return cmd, nil
}

// ParseResponse splits a raw device reply into payload bytes and the
// trailing big-endian status word. Replies shorter than the two status
// bytes are rejected before any status interpretation.
func ParseResponse(raw []byte) ([]byte, Status, error) {
	if len(raw) < 2 {
		return nil, 0, ErrTruncatedResponse
	}
	split := len(raw) - 2
	sw := Status(binary.BigEndian.Uint16(raw[split:]))
	payload := make([]byte, split)
	copy(payload, raw[:split])
	return payload, sw, nil
}
