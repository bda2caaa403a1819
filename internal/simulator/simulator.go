// Package simulator answers the device side of the wallet wire protocol so
// the tool and its tests can run without hardware or a Speculos install.
package simulator

import (
	"encoding/binary"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/ledgerctl/internal/apdu"
	"github.com/danmuck/ledgerctl/internal/ledger"
	"github.com/danmuck/ledgerctl/internal/observability"
)

const lenPrefixSize = 4

// maxFrameLen rejects absurd command lengths before allocation.
const maxFrameLen = 64 * 1024

// Simulator serves length-prefixed command frames over TCP and answers
// them from a fixed device profile.
type Simulator struct {
	profile Profile

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

func New(profile Profile) *Simulator {
	return &Simulator{profile: profile}
}

// Profile returns the device profile being served.
func (s *Simulator) Profile() Profile {
	return s.profile
}

// Listen binds addr and starts accepting connections in the background.
// Use addr "127.0.0.1:0" in tests and read the bound address back.
func (s *Simulator) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	go s.acceptLoop(ln)
	log.Info().Str("addr", ln.Addr().String()).Msg("simulator listening")
	return nil
}

// Addr returns the bound listen address.
func (s *Simulator) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

func (s *Simulator) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

func (s *Simulator) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if !closed {
				log.Error().Err(err).Msg("simulator accept failed")
			}
			return
		}
		go s.serveConn(conn)
	}
}

func (s *Simulator) serveConn(conn net.Conn) {
	defer conn.Close()
	remote := conn.RemoteAddr().String()
	log.Debug().Str("remote", remote).Msg("simulator connection opened")

	for {
		frame, err := readFrame(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug().Err(err).Str("remote", remote).Msg("simulator connection closed")
			}
			return
		}
		start := time.Now()
		payload, sw := s.handle(frame)
		observability.RecordExchange(uint16(sw), time.Since(start))
		if err := writeReply(conn, payload, sw); err != nil {
			log.Error().Err(err).Str("remote", remote).Msg("simulator write failed")
			return
		}
	}
}

// handle answers one encoded command frame. Unknown classes and
// instructions get their proper status words rather than a generic error.
func (s *Simulator) handle(frame []byte) ([]byte, apdu.Status) {
	cmd, err := apdu.DecodeCommand(frame)
	if err != nil {
		return nil, apdu.StatusWrongLength
	}

	switch cmd.Cla {
	case ledger.ClaDeviceInfo:
		if cmd.Ins != ledger.InsDeviceInfo {
			return nil, apdu.StatusInsNotSupported
		}
		return s.profile.deviceInfoPayload(), apdu.StatusOK
	case ledger.ClaAppInfo:
		switch cmd.Ins {
		case ledger.InsAppInfo:
			return s.profile.appInfoPayload(), apdu.StatusOK
		case ledger.InsGetVersion:
			return s.profile.versionPayload(), apdu.StatusOK
		default:
			return nil, apdu.StatusInsNotSupported
		}
	default:
		return nil, apdu.StatusClaNotSupported
	}
}

func readFrame(conn net.Conn) ([]byte, error) {
	var prefix [lenPrefixSize]byte
	if _, err := io.ReadFull(conn, prefix[:]); err != nil {
		return nil, err
	}
	frameLen := binary.BigEndian.Uint32(prefix[:])
	if frameLen > maxFrameLen {
		return nil, errors.New("simulator: frame too large")
	}
	frame := make([]byte, frameLen)
	if _, err := io.ReadFull(conn, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

// writeReply emits the length prefix over the payload only; the status
// word always follows uncounted, matching the simulator wire contract.
func writeReply(conn net.Conn, payload []byte, sw apdu.Status) error {
	out := make([]byte, lenPrefixSize+len(payload)+2)
	binary.BigEndian.PutUint32(out[:lenPrefixSize], uint32(len(payload)))
	copy(out[lenPrefixSize:], payload)
	binary.BigEndian.PutUint16(out[lenPrefixSize+len(payload):], uint16(sw))
	_, err := conn.Write(out)
	return err
}
