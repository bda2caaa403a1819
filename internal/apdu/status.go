package apdu

import "fmt"

// Status is the two-byte word trailing every device response. The value
// space is open ended: firmware revisions introduce codes freely, so
// anything outside the named set is carried through with its raw value.
type Status uint16

const (
	StatusOK                     Status = 0x9000
	StatusExecutionError         Status = 0x6400
	StatusWrongLength            Status = 0x6700
	StatusEmptyBuffer            Status = 0x6982
	StatusOutputBufferTooSmall   Status = 0x6983
	StatusDataInvalid            Status = 0x6984
	StatusConditionsNotSatisfied Status = 0x6985
	StatusCommandNotAllowed      Status = 0x6986
	StatusBadKeyHandle           Status = 0x6A80
	StatusInvalidP1P2            Status = 0x6B00
	StatusInsNotSupported        Status = 0x6D00
	StatusClaNotSupported        Status = 0x6E00
	StatusUnknown                Status = 0x6F00
)

// OK reports whether the status word is the device success code.
func (s Status) OK() bool {
	return s == StatusOK
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusExecutionError:
		return "execution error"
	case StatusWrongLength:
		return "wrong length"
	case StatusEmptyBuffer:
		return "empty buffer"
	case StatusOutputBufferTooSmall:
		return "output buffer too small"
	case StatusDataInvalid:
		return "data invalid"
	case StatusConditionsNotSatisfied:
		return "conditions not satisfied"
	case StatusCommandNotAllowed:
		return "command not allowed"
	case StatusBadKeyHandle:
		return "bad key handle"
	case StatusInvalidP1P2:
		return "invalid p1/p2"
	case StatusInsNotSupported:
		return "instruction not supported"
	case StatusClaNotSupported:
		return "class not supported"
	case StatusUnknown:
		return "unknown error"
	default:
		return fmt.Sprintf("unrecognized status 0x%04X", uint16(s))
	}
}
