package ledger

import (
	"errors"
	"fmt"

	"github.com/danmuck/ledgerctl/internal/apdu"
)

// ErrMalformed marks a response payload inconsistent with the expected
// record layout. Decode failures wrap it with field context.
var ErrMalformed = errors.New("ledger: malformed response payload")

// StatusError reports a non-success status word from the device. The raw
// value is preserved even when no symbolic name is known for it.
type StatusError struct {
	Status apdu.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ledger: device returned 0x%04X (%s)", uint16(e.Status), e.Status)
}

func malformed(field string) error {
	return fmt.Errorf("%w: %s", ErrMalformed, field)
}
