package ledger

import "fmt"

// Version is the compact version triple reported by an application's
// get-version instruction, with an optional trailing flags byte.
type Version struct {
	Major uint8 `json:"major"`
	Minor uint8 `json:"minor"`
	Patch uint8 `json:"patch"`
	Flags uint8 `json:"flags,omitempty"`
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// DecodeVersion parses the get-version payload. Three bytes are required;
// a fourth, when present, carries app-defined flags.
func DecodeVersion(payload []byte) (*Version, error) {
	if len(payload) < 3 {
		return nil, malformed("version below minimum length")
	}
	v := &Version{Major: payload[0], Minor: payload[1], Patch: payload[2]}
	if len(payload) > 3 {
		v.Flags = payload[3]
	}
	return v, nil
}
