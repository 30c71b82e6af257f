package layout

import (
	"strings"

	"github.com/matzehuels/wristscale/pkg/errors"
)

// Mode is a placement policy.
type Mode string

const (
	SideBySide Mode = "side-by-side"
	Touching   Mode = "touching"
	Overlapped Mode = "overlapped"
)

// Modes lists every mode in toggle order.
var Modes = []Mode{SideBySide, Touching, Overlapped}

// ParseMode parses a mode name. The empty string selects [SideBySide].
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return SideBySide, nil
	case SideBySide, Touching, Overlapped:
		return m, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidMode,
			"unknown view mode %q (want side-by-side, touching or overlapped)", s)
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case SideBySide, Touching, Overlapped:
		return true
	}
	return false
}

// Next returns the mode after m in toggle order, wrapping around.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return SideBySide
}

func (m Mode) String() string { return string(m) }
