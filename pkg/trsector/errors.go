package trsector

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrOutOfBounds is matched by every DecodeError of kind OutOfBounds.
var ErrOutOfBounds = errors.New("floordata index out of bounds")

// DecodeErrorKind classifies a floordata decode failure.
type DecodeErrorKind int

const (
	OutOfBounds DecodeErrorKind = iota
)

// DecodeError is returned when the floordata walk cannot complete.
type DecodeError struct {
	Kind   DecodeErrorKind
	Index  uint32
	Length int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("floordata index %d out of bounds (length %d)", e.Index, e.Length)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrOutOfBounds && e.Kind == OutOfBounds
}

// SectorDecodeError records a sector whose floordata was only partially decoded.
type SectorDecodeError struct {
	Room   uint32
	Sector int
	Err    error
}

func (e SectorDecodeError) Error() string {
	return fmt.Sprintf("room %d sector %d: %v", e.Room, e.Sector, e.Err)
}

func (e SectorDecodeError) Unwrap() error {
	return e.Err
}

// DecodeErrors is returned by NewLevel next to a usable level when some
// sectors could not be fully decoded.
type DecodeErrors struct {
	Sectors []SectorDecodeError
}

func (d DecodeErrors) Error() string {
	msgs := make([]string, len(d.Sectors))
	for i, s := range d.Sectors {
		msgs[i] = s.Error()
	}

	return fmt.Sprintf("%d sectors partially decoded: (%s)", len(d.Sectors), strings.Join(msgs, "; "))
}
