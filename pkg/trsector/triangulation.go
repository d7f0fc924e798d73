package trsector

import "golang.org/x/exp/constraints"

// TriangulationDirection is the diagonal a triangulated sector is split along.
type TriangulationDirection int

const (
	TriangulationNone TriangulationDirection = iota
	TriangulationNwSe
	TriangulationNeSw
)

func (d TriangulationDirection) String() string {
	switch d {
	case TriangulationNwSe:
		return "NW-SE"
	case TriangulationNeSw:
		return "NE-SW"
	}

	return "None"
}

// Triangulation is a decoded triangulation command. The corner values are
// the amount each corner sits below the highest one, in blocks.
type Triangulation struct {
	Function  Function
	Direction TriangulationDirection
	C00       float32
	C01       float32
	C10       float32
	C11       float32
}

// ParseTriangulation decodes a triangulation command word and its corner
// word.
func ParseTriangulation(floor, data uint16) Triangulation {
	// Bits 5-14 hold two further height values whose meaning is unknown;
	// they are left alone.
	function := Function(floor & 0x1F)

	direction := TriangulationNone
	switch function {
	case 0x07, 0x0B, 0x0C, 0x09, 0x0F, 0x10:
		direction = TriangulationNwSe
	case 0x08, 0x0D, 0x0E, 0x0A, 0x11, 0x12:
		direction = TriangulationNeSw
	}

	c00 := (data >> 4) & 0xF
	c01 := (data >> 8) & 0xF
	c10 := data & 0xF
	c11 := (data >> 12) & 0xF
	highest := maxOf(c00, c01, c10, c11)

	delta := func(c uint16) float32 {
		return float32(highest-c) * 0.25
	}

	return Triangulation{
		Function:  function,
		Direction: direction,
		C00:       delta(c00),
		C01:       delta(c01),
		C10:       delta(c10),
		C11:       delta(c11),
	}
}

func maxOf[T constraints.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v > m {
			m = v
		}
	}

	return m
}

func minOf[T constraints.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v < m {
			m = v
		}
	}

	return m
}
