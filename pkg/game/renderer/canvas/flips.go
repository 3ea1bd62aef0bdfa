package canvas

import (
	"fmt"

	"thornvale/pkg/engine/tilemap"
)

// Transform is one flip applied to a drawn tile.
type Transform int

const (
	Horizontal Transform = iota
	Vertical
	Diagonal
)

// String returns a short name for the transform.
func (t Transform) String() string {
	switch t {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	case Diagonal:
		return "d"
	default:
		return fmt.Sprintf("Transform(%d)", int(t))
	}
}

// GetFlipped returns the ordered transform list for a map tile record.
// Diagonal comes first: a diagonal flip rotates the drawing context, so any
// axis flips that follow operate on the rotated axes.
func GetFlipped(t tilemap.Tile) []Transform {
	var flips []Transform
	if t.D {
		flips = append(flips, Diagonal)
	}
	if t.H {
		flips = append(flips, Horizontal)
	}
	if t.V {
		flips = append(flips, Vertical)
	}
	return flips
}

// expandFlips builds the effective transform sequence from a read-only
// input. A diagonal flip rotates the context 90 degrees, which swaps what
// the caller meant by horizontal and vertical, so each Diagonal appends a
// compensating flip: Horizontal when the next transform in the sequence is
// Horizontal, Vertical otherwise. Appended compensations are re-examined in
// turn, but only Diagonal appends and a compensation is never Diagonal, so
// the loop terminates.
func expandFlips(flips []Transform) []Transform {
	if len(flips) == 0 {
		return nil
	}
	out := append([]Transform(nil), flips...)
	for i := 0; i < len(out); i++ {
		if out[i] != Diagonal {
			continue
		}
		comp := Vertical
		if i+1 < len(out) && out[i+1] == Horizontal {
			comp = Horizontal
		}
		out = append(out, comp)
	}
	return out
}
