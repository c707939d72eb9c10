package flow

import "math"

// maxDimension stands in for "unconstrained" in min/max clamps.
const maxDimension = float32(math.MaxFloat32)

// Bounds describes the space a layout pass runs in: an origin, the current
// scroll offsets, explicit viewport dimensions when the host knows them, and
// min/max constraints used to derive the viewport from content otherwise.
type Bounds struct {
	X float32
	Y float32

	ScrollX float32
	ScrollY float32

	// ExplicitWidth/ExplicitHeight are the viewport dimensions when the host
	// has fixed them. Unset means "derive from content, clamped to min/max".
	ExplicitWidth  Dim
	ExplicitHeight Dim

	MinWidth  float32
	MinHeight float32
	MaxWidth  float32
	MaxHeight float32
}

// NewBounds returns unconstrained bounds at the origin.
func NewBounds() Bounds {
	return Bounds{
		MaxWidth:  maxDimension,
		MaxHeight: maxDimension,
	}
}

// Result is the outcome of a layout pass: the measured content dimensions
// and the viewport dimensions (explicit, or derived from content).
type Result struct {
	ContentWidth  float32
	ContentHeight float32

	ViewportWidth  float32
	ViewportHeight float32
}

// Layouter is the surface hosts and the preset package program against.
// Layout positions items in place and reports the resulting dimensions.
type Layouter interface {
	Layout(items []Item, bounds Bounds) Result
}
