package flow

// Dim is an optional pixel dimension. The zero value is "unset", which the
// layout treats as "measure it" rather than zero pixels. Hosts that track
// dimensions with NaN sentinels should convert at the boundary.
type Dim struct {
	px float32
	ok bool
}

// Px returns a set dimension of v pixels.
func Px(v float32) Dim {
	return Dim{px: v, ok: true}
}

// IsSet reports whether the dimension carries a value.
func (d Dim) IsSet() bool {
	return d.ok
}

// Get returns the pixel value and whether it is set.
func (d Dim) Get() (float32, bool) {
	return d.px, d.ok
}

// Or returns the pixel value, or def when unset.
func (d Dim) Or(def float32) float32 {
	if d.ok {
		return d.px
	}
	return def
}
