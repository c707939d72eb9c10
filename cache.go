package flow

// MeasurementCache stores last-known main-axis measurements for
// variable-dimension virtualized content, keyed by normalized item index
// (conceptual position in the full sequence, so the index of a realized item
// plus the before-virtualized count).
//
// The cache outlives individual layout passes. It grows and shrinks through
// explicit InsertAt/RemoveAt/Reset calls driven by the host's data-source
// changes; InsertAt shifts all later entries up by one and RemoveAt shifts
// them down. Out-of-range reads return an unset Dim rather than an error.
type MeasurementCache struct {
	entries []Dim

	// onChange fires when a Set writes a value that differs from what was
	// cached, since a changed measurement can change total content size
	// without a structural change. It never fires for an unchanged write,
	// which is what keeps relayout-triggered re-entry finite.
	onChange func()
}

// NewMeasurementCache returns an empty cache. onChange may be nil.
func NewMeasurementCache(onChange func()) *MeasurementCache {
	return &MeasurementCache{onChange: onChange}
}

// Len returns the number of slots the cache currently spans.
func (c *MeasurementCache) Len() int {
	return len(c.entries)
}

// Get returns the cached measurement at index, or an unset Dim when the
// index was never measured or is out of range.
func (c *MeasurementCache) Get(index int) Dim {
	if index < 0 || index >= len(c.entries) {
		return Dim{}
	}
	return c.entries[index]
}

// Set records a measurement at index, growing the cache as needed. The
// change callback fires only when the stored value actually changes.
func (c *MeasurementCache) Set(index int, value float32) {
	if index < 0 {
		return
	}
	c.grow(index + 1)
	prev := c.entries[index]
	if prev.ok && prev.px == value {
		return
	}
	c.entries[index] = Px(value)
	debugLog("cache set [%d] = %.1f (was set=%v %.1f)", index, value, prev.ok, prev.px)
	if c.onChange != nil {
		c.onChange()
	}
}

// InsertAt makes room at index, shifting later entries up by one. The new
// slot may carry a known measurement or be unset.
func (c *MeasurementCache) InsertAt(index int, value Dim) {
	if index < 0 {
		return
	}
	c.grow(index)
	c.entries = append(c.entries, Dim{})
	copy(c.entries[index+1:], c.entries[index:])
	c.entries[index] = value
}

// RemoveAt drops the entry at index, shifting later entries down by one.
// Out-of-range indices are ignored.
func (c *MeasurementCache) RemoveAt(index int) {
	if index < 0 || index >= len(c.entries) {
		return
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
}

// Reset discards every cached measurement.
func (c *MeasurementCache) Reset() {
	c.entries = c.entries[:0]
}

func (c *MeasurementCache) grow(n int) {
	for len(c.entries) < n {
		c.entries = append(c.entries, Dim{})
	}
}
