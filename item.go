package flow

// Item is the minimal capability the layout needs from a visual element: a
// mutable position and size. Identity is by slice index; in virtualized mode
// a nil entry stands for an item that has not been realized yet.
//
// Optional capabilities are discovered by type assertion: Constrained for
// min/max bounds, Excluded to skip an item entirely, and PercentSized for
// percentage-of-available sizing hints. Items lacking a capability are
// treated as fixed-size and unconstrained.
type Item interface {
	Position() (x, y float32)
	SetPosition(x, y float32)
	Size() (width, height float32)
	SetSize(width, height float32)
}

// Constrained reports min/max size bounds for an item. The layout clamps any
// size it assigns (distributed, percent-resolved, or justified) to these.
type Constrained interface {
	MinSize() (width, height float32)
	MaxSize() (width, height float32)
}

// Excluded marks items the layout skips entirely: not positioned, not
// measured, and not counted for gaps.
type Excluded interface {
	ExcludeFromLayout() bool
}

// PercentSized exposes percentage sizing hints attached to an item. A nil
// return means no hints.
type PercentSized interface {
	LayoutData() *ItemLayoutData
}

// ItemLayoutData carries percentage-of-available sizing hints for one item.
// Values are in the range 0-100; unset hints leave the item at its own size.
type ItemLayoutData struct {
	PercentWidth  Dim
	PercentHeight Dim
}

// itemMinMax resolves the min/max constraints for an item, defaulting to
// unconstrained when the capability is absent.
func itemMinMax(item Item) (minW, minH, maxW, maxH float32) {
	maxW, maxH = maxDimension, maxDimension
	if c, ok := item.(Constrained); ok {
		minW, minH = c.MinSize()
		maxW, maxH = c.MaxSize()
		if maxW <= 0 {
			maxW = maxDimension
		}
		if maxH <= 0 {
			maxH = maxDimension
		}
	}
	return minW, minH, maxW, maxH
}

// itemExcluded reports whether an item opted out of layout.
func itemExcluded(item Item) bool {
	if e, ok := item.(Excluded); ok {
		return e.ExcludeFromLayout()
	}
	return false
}

// itemLayoutData returns the percent hints for an item, or nil.
func itemLayoutData(item Item) *ItemLayoutData {
	if p, ok := item.(PercentSized); ok {
		return p.LayoutData()
	}
	return nil
}
