package flow

// HorizontalAlign controls where content sits when it is narrower than the
// viewport, and the anchor used by ScrollPositionForIndex.
type HorizontalAlign uint8

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
)

func (a HorizontalAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "unknown"
}

// VerticalAlign controls how each item is placed on the cross axis of a
// horizontal layout (and, transposed, where content sits in a vertical one).
// AlignJustify stretches items to fill the available cross-axis space.
type VerticalAlign uint8

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
	AlignJustify
)

func (a VerticalAlign) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	case AlignJustify:
		return "justify"
	}
	return "unknown"
}
