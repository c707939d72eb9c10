package flow

import (
	"fmt"

	"github.com/agiangrant/flow/internal/fmath"
)

// VisibleIndicesAtScrollPosition returns the ordered conceptual indices a
// host should realize for the given scroll offset and viewport size. Only
// meaningful with virtualization enabled; calling it otherwise returns
// ErrVirtualizationDisabled.
//
// The answer is deliberately non-minimal: the variable-width path widens the
// overlap range toward the typical visible count so recycling pools stay
// stable, and the uniform path keeps a full-size window anchored at the last
// index when scrolled near the end.
func (l *HorizontalLayout) VisibleIndicesAtScrollPosition(scrollX, scrollY, viewportWidth, viewportHeight float32, itemCount int) ([]int, error) {
	if !l.UseVirtualLayout {
		return nil, fmt.Errorf("visible indices: %w", ErrVirtualizationDisabled)
	}
	if itemCount <= 0 {
		return nil, nil
	}

	typicalWidth, _ := l.typicalSize()
	if l.HasVariableItemDimensions {
		return l.visibleIndicesVariable(scrollX, viewportWidth, typicalWidth, itemCount), nil
	}
	return l.visibleIndicesUniform(scrollX, viewportWidth, typicalWidth, itemCount), nil
}

// visibleIndicesUniform is the fixed-tile fast path: pure arithmetic, no
// item access. The window is visibleCount indices wide (one extra when the
// scroll offset cuts through a tile), and when the window would run past
// the last item it is re-anchored backward from the end so the host keeps
// a stable-sized pool instead of churning items near the edge.
func (l *HorizontalLayout) visibleIndicesUniform(scrollX, viewportWidth, typicalWidth float32, itemCount int) []int {
	tile := typicalWidth + l.Gap
	if tile <= 0 {
		// Degenerate zero-size tiles: everything is "visible".
		indices := make([]int, itemCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	offset := scrollX - l.PaddingLeft
	minimum := int(fmath.Floor(offset / tile))
	if minimum < 0 {
		minimum = 0
	}

	visibleCount := int(fmath.Ceil(viewportWidth / tile))
	if visibleCount < 1 {
		visibleCount = 1
	}
	// A scroll offset inside a tile exposes a partial item at each edge.
	if offset > 0 && offset != float32(minimum)*tile {
		visibleCount++
	}

	maximum := minimum + visibleCount - 1
	if maximum > itemCount-1 {
		maximum = itemCount - 1
		minimum = maximum - visibleCount + 1
		if minimum < 0 {
			minimum = 0
		}
	}

	indices := make([]int, 0, maximum-minimum+1)
	for i := minimum; i <= maximum; i++ {
		indices = append(indices, i)
	}
	return indices
}

// visibleIndicesVariable walks the sequence accumulating cached-or-typical
// widths, collects the indices whose spans overlap the viewport, and stops
// once the cursor passes the trailing edge. The result is then padded
// toward the typical visible count, leading side first.
func (l *HorizontalLayout) visibleIndicesVariable(scrollX, viewportWidth, typicalWidth float32, itemCount int) []int {
	trailing := scrollX + viewportWidth
	positionX := l.PaddingLeft
	minimum, maximum := -1, -1

	for i := 0; i < itemCount; i++ {
		width := typicalWidth
		if cached, ok := l.WidthCache().Get(i).Get(); ok {
			width = cached
		}
		if positionX+width > scrollX && positionX < trailing {
			if minimum == -1 {
				minimum = i
			}
			maximum = i
		}
		positionX += width + l.gapFor(i, itemCount)
		if maximum != -1 && positionX >= trailing {
			break
		}
	}
	if minimum == -1 {
		// Scrolled past all content: anchor at the end.
		minimum, maximum = itemCount-1, itemCount-1
	}

	// Over-fetch toward the typical visible count. This is recycling-pool
	// stabilization, not a precise contract; hosts tolerate extra indices.
	tile := typicalWidth + l.Gap
	desired := maximum - minimum + 1
	if tile > 0 {
		desired = int(fmath.Ceil(viewportWidth/tile)) + 1
	}
	for maximum-minimum+1 < desired && minimum > 0 {
		minimum--
	}
	for maximum-minimum+1 < desired && maximum < itemCount-1 {
		maximum++
	}

	indices := make([]int, 0, maximum-minimum+1)
	for i := minimum; i <= maximum; i++ {
		indices = append(indices, i)
	}
	return indices
}

// ScrollPositionForIndex returns the horizontal scroll offset that places
// the item at the given conceptual index at the layout's ScrollAlign anchor
// within the viewport. Unrealized entries contribute their cached or
// typical measurements. The answer may be negative or past the content end;
// hosts clamp to their scrollable range.
func (l *HorizontalLayout) ScrollPositionForIndex(index int, items []Item, viewportWidth float32) float32 {
	typicalWidth, _ := l.typicalSize()

	itemCount := len(items)
	if l.UseVirtualLayout {
		itemCount += l.BeforeVirtualizedItemCount + l.AfterVirtualizedItemCount
	}
	if itemCount == 0 {
		return 0
	}
	index = int(fmath.Clamp(float32(index), 0, float32(itemCount-1)))

	positionX := l.PaddingLeft
	targetWidth := typicalWidth
	for i := 0; i <= index; i++ {
		width := l.conceptualWidth(i, items, typicalWidth)
		if i == index {
			targetWidth = width
			break
		}
		positionX += width + l.gapFor(i, itemCount)
	}

	switch l.ScrollAlign {
	case AlignRight:
		return positionX - (viewportWidth - targetWidth)
	case AlignCenter:
		return positionX - fmath.Round((viewportWidth-targetWidth)/2)
	default:
		return positionX
	}
}

// conceptualWidth resolves the width of the item at a conceptual index:
// the realized item's width when present, else the cached measurement in
// variable mode, else the typical width.
func (l *HorizontalLayout) conceptualWidth(index int, items []Item, typicalWidth float32) float32 {
	realized := index
	if l.UseVirtualLayout {
		realized = index - l.BeforeVirtualizedItemCount
	}
	if realized < 0 || realized >= len(items) || items[realized] == nil {
		if l.UseVirtualLayout && l.HasVariableItemDimensions {
			if cached, ok := l.WidthCache().Get(index).Get(); ok {
				return cached
			}
		}
		return typicalWidth
	}
	width, _ := items[realized].Size()
	return width
}

// MeasureViewport estimates viewport dimensions for a virtualized sequence
// from the typical item and the width cache, without touching any realized
// items. Calling it with virtualization disabled returns
// ErrVirtualizationDisabled.
func (l *HorizontalLayout) MeasureViewport(itemCount int, bounds Bounds) (width, height float32, err error) {
	if !l.UseVirtualLayout {
		return 0, 0, fmt.Errorf("measure viewport: %w", ErrVirtualizationDisabled)
	}

	typicalWidth, typicalHeight := l.typicalSize()

	if explicit, ok := bounds.ExplicitWidth.Get(); ok {
		width = explicit
	} else {
		var contentWidth float32
		if l.HasVariableItemDimensions {
			for i := 0; i < itemCount; i++ {
				w := typicalWidth
				if cached, ok := l.WidthCache().Get(i).Get(); ok {
					w = cached
				}
				contentWidth += w
				if i < itemCount-1 {
					contentWidth += l.gapFor(i, itemCount)
				}
			}
		} else if itemCount > 0 {
			contentWidth = float32(itemCount)*(typicalWidth+l.Gap) - l.Gap
			if firstGap, ok := l.FirstGap.Get(); ok && itemCount > 1 {
				contentWidth += firstGap - l.Gap
			}
			if lastGap, ok := l.LastGap.Get(); ok && itemCount > 2 {
				contentWidth += lastGap - l.Gap
			}
		}
		width = fmath.Clamp(contentWidth+l.PaddingLeft+l.PaddingRight, bounds.MinWidth, bounds.MaxWidth)
	}

	if explicit, ok := bounds.ExplicitHeight.Get(); ok {
		height = explicit
	} else {
		height = fmath.Clamp(typicalHeight+l.PaddingTop+l.PaddingBottom, bounds.MinHeight, bounds.MaxHeight)
	}
	return width, height, nil
}
