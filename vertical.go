package flow

import (
	"fmt"

	"github.com/agiangrant/flow/internal/fmath"
)

// VerticalLayout is the top-to-bottom counterpart of HorizontalLayout: the
// same gap overrides, virtualization arithmetic, and percent sizing with
// the axes swapped. The persistent cache stores item heights, the cross
// axis alignment is horizontal, and AlignJustify stretches item widths.
type VerticalLayout struct {
	Gap      float32
	FirstGap Dim
	LastGap  Dim

	PaddingTop    float32
	PaddingRight  float32
	PaddingBottom float32
	PaddingLeft   float32

	// VerticalAlign places the content run when it is shorter than the
	// viewport; only the positional modes apply (justify is a cross-axis
	// concept here, carried by HorizontalAlign).
	VerticalAlign   VerticalAlign
	HorizontalAlign HorizontalAlign

	// JustifyWidths stretches every item to the available width minus
	// padding, the cross-axis analogue of HorizontalLayout's AlignJustify.
	JustifyWidths bool

	DistributeHeights bool

	UseVirtualLayout           bool
	HasVariableItemDimensions  bool
	BeforeVirtualizedItemCount int
	AfterVirtualizedItemCount  int
	TypicalItem                Item

	// ScrollAlign anchors ScrollPositionForIndex's answer (top/middle/
	// bottom expressed through the VerticalAlign enum).
	ScrollAlign VerticalAlign

	OnChange func()

	heightCache *MeasurementCache
}

// NewVerticalLayout returns a layout with centered scroll anchoring.
func NewVerticalLayout() *VerticalLayout {
	return &VerticalLayout{ScrollAlign: AlignMiddle}
}

// HeightCache returns the per-index height cache used by variable-dimension
// virtualization.
func (l *VerticalLayout) HeightCache() *MeasurementCache {
	if l.heightCache == nil {
		l.heightCache = NewMeasurementCache(func() {
			if l.OnChange != nil {
				l.OnChange()
			}
		})
	}
	return l.heightCache
}

func (l *VerticalLayout) gapFor(index, itemCount int) float32 {
	if firstGap, ok := l.FirstGap.Get(); ok && index == 0 {
		return firstGap
	}
	if lastGap, ok := l.LastGap.Get(); ok && index > 0 && index == itemCount-2 {
		return lastGap
	}
	return l.Gap
}

func (l *VerticalLayout) typicalSize() (width, height float32) {
	if l.TypicalItem != nil {
		return l.TypicalItem.Size()
	}
	return 0, 0
}

// Layout positions items within bounds and returns the content and viewport
// dimensions.
func (l *VerticalLayout) Layout(items []Item, bounds Bounds) Result {
	typicalWidth, typicalHeight := l.typicalSize()

	conceptualCount := len(items)
	if l.UseVirtualLayout {
		conceptualCount += l.BeforeVirtualizedItemCount + l.AfterVirtualizedItemCount
	}

	if !l.UseVirtualLayout && !l.DistributeHeights {
		l.applyPercentHeights(items, bounds.ExplicitHeight, bounds.MinHeight, bounds.MaxHeight)
	}

	var distributedHeight float32
	if l.DistributeHeights {
		distributedHeight = l.calculateDistributedHeight(items, bounds)
	}

	positionY := bounds.Y + l.PaddingTop
	if l.UseVirtualLayout && !l.HasVariableItemDimensions {
		positionY += float32(l.BeforeVirtualizedItemCount) * (typicalHeight + l.Gap)
		if firstGap, ok := l.FirstGap.Get(); ok && l.BeforeVirtualizedItemCount > 0 {
			positionY += firstGap - l.Gap
		}
	}

	positioned := acquireItemSlice(0)
	defer func() { releaseItemSlice(positioned) }()

	maxItemWidth := float32(0)
	if l.UseVirtualLayout {
		maxItemWidth = typicalWidth
	}
	trailingGap := float32(0)

	for i, item := range items {
		conceptual := i + l.BeforeVirtualizedItemCount
		gap := l.gapFor(conceptual, conceptualCount)

		if item == nil {
			height := typicalHeight
			if l.HasVariableItemDimensions {
				if cached, ok := l.HeightCache().Get(conceptual).Get(); ok {
					height = cached
				}
			}
			positionY += height + gap
			trailingGap = gap
			continue
		}
		if itemExcluded(item) {
			continue
		}

		width, height := item.Size()
		switch {
		case l.DistributeHeights:
			_, minH, _, maxH := itemMinMax(item)
			height = fmath.Clamp(distributedHeight, minH, maxH)
			item.SetSize(width, height)
		case l.UseVirtualLayout && !l.HasVariableItemDimensions:
			height = typicalHeight
			item.SetSize(width, height)
		}

		if l.UseVirtualLayout && l.HasVariableItemDimensions {
			l.HeightCache().Set(conceptual, height)
		}

		item.SetPosition(bounds.X+l.PaddingLeft, positionY)
		positioned = append(positioned, item)
		positionY += height + gap
		trailingGap = gap
		if width > maxItemWidth {
			maxItemWidth = width
		}
	}

	if l.UseVirtualLayout && !l.HasVariableItemDimensions && l.AfterVirtualizedItemCount > 0 {
		positionY += float32(l.AfterVirtualizedItemCount) * (typicalHeight + l.Gap)
		trailingGap = l.Gap
		if lastGap, ok := l.LastGap.Get(); ok && l.AfterVirtualizedItemCount > 1 && conceptualCount > 2 {
			positionY += lastGap - l.Gap
		}
	}

	totalHeight := positionY - trailingGap + l.PaddingBottom - bounds.Y
	totalWidth := maxItemWidth + l.PaddingLeft + l.PaddingRight

	viewportWidth, ok := bounds.ExplicitWidth.Get()
	if !ok {
		viewportWidth = fmath.Clamp(totalWidth, bounds.MinWidth, bounds.MaxWidth)
	}
	viewportHeight, ok := bounds.ExplicitHeight.Get()
	if !ok {
		viewportHeight = fmath.Clamp(totalHeight, bounds.MinHeight, bounds.MaxHeight)
	}

	if totalHeight < viewportHeight {
		var offset float32
		switch l.VerticalAlign {
		case AlignMiddle:
			offset = fmath.Round((viewportHeight - totalHeight) / 2)
		case AlignBottom:
			offset = viewportHeight - totalHeight
		}
		if offset != 0 {
			for _, item := range positioned {
				x, y := item.Position()
				item.SetPosition(x, y+offset)
			}
		}
	}

	l.alignHorizontally(positioned, bounds.X, viewportWidth)

	debugLog("vertical layout: %d items, content %.1fx%.1f viewport %.1fx%.1f",
		len(positioned), totalWidth, totalHeight, viewportWidth, viewportHeight)

	return Result{
		ContentWidth:   totalWidth,
		ContentHeight:  totalHeight,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

func (l *VerticalLayout) alignHorizontally(positioned []Item, boundsX, viewportWidth float32) {
	available := viewportWidth - l.PaddingLeft - l.PaddingRight
	if available < 0 {
		available = 0
	}

	for _, item := range positioned {
		width, height := item.Size()
		if l.JustifyWidths {
			minW, _, maxW, _ := itemMinMax(item)
			width = fmath.Clamp(available, minW, maxW)
			item.SetSize(width, height)
		} else if resolved, ok := resolvePercentWidth(item, available); ok {
			width = resolved
			item.SetSize(width, height)
		}

		_, y := item.Position()
		if l.JustifyWidths {
			item.SetPosition(boundsX+l.PaddingLeft, y)
			continue
		}
		switch l.HorizontalAlign {
		case AlignRight:
			item.SetPosition(boundsX+viewportWidth-l.PaddingRight-width, y)
		case AlignCenter:
			item.SetPosition(boundsX+l.PaddingLeft+fmath.Round((available-width)/2), y)
		default:
			item.SetPosition(boundsX+l.PaddingLeft, y)
		}
	}
}

func (l *VerticalLayout) calculateDistributedHeight(items []Item, bounds Bounds) float32 {
	count := 0
	maxItemHeight := float32(0)
	for _, item := range items {
		if item == nil || itemExcluded(item) {
			continue
		}
		count++
		_, height := item.Size()
		if height > maxItemHeight {
			maxItemHeight = height
		}
	}
	if count == 0 {
		return 0
	}

	explicit, ok := bounds.ExplicitHeight.Get()
	if !ok {
		return maxItemHeight
	}

	space := explicit - l.PaddingTop - l.PaddingBottom
	if count > 1 {
		space -= l.Gap * float32(count-1)
		if firstGap, ok := l.FirstGap.Get(); ok {
			space -= firstGap - l.Gap
		}
		if lastGap, ok := l.LastGap.Get(); ok && count > 2 {
			space -= lastGap - l.Gap
		}
	}
	height := space / float32(count)
	if height < 0 {
		height = 0
	}
	return height
}

// VisibleIndicesAtScrollPosition mirrors the horizontal query on the y axis.
func (l *VerticalLayout) VisibleIndicesAtScrollPosition(scrollX, scrollY, viewportWidth, viewportHeight float32, itemCount int) ([]int, error) {
	if !l.UseVirtualLayout {
		return nil, fmt.Errorf("visible indices: %w", ErrVirtualizationDisabled)
	}
	if itemCount <= 0 {
		return nil, nil
	}

	_, typicalHeight := l.typicalSize()
	if l.HasVariableItemDimensions {
		return l.visibleIndicesVariable(scrollY, viewportHeight, typicalHeight, itemCount), nil
	}
	return l.visibleIndicesUniform(scrollY, viewportHeight, typicalHeight, itemCount), nil
}

func (l *VerticalLayout) visibleIndicesUniform(scrollY, viewportHeight, typicalHeight float32, itemCount int) []int {
	tile := typicalHeight + l.Gap
	if tile <= 0 {
		indices := make([]int, itemCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	offset := scrollY - l.PaddingTop
	minimum := int(fmath.Floor(offset / tile))
	if minimum < 0 {
		minimum = 0
	}

	visibleCount := int(fmath.Ceil(viewportHeight / tile))
	if visibleCount < 1 {
		visibleCount = 1
	}
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

func (l *VerticalLayout) visibleIndicesVariable(scrollY, viewportHeight, typicalHeight float32, itemCount int) []int {
	trailing := scrollY + viewportHeight
	positionY := l.PaddingTop
	minimum, maximum := -1, -1

	for i := 0; i < itemCount; i++ {
		height := typicalHeight
		if cached, ok := l.HeightCache().Get(i).Get(); ok {
			height = cached
		}
		if positionY+height > scrollY && positionY < trailing {
			if minimum == -1 {
				minimum = i
			}
			maximum = i
		}
		positionY += height + l.gapFor(i, itemCount)
		if maximum != -1 && positionY >= trailing {
			break
		}
	}
	if minimum == -1 {
		minimum, maximum = itemCount-1, itemCount-1
	}

	tile := typicalHeight + l.Gap
	desired := maximum - minimum + 1
	if tile > 0 {
		desired = int(fmath.Ceil(viewportHeight/tile)) + 1
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

// ScrollPositionForIndex returns the vertical scroll offset that places the
// item at the given conceptual index at the layout's ScrollAlign anchor.
func (l *VerticalLayout) ScrollPositionForIndex(index int, items []Item, viewportHeight float32) float32 {
	_, typicalHeight := l.typicalSize()

	itemCount := len(items)
	if l.UseVirtualLayout {
		itemCount += l.BeforeVirtualizedItemCount + l.AfterVirtualizedItemCount
	}
	if itemCount == 0 {
		return 0
	}
	index = int(fmath.Clamp(float32(index), 0, float32(itemCount-1)))

	positionY := l.PaddingTop
	targetHeight := typicalHeight
	for i := 0; i <= index; i++ {
		height := l.conceptualHeight(i, items, typicalHeight)
		if i == index {
			targetHeight = height
			break
		}
		positionY += height + l.gapFor(i, itemCount)
	}

	switch l.ScrollAlign {
	case AlignBottom:
		return positionY - (viewportHeight - targetHeight)
	case AlignMiddle:
		return positionY - fmath.Round((viewportHeight-targetHeight)/2)
	default:
		return positionY
	}
}

func (l *VerticalLayout) conceptualHeight(index int, items []Item, typicalHeight float32) float32 {
	realized := index
	if l.UseVirtualLayout {
		realized = index - l.BeforeVirtualizedItemCount
	}
	if realized < 0 || realized >= len(items) || items[realized] == nil {
		if l.UseVirtualLayout && l.HasVariableItemDimensions {
			if cached, ok := l.HeightCache().Get(index).Get(); ok {
				return cached
			}
		}
		return typicalHeight
	}
	_, height := items[realized].Size()
	return height
}

// MeasureViewport estimates viewport dimensions for a virtualized sequence
// on the y axis. Errors when virtualization is disabled.
func (l *VerticalLayout) MeasureViewport(itemCount int, bounds Bounds) (width, height float32, err error) {
	if !l.UseVirtualLayout {
		return 0, 0, fmt.Errorf("measure viewport: %w", ErrVirtualizationDisabled)
	}

	typicalWidth, typicalHeight := l.typicalSize()

	if explicit, ok := bounds.ExplicitHeight.Get(); ok {
		height = explicit
	} else {
		var contentHeight float32
		if l.HasVariableItemDimensions {
			for i := 0; i < itemCount; i++ {
				h := typicalHeight
				if cached, ok := l.HeightCache().Get(i).Get(); ok {
					h = cached
				}
				contentHeight += h
				if i < itemCount-1 {
					contentHeight += l.gapFor(i, itemCount)
				}
			}
		} else if itemCount > 0 {
			contentHeight = float32(itemCount)*(typicalHeight+l.Gap) - l.Gap
			if firstGap, ok := l.FirstGap.Get(); ok && itemCount > 1 {
				contentHeight += firstGap - l.Gap
			}
			if lastGap, ok := l.LastGap.Get(); ok && itemCount > 2 {
				contentHeight += lastGap - l.Gap
			}
		}
		height = fmath.Clamp(contentHeight+l.PaddingTop+l.PaddingBottom, bounds.MinHeight, bounds.MaxHeight)
	}

	if explicit, ok := bounds.ExplicitWidth.Get(); ok {
		width = explicit
	} else {
		width = fmath.Clamp(typicalWidth+l.PaddingLeft+l.PaddingRight, bounds.MinWidth, bounds.MaxWidth)
	}
	return width, height, nil
}
