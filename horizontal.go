package flow

import "github.com/agiangrant/flow/internal/fmath"

// HorizontalLayout positions a sequence of items left to right on a single
// row. It supports virtualized sequences where only a window of items is
// realized (nil entries and before/after counts stand for the rest),
// uniform or per-item variable widths, percentage-based flexible sizing,
// distribute-widths mode, and alignment on both axes.
//
// Layout is a pure function of the layout's configuration plus its
// arguments; the only persistent state is the width cache used by
// variable-dimension virtualization. All methods are intended for a single
// rendering/update thread.
type HorizontalLayout struct {
	// Gap is the default spacing between adjacent items.
	Gap float32

	// FirstGap overrides the gap between the first and second items.
	FirstGap Dim

	// LastGap overrides the gap between the second-to-last and last items.
	// It never governs a gap that is also the first gap, so a two-item
	// sequence uses FirstGap when set, else Gap.
	LastGap Dim

	PaddingTop    float32
	PaddingRight  float32
	PaddingBottom float32
	PaddingLeft   float32

	// HorizontalAlign places the whole content run when it is narrower
	// than the viewport.
	HorizontalAlign HorizontalAlign

	// VerticalAlign places each item on the cross axis; AlignJustify
	// stretches items to fill the available height minus padding.
	VerticalAlign VerticalAlign

	// DistributeWidths gives every item one shared width carved out of the
	// available space, or the widest item's width when the viewport width
	// is unknown.
	DistributeWidths bool

	// UseVirtualLayout enables virtualized positioning: nil entries advance
	// the cursor by a stand-in measurement instead of being positioned.
	UseVirtualLayout bool

	// HasVariableItemDimensions selects cached per-index widths over the
	// typical item's width for unrealized entries. Hosts using variable
	// dimensions pass a full-length slice with nils and leave the
	// before/after counts at zero.
	HasVariableItemDimensions bool

	// BeforeVirtualizedItemCount and AfterVirtualizedItemCount are the
	// number of conceptual items trimmed from each end of the items slice
	// in the uniform virtualized fast path.
	BeforeVirtualizedItemCount int
	AfterVirtualizedItemCount  int

	// TypicalItem supplies the stand-in measurement for unrealized entries.
	TypicalItem Item

	// ScrollAlign anchors ScrollPositionForIndex's answer within the
	// viewport.
	ScrollAlign HorizontalAlign

	// OnChange fires when a cached width changes during a pass, telling the
	// host a relayout may be warranted. Cache writes only fire it when the
	// value actually differs, so relayout-triggered re-entry terminates.
	OnChange func()

	widthCache *MeasurementCache
}

// NewHorizontalLayout returns a layout with centered scroll anchoring and
// everything else zeroed.
func NewHorizontalLayout() *HorizontalLayout {
	return &HorizontalLayout{ScrollAlign: AlignCenter}
}

// WidthCache returns the per-index width cache used by variable-dimension
// virtualization. Hosts mutate it directly on data-source changes
// (InsertAt/RemoveAt/Reset); indices are conceptual positions in the full
// sequence.
func (l *HorizontalLayout) WidthCache() *MeasurementCache {
	if l.widthCache == nil {
		l.widthCache = NewMeasurementCache(func() {
			if l.OnChange != nil {
				l.OnChange()
			}
		})
	}
	return l.widthCache
}

// gapFor returns the gap between conceptual item index and index+1.
// Precedence is first-gap, then last-gap, then the default; the last-gap
// override requires index > 0 so it never claims the first gap.
func (l *HorizontalLayout) gapFor(index, itemCount int) float32 {
	if firstGap, ok := l.FirstGap.Get(); ok && index == 0 {
		return firstGap
	}
	if lastGap, ok := l.LastGap.Get(); ok && index > 0 && index == itemCount-2 {
		return lastGap
	}
	return l.Gap
}

func (l *HorizontalLayout) typicalSize() (width, height float32) {
	if l.TypicalItem != nil {
		return l.TypicalItem.Size()
	}
	return 0, 0
}

// Layout positions items within bounds and returns the content and viewport
// dimensions. Item positions and (in distribute/justify/percent modes)
// sizes are mutated in place. Nil entries and excluded items are never
// touched.
func (l *HorizontalLayout) Layout(items []Item, bounds Bounds) Result {
	typicalWidth, typicalHeight := l.typicalSize()

	conceptualCount := len(items)
	if l.UseVirtualLayout {
		conceptualCount += l.BeforeVirtualizedItemCount + l.AfterVirtualizedItemCount
	}

	// Percent hints only resolve against realized items, so the flexible
	// pre-pass runs in non-virtualized, non-distribute mode.
	if !l.UseVirtualLayout && !l.DistributeWidths {
		l.applyPercentWidths(items, bounds.ExplicitWidth, bounds.MinWidth, bounds.MaxWidth)
	}

	var distributedWidth float32
	if l.DistributeWidths {
		distributedWidth = l.calculateDistributedWidth(items, bounds)
	}

	positionX := bounds.X + l.PaddingLeft
	if l.UseVirtualLayout && !l.HasVariableItemDimensions {
		// Uniform mode: everything trimmed before the window contributes a
		// typical tile, with the first-gap correction when the first gap
		// falls inside that run.
		positionX += float32(l.BeforeVirtualizedItemCount) * (typicalWidth + l.Gap)
		if firstGap, ok := l.FirstGap.Get(); ok && l.BeforeVirtualizedItemCount > 0 {
			positionX += firstGap - l.Gap
		}
	}

	positioned := acquireItemSlice(0)
	defer func() { releaseItemSlice(positioned) }()

	maxItemHeight := float32(0)
	if l.UseVirtualLayout {
		maxItemHeight = typicalHeight
	}

	// trailingGap tracks the gap added after the most recent advance so the
	// spurious gap past the final item can be removed.
	trailingGap := float32(0)

	for i, item := range items {
		conceptual := i + l.BeforeVirtualizedItemCount
		gap := l.gapFor(conceptual, conceptualCount)

		if item == nil {
			// Unrealized entry: advance by its remembered or typical width.
			width := typicalWidth
			if l.HasVariableItemDimensions {
				if cached, ok := l.WidthCache().Get(conceptual).Get(); ok {
					width = cached
				}
			}
			positionX += width + gap
			trailingGap = gap
			continue
		}
		if itemExcluded(item) {
			continue
		}

		width, height := item.Size()
		switch {
		case l.DistributeWidths:
			minW, _, maxW, _ := itemMinMax(item)
			width = fmath.Clamp(distributedWidth, minW, maxW)
			item.SetSize(width, height)
		case l.UseVirtualLayout && !l.HasVariableItemDimensions:
			// Uniform virtualization sizes every realized item like the
			// typical one, keeping the index arithmetic exact.
			width = typicalWidth
			item.SetSize(width, height)
		}

		if l.UseVirtualLayout && l.HasVariableItemDimensions {
			l.WidthCache().Set(conceptual, width)
		}

		item.SetPosition(positionX, bounds.Y+l.PaddingTop)
		positioned = append(positioned, item)
		positionX += width + gap
		trailingGap = gap
		if height > maxItemHeight {
			maxItemHeight = height
		}
	}

	if l.UseVirtualLayout && !l.HasVariableItemDimensions && l.AfterVirtualizedItemCount > 0 {
		positionX += float32(l.AfterVirtualizedItemCount) * (typicalWidth + l.Gap)
		trailingGap = l.Gap
		// The gap before the final conceptual item sits inside the after
		// run once at least two items are trimmed there.
		if lastGap, ok := l.LastGap.Get(); ok && l.AfterVirtualizedItemCount > 1 && conceptualCount > 2 {
			positionX += lastGap - l.Gap
		}
	}

	totalWidth := positionX - trailingGap + l.PaddingRight - bounds.X
	totalHeight := maxItemHeight + l.PaddingTop + l.PaddingBottom

	viewportWidth, ok := bounds.ExplicitWidth.Get()
	if !ok {
		viewportWidth = fmath.Clamp(totalWidth, bounds.MinWidth, bounds.MaxWidth)
	}
	viewportHeight, ok := bounds.ExplicitHeight.Get()
	if !ok {
		viewportHeight = fmath.Clamp(totalHeight, bounds.MinHeight, bounds.MaxHeight)
	}

	// When content is narrower than the viewport, shift the whole run.
	// The centering offset rounds half away from zero, applied once.
	if totalWidth < viewportWidth {
		var offset float32
		switch l.HorizontalAlign {
		case AlignCenter:
			offset = fmath.Round((viewportWidth - totalWidth) / 2)
		case AlignRight:
			offset = viewportWidth - totalWidth
		}
		if offset != 0 {
			for _, item := range positioned {
				x, y := item.Position()
				item.SetPosition(x+offset, y)
			}
		}
	}

	l.alignVertically(positioned, bounds.Y, viewportHeight)

	debugLog("horizontal layout: %d items, content %.1fx%.1f viewport %.1fx%.1f",
		len(positioned), totalWidth, totalHeight, viewportWidth, viewportHeight)

	return Result{
		ContentWidth:   totalWidth,
		ContentHeight:  totalHeight,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

// alignVertically runs the cross-axis pass: justify stretches each item to
// the available height minus padding (clamped to the item's own bounds);
// the positional modes place the item using its own height after resolving
// any percent-height hint.
func (l *HorizontalLayout) alignVertically(positioned []Item, boundsY, viewportHeight float32) {
	available := viewportHeight - l.PaddingTop - l.PaddingBottom
	if available < 0 {
		available = 0
	}

	for _, item := range positioned {
		width, height := item.Size()
		if l.VerticalAlign == AlignJustify {
			_, minH, _, maxH := itemMinMax(item)
			height = fmath.Clamp(available, minH, maxH)
			item.SetSize(width, height)
		} else if resolved, ok := resolvePercentHeight(item, available); ok {
			height = resolved
			item.SetSize(width, height)
		}

		x, _ := item.Position()
		switch l.VerticalAlign {
		case AlignBottom:
			item.SetPosition(x, boundsY+viewportHeight-l.PaddingBottom-height)
		case AlignMiddle:
			item.SetPosition(x, boundsY+l.PaddingTop+fmath.Round((available-height)/2))
		default: // AlignTop, AlignJustify
			item.SetPosition(x, boundsY+l.PaddingTop)
		}
	}
}

// calculateDistributedWidth derives the one width every item shares in
// distribute mode: an equal slice of the explicit viewport width after
// padding and gaps, or the widest item's width when the viewport width is
// unknown.
func (l *HorizontalLayout) calculateDistributedWidth(items []Item, bounds Bounds) float32 {
	count := 0
	maxItemWidth := float32(0)
	for _, item := range items {
		if item == nil || itemExcluded(item) {
			continue
		}
		count++
		width, _ := item.Size()
		if width > maxItemWidth {
			maxItemWidth = width
		}
	}
	if count == 0 {
		return 0
	}

	explicit, ok := bounds.ExplicitWidth.Get()
	if !ok {
		return maxItemWidth
	}

	space := explicit - l.PaddingLeft - l.PaddingRight
	if count > 1 {
		space -= l.Gap * float32(count-1)
		if firstGap, ok := l.FirstGap.Get(); ok {
			space -= firstGap - l.Gap
		}
		if lastGap, ok := l.LastGap.Get(); ok && count > 2 {
			space -= lastGap - l.Gap
		}
	}
	width := space / float32(count)
	if width < 0 {
		width = 0
	}
	return width
}
