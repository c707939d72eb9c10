package flow

import "github.com/agiangrant/flow/internal/fmath"

// flexEntry is one percent-sized item participating in a resolution pass.
type flexEntry struct {
	item    Item
	percent float32
	min     float32
	max     float32
	size    float32
	done    bool
}

// distributePercent shares remaining space among entries by percent weight.
// An entry whose share lands outside its [min,max] is clamped, removed from
// the pool, and its actual size subtracted from the remaining space before
// the next pass recomputes the pixels-per-percent rate. Each pass either
// clamps at least one entry or is final, so the loop runs at most len(entries)
// times. This is what keeps a tightly-constrained item from starving or
// overfeeding the rest of the pool.
func distributePercent(entries []flexEntry, remaining, totalPercent float32) {
	for {
		needsAnotherPass := false
		perPercent := float32(0)
		if totalPercent > 0 {
			perPercent = remaining / totalPercent
		}
		for i := range entries {
			e := &entries[i]
			if e.done {
				continue
			}
			size := perPercent * e.percent
			if size < e.min {
				e.size = e.min
				e.done = true
				remaining -= e.min
				if remaining < 0 {
					remaining = 0
				}
				totalPercent -= e.percent
				needsAnotherPass = true
				continue
			}
			if size > e.max {
				e.size = e.max
				e.done = true
				remaining -= e.max
				if remaining < 0 {
					remaining = 0
				}
				totalPercent -= e.percent
				needsAnotherPass = true
				continue
			}
			e.size = size
		}
		if !needsAnotherPass {
			return
		}
	}
}

// applyPercentWidths resolves the width of every item carrying a
// percent-width hint, leaving fixed items untouched. Runs before the
// positioning walk in non-virtualized, non-distribute passes.
func (l *HorizontalLayout) applyPercentWidths(items []Item, explicitWidth Dim, minWidth, maxWidth float32) {
	var flex []flexEntry
	var totalExplicitWidth float32
	var totalMinWidth float32
	var totalPercentWidth float32
	count := 0

	for _, item := range items {
		if item == nil || itemExcluded(item) {
			continue
		}
		count++
		data := itemLayoutData(item)
		if data == nil || !data.PercentWidth.IsSet() {
			w, _ := item.Size()
			totalExplicitWidth += w
			continue
		}
		percent, _ := data.PercentWidth.Get()
		if percent < 0 {
			percent = 0
		}
		minW, _, maxW, _ := itemMinMax(item)
		totalMinWidth += minW
		totalPercentWidth += percent
		flex = append(flex, flexEntry{item: item, percent: percent, min: minW, max: maxW})
	}
	if len(flex) == 0 {
		return
	}

	// Fixed widths plus every gap plus padding is the space percent items
	// cannot use.
	if count > 1 {
		totalExplicitWidth += l.Gap * float32(count-1)
		if firstGap, ok := l.FirstGap.Get(); ok {
			totalExplicitWidth += firstGap - l.Gap
		}
		if lastGap, ok := l.LastGap.Get(); ok && count > 2 {
			totalExplicitWidth += lastGap - l.Gap
		}
	}
	totalExplicitWidth += l.PaddingLeft + l.PaddingRight

	// The percent base never drops below 100, so hints totalling less than
	// 100 leave space unclaimed instead of inflating every share.
	if totalPercentWidth < 100 {
		totalPercentWidth = 100
	}

	total, ok := explicitWidth.Get()
	if !ok {
		total = fmath.Clamp(totalExplicitWidth+totalMinWidth, minWidth, maxWidth)
	}

	remaining := total - totalExplicitWidth
	if remaining < 0 {
		remaining = 0
	}

	distributePercent(flex, remaining, totalPercentWidth)
	for i := range flex {
		_, h := flex[i].item.Size()
		flex[i].item.SetSize(flex[i].size, h)
	}
}

// applyPercentHeights is the vertical counterpart used by VerticalLayout.
func (l *VerticalLayout) applyPercentHeights(items []Item, explicitHeight Dim, minHeight, maxHeight float32) {
	var flex []flexEntry
	var totalExplicitHeight float32
	var totalMinHeight float32
	var totalPercentHeight float32
	count := 0

	for _, item := range items {
		if item == nil || itemExcluded(item) {
			continue
		}
		count++
		data := itemLayoutData(item)
		if data == nil || !data.PercentHeight.IsSet() {
			_, h := item.Size()
			totalExplicitHeight += h
			continue
		}
		percent, _ := data.PercentHeight.Get()
		if percent < 0 {
			percent = 0
		}
		_, minH, _, maxH := itemMinMax(item)
		totalMinHeight += minH
		totalPercentHeight += percent
		flex = append(flex, flexEntry{item: item, percent: percent, min: minH, max: maxH})
	}
	if len(flex) == 0 {
		return
	}

	if count > 1 {
		totalExplicitHeight += l.Gap * float32(count-1)
		if firstGap, ok := l.FirstGap.Get(); ok {
			totalExplicitHeight += firstGap - l.Gap
		}
		if lastGap, ok := l.LastGap.Get(); ok && count > 2 {
			totalExplicitHeight += lastGap - l.Gap
		}
	}
	totalExplicitHeight += l.PaddingTop + l.PaddingBottom

	if totalPercentHeight < 100 {
		totalPercentHeight = 100
	}

	total, ok := explicitHeight.Get()
	if !ok {
		total = fmath.Clamp(totalExplicitHeight+totalMinHeight, minHeight, maxHeight)
	}

	remaining := total - totalExplicitHeight
	if remaining < 0 {
		remaining = 0
	}

	distributePercent(flex, remaining, totalPercentHeight)
	for i := range flex {
		w, _ := flex[i].item.Size()
		flex[i].item.SetSize(w, flex[i].size)
	}
}

// resolvePercentHeight resolves a single item's percent-height hint against
// the available cross-axis space, clamped to the item's own bounds. Used by
// the per-item vertical alignment pass of the horizontal layout.
func resolvePercentHeight(item Item, available float32) (float32, bool) {
	data := itemLayoutData(item)
	if data == nil || !data.PercentHeight.IsSet() {
		return 0, false
	}
	percent, _ := data.PercentHeight.Get()
	percent = fmath.Clamp(percent, 0, 100)
	_, minH, _, maxH := itemMinMax(item)
	return fmath.Clamp(available*percent/100, minH, maxH), true
}

// resolvePercentWidth is the cross-axis counterpart for vertical layouts.
func resolvePercentWidth(item Item, available float32) (float32, bool) {
	data := itemLayoutData(item)
	if data == nil || !data.PercentWidth.IsSet() {
		return 0, false
	}
	percent, _ := data.PercentWidth.Get()
	percent = fmath.Clamp(percent, 0, 100)
	minW, _, maxW, _ := itemMinMax(item)
	return fmath.Clamp(available*percent/100, minW, maxW), true
}
