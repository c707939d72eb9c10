package flow

import (
	"errors"
	"testing"
)

func TestVerticalLayoutPositionsTopToBottom(t *testing.T) {
	items := sized(20, 50, 40, 60, 30, 70)

	l := NewVerticalLayout()
	l.Gap = 10
	l.PaddingTop = 5
	l.PaddingBottom = 5
	l.PaddingLeft = 2
	result := l.Layout(asItems(items), NewBounds())

	wantY := []float32{5, 65, 135}
	for i, item := range items {
		if item.y != wantY[i] {
			t.Errorf("item[%d].y = %v, want %v", i, item.y, wantY[i])
		}
		if item.x != 2 {
			t.Errorf("item[%d].x = %v, want 2", i, item.x)
		}
	}

	if result.ContentHeight != 210 {
		t.Errorf("ContentHeight = %v, want 210", result.ContentHeight)
	}
	// widest item + horizontal padding.
	if result.ContentWidth != 42 {
		t.Errorf("ContentWidth = %v, want 42", result.ContentWidth)
	}
}

func TestVerticalLayoutGapOverrides(t *testing.T) {
	items := sized(10, 10, 10, 10, 10, 10, 10, 10)

	l := NewVerticalLayout()
	l.Gap = 5
	l.FirstGap = Px(20)
	l.LastGap = Px(1)
	l.Layout(asItems(items), NewBounds())

	wantY := []float32{0, 30, 45, 56}
	for i, item := range items {
		if item.y != wantY[i] {
			t.Errorf("item[%d].y = %v, want %v", i, item.y, wantY[i])
		}
	}
}

func TestVerticalLayoutMainAxisAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align VerticalAlign
		wantY []float32
	}{
		{name: "top", align: AlignTop, wantY: []float32{0, 30}},
		{name: "middle", align: AlignMiddle, wantY: []float32{20, 50}},
		{name: "bottom", align: AlignBottom, wantY: []float32{40, 70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := sized(10, 30, 10, 30)

			l := NewVerticalLayout()
			l.VerticalAlign = tt.align
			bounds := NewBounds()
			bounds.ExplicitHeight = Px(100)
			l.Layout(asItems(items), bounds)

			for i, item := range items {
				if item.y != tt.wantY[i] {
					t.Errorf("item[%d].y = %v, want %v", i, item.y, tt.wantY[i])
				}
			}
		})
	}
}

func TestVerticalLayoutCrossAxisAlignment(t *testing.T) {
	tests := []struct {
		name    string
		align   HorizontalAlign
		justify bool
		wantX   float32
		wantW   float32
	}{
		{name: "left", align: AlignLeft, wantX: 10, wantW: 40},
		{name: "center", align: AlignCenter, wantX: 25, wantW: 40},
		{name: "right", align: AlignRight, wantX: 40, wantW: 40},
		{name: "justify stretches", justify: true, wantX: 10, wantW: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &testItem{w: 40, h: 30}

			l := NewVerticalLayout()
			l.PaddingLeft = 10
			l.PaddingRight = 20
			l.HorizontalAlign = tt.align
			l.JustifyWidths = tt.justify
			bounds := NewBounds()
			bounds.ExplicitWidth = Px(100)
			l.Layout([]Item{item}, bounds)

			if item.x != tt.wantX {
				t.Errorf("x = %v, want %v", item.x, tt.wantX)
			}
			if item.w != tt.wantW {
				t.Errorf("w = %v, want %v", item.w, tt.wantW)
			}
		})
	}
}

func TestVerticalLayoutDistributeHeights(t *testing.T) {
	items := sized(10, 10, 10, 20)

	l := NewVerticalLayout()
	l.Gap = 10
	l.DistributeHeights = true
	bounds := NewBounds()
	bounds.ExplicitHeight = Px(100)
	l.Layout(asItems(items), bounds)

	for i, item := range items {
		if item.h != 45 {
			t.Errorf("item[%d].h = %v, want 45", i, item.h)
		}
	}
	if items[1].y != 55 {
		t.Errorf("item[1].y = %v, want 55", items[1].y)
	}
}

func TestVerticalLayoutPercentHeights(t *testing.T) {
	fixed := &testItem{w: 10, h: 50}
	flex := &testItem{w: 10, data: &ItemLayoutData{PercentHeight: Px(100)}}

	l := NewVerticalLayout()
	bounds := NewBounds()
	bounds.ExplicitHeight = Px(200)
	l.Layout([]Item{fixed, flex}, bounds)

	if flex.h != 150 {
		t.Fatalf("flex.h = %v, want 150", flex.h)
	}
}

func TestVerticalLayoutUniformVirtual(t *testing.T) {
	typical := &testItem{w: 20, h: 50}
	realized := sized(20, 10)

	l := NewVerticalLayout()
	l.UseVirtualLayout = true
	l.TypicalItem = typical
	l.BeforeVirtualizedItemCount = 3
	l.AfterVirtualizedItemCount = 1
	result := l.Layout(asItems(realized), NewBounds())

	if realized[0].y != 150 {
		t.Fatalf("y = %v, want 150", realized[0].y)
	}
	if realized[0].h != 50 {
		t.Fatalf("h = %v, want 50 (typical)", realized[0].h)
	}
	if result.ContentHeight != 250 {
		t.Fatalf("ContentHeight = %v, want 250", result.ContentHeight)
	}
}

func TestVerticalVisibleIndices(t *testing.T) {
	l := NewVerticalLayout()
	l.UseVirtualLayout = true
	l.TypicalItem = &testItem{w: 20, h: 50}

	got, err := l.VisibleIndicesAtScrollPosition(0, 475, 100, 200, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{5, 6, 7, 8, 9}
	if !equalInts(got, want) {
		t.Fatalf("indices = %v, want %v", got, want)
	}

	l.UseVirtualLayout = false
	if _, err := l.VisibleIndicesAtScrollPosition(0, 0, 100, 200, 10); !errors.Is(err, ErrVirtualizationDisabled) {
		t.Fatalf("err = %v, want ErrVirtualizationDisabled", err)
	}
}

func TestVerticalScrollPositionForIndex(t *testing.T) {
	l := NewVerticalLayout()
	l.UseVirtualLayout = true
	l.TypicalItem = &testItem{w: 20, h: 50}
	l.ScrollAlign = AlignTop

	nils := make([]Item, 10)
	if got := l.ScrollPositionForIndex(4, nils, 200); got != 200 {
		t.Fatalf("offset = %v, want 200", got)
	}

	l.ScrollAlign = AlignMiddle
	if got := l.ScrollPositionForIndex(4, nils, 200); got != 125 {
		t.Fatalf("centered offset = %v, want 125", got)
	}
}

func TestVerticalHeightCacheFeedsLayout(t *testing.T) {
	l := NewVerticalLayout()
	l.UseVirtualLayout = true
	l.HasVariableItemDimensions = true
	l.TypicalItem = &testItem{w: 20, h: 50}
	l.HeightCache().Set(0, 80)

	real := &testItem{w: 20, h: 30}
	result := l.Layout([]Item{nil, real}, NewBounds())

	if real.y != 80 {
		t.Fatalf("y = %v, want 80 (cached height)", real.y)
	}
	if result.ContentHeight != 110 {
		t.Fatalf("ContentHeight = %v, want 110", result.ContentHeight)
	}
	if got, ok := l.HeightCache().Get(1).Get(); !ok || got != 30 {
		t.Fatalf("cache[1] = %v %v, want 30 true", got, ok)
	}
}
