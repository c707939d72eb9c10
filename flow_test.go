package flow

// testItem is a minimal positionable item for layout tests. It implements
// every optional capability; zero values behave like an item that lacks
// them (no exclusion, no hints, unconstrained).
type testItem struct {
	x, y float32
	w, h float32

	minW, minH float32
	maxW, maxH float32

	excluded bool
	data     *ItemLayoutData
}

func (t *testItem) Position() (float32, float32)  { return t.x, t.y }
func (t *testItem) SetPosition(x, y float32)      { t.x, t.y = x, y }
func (t *testItem) Size() (float32, float32)      { return t.w, t.h }
func (t *testItem) SetSize(w, h float32)          { t.w, t.h = w, h }
func (t *testItem) MinSize() (float32, float32)   { return t.minW, t.minH }
func (t *testItem) MaxSize() (float32, float32)   { return t.maxW, t.maxH }
func (t *testItem) ExcludeFromLayout() bool       { return t.excluded }
func (t *testItem) LayoutData() *ItemLayoutData   { return t.data }

// sized builds a row of test items from width/height pairs.
func sized(dims ...float32) []*testItem {
	items := make([]*testItem, 0, len(dims)/2)
	for i := 0; i+1 < len(dims); i += 2 {
		items = append(items, &testItem{w: dims[i], h: dims[i+1]})
	}
	return items
}

// asItems widens a concrete slice for the layout API.
func asItems(items []*testItem) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
