package flow

import "sync"

// ============================================================================
// Item Slice Pooling
// ============================================================================
//
// A layout pass collects the items it actually positioned so the alignment
// passes can shift them afterwards. Hosts run layout once per invalidated
// frame, so these scratch slices come from a pool to avoid per-frame
// allocations in large lists.
//
// Usage:
//   positioned := acquireItemSlice(0)
//   ... append during the walk ...
//   releaseItemSlice(positioned)

// itemSlicePool pools []Item scratch slices used within a single pass.
var itemSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]Item, 0, 16)
	},
}

// acquireItemSlice gets a slice from the pool with at least the given length.
// Caller must call releaseItemSlice when done.
func acquireItemSlice(n int) []Item {
	slice := itemSlicePool.Get().([]Item)
	if cap(slice) < n {
		itemSlicePool.Put(slice[:0])
		return make([]Item, n, n*2)
	}
	return slice[:n]
}

// releaseItemSlice returns a slice to the pool. The slice must not be used
// after calling this.
func releaseItemSlice(slice []Item) {
	if slice == nil {
		return
	}
	for i := range slice {
		slice[i] = nil
	}
	if cap(slice) <= 256 {
		itemSlicePool.Put(slice[:0])
	}
}
