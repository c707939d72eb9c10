package flow

import "testing"

func TestMeasurementCacheSetGet(t *testing.T) {
	c := NewMeasurementCache(nil)

	if got := c.Get(0); got.IsSet() {
		t.Fatalf("empty cache Get(0) = %v, want unset", got)
	}
	if got := c.Get(-1); got.IsSet() {
		t.Fatalf("Get(-1) = %v, want unset", got)
	}

	c.Set(2, 50)
	if got, ok := c.Get(2).Get(); !ok || got != 50 {
		t.Fatalf("Get(2) = %v %v, want 50 true", got, ok)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	// Slots below a sparse write stay unknown.
	if c.Get(0).IsSet() || c.Get(1).IsSet() {
		t.Fatal("sparse Set filled earlier slots")
	}
}

func TestMeasurementCacheChangeNotification(t *testing.T) {
	changed := 0
	c := NewMeasurementCache(func() { changed++ })

	c.Set(0, 50)
	if changed != 1 {
		t.Fatalf("after first Set changed = %d, want 1", changed)
	}
	// An unchanged write must not fire, or relayout-triggered re-entry
	// would never settle.
	c.Set(0, 50)
	if changed != 1 {
		t.Fatalf("after unchanged Set changed = %d, want 1", changed)
	}
	c.Set(0, 60)
	if changed != 2 {
		t.Fatalf("after differing Set changed = %d, want 2", changed)
	}
}

func TestMeasurementCacheInsertShiftsUp(t *testing.T) {
	c := NewMeasurementCache(nil)
	c.Set(0, 10)
	c.Set(1, 20)
	c.Set(2, 30)

	c.InsertAt(1, Px(15))

	want := []float32{10, 15, 20, 30}
	for i, w := range want {
		if got, ok := c.Get(i).Get(); !ok || got != w {
			t.Fatalf("after InsertAt(1): Get(%d) = %v %v, want %v true", i, got, ok, w)
		}
	}

	// InsertAt with an unknown value leaves a hole.
	c.InsertAt(0, Dim{})
	if c.Get(0).IsSet() {
		t.Fatal("InsertAt(0, unset) produced a set value")
	}
	if got, _ := c.Get(1).Get(); got != 10 {
		t.Fatalf("Get(1) after hole insert = %v, want 10", got)
	}
}

func TestMeasurementCacheRemoveShiftsDown(t *testing.T) {
	c := NewMeasurementCache(nil)
	c.Set(0, 10)
	c.Set(1, 20)
	c.Set(2, 30)

	c.RemoveAt(1)

	if got, _ := c.Get(0).Get(); got != 10 {
		t.Fatalf("Get(0) = %v, want 10", got)
	}
	// What lived at index 2 is now at index 1.
	if got, _ := c.Get(1).Get(); got != 30 {
		t.Fatalf("Get(1) = %v, want 30", got)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	// Out-of-range removals are ignored.
	c.RemoveAt(10)
	c.RemoveAt(-1)
	if c.Len() != 2 {
		t.Fatalf("Len() after no-op removes = %d, want 2", c.Len())
	}
}

func TestMeasurementCacheReset(t *testing.T) {
	c := NewMeasurementCache(nil)
	c.Set(0, 10)
	c.Set(5, 20)

	c.Reset()

	if c.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", c.Len())
	}
	if c.Get(0).IsSet() {
		t.Fatal("Get(0) set after Reset")
	}
}

func TestDim(t *testing.T) {
	var unset Dim
	if unset.IsSet() {
		t.Fatal("zero Dim reports set")
	}
	if got := unset.Or(7); got != 7 {
		t.Fatalf("unset.Or(7) = %v, want 7", got)
	}

	d := Px(12)
	if got, ok := d.Get(); !ok || got != 12 {
		t.Fatalf("Px(12).Get() = %v %v, want 12 true", got, ok)
	}
	if got := d.Or(7); got != 12 {
		t.Fatalf("Px(12).Or(7) = %v, want 12", got)
	}
}
