package slotmap

import (
	"errors"
	"testing"
)

func TestInsertAndGet(t *testing.T) {
	m := New[string](4)

	h, err := m.Insert("alpha")
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	v, ok := m.Get(h)
	if !ok {
		t.Fatal("Get() did not resolve a fresh handle")
	}
	if *v != "alpha" {
		t.Errorf("Get() = %q, want %q", *v, "alpha")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestZeroHandleNeverResolves(t *testing.T) {
	m := New[int](4)
	if _, err := m.Insert(1); err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	if _, ok := m.Get(Handle{}); ok {
		t.Error("zero handle resolved")
	}
	if !(Handle{}).IsZero() {
		t.Error("IsZero() = false for zero handle")
	}
}

func TestHandleFreshness(t *testing.T) {
	// A removed handle must stay dead even after its slot is reused,
	// and the new occupant's handle must resolve to the new value only.
	m := New[string](2)

	h1, err := m.Insert("old")
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}

	if !m.Remove(h1) {
		t.Fatal("Remove() of a valid handle returned false")
	}
	if _, ok := m.Get(h1); ok {
		t.Error("removed handle still resolves")
	}

	h2, err := m.Insert("new")
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	if h2.Index != h1.Index {
		t.Fatalf("expected slot reuse, got index %d vs %d", h2.Index, h1.Index)
	}
	if h2.Generation == h1.Generation {
		t.Error("reused slot kept the old generation")
	}

	if _, ok := m.Get(h1); ok {
		t.Error("stale handle resolves after slot reuse")
	}
	v, ok := m.Get(h2)
	if !ok {
		t.Fatal("fresh handle does not resolve")
	}
	if *v != "new" {
		t.Errorf("fresh handle resolved to %q, want %q", *v, "new")
	}
}

func TestRemoveStaleHandle(t *testing.T) {
	m := New[int](2)

	h, err := m.Insert(7)
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	if !m.Remove(h) {
		t.Fatal("first Remove() returned false")
	}

	// Double remove is a reported no-op, not corruption.
	if m.Remove(h) {
		t.Error("second Remove() of the same handle returned true")
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after double remove, want 0", m.Len())
	}

	// Removing with a stale generation after reuse must not evict
	// the new occupant.
	h2, err := m.Insert(8)
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	if m.Remove(h) {
		t.Error("stale handle removed the slot's new occupant")
	}
	if _, ok := m.Get(h2); !ok {
		t.Error("new occupant lost after stale Remove()")
	}
}

func TestIterationMasking(t *testing.T) {
	// After removing a non-trailing entry, All must yield exactly N-1
	// entries, none of them the removed one, in original relative order.
	m := New[int](8)

	handles := make([]Handle, 0, 5)
	for i := 0; i < 5; i++ {
		h, err := m.Insert(i * 10)
		if err != nil {
			t.Fatalf("Insert() failed: %v", err)
		}
		handles = append(handles, h)
	}

	if !m.Remove(handles[2]) {
		t.Fatal("Remove() failed")
	}

	var got []int
	m.All(func(h Handle, v *int) bool {
		got = append(got, *v)
		return true
	})

	want := []int{0, 10, 30, 40}
	if len(got) != len(want) {
		t.Fatalf("All yielded %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All order mismatch at %d: got %v, want %v", i, got, want)
			break
		}
	}
}

func TestIterationIsRestartable(t *testing.T) {
	m := New[int](4)
	for i := 0; i < 3; i++ {
		if _, err := m.Insert(i); err != nil {
			t.Fatalf("Insert() failed: %v", err)
		}
	}

	count := func() int {
		n := 0
		m.All(func(Handle, *int) bool {
			n++
			return true
		})
		return n
	}

	if first, second := count(), count(); first != 3 || second != 3 {
		t.Errorf("restarted iteration gave %d then %d, want 3 and 3", first, second)
	}

	// Early stop leaves the map reusable.
	stopped := 0
	m.All(func(Handle, *int) bool {
		stopped++
		return false
	})
	if stopped != 1 {
		t.Errorf("early-stopped iteration visited %d entries, want 1", stopped)
	}
}

func TestCapacityExceeded(t *testing.T) {
	m := New[int](2)

	h1, _ := m.Insert(1)
	h2, _ := m.Insert(2)

	if _, err := m.Insert(3); !errors.Is(err, ErrCapacity) {
		t.Fatalf("Insert() into a full map gave %v, want ErrCapacity", err)
	}

	// Existing entries are untouched.
	if v, ok := m.Get(h1); !ok || *v != 1 {
		t.Error("first entry damaged by failed insert")
	}
	if v, ok := m.Get(h2); !ok || *v != 2 {
		t.Error("second entry damaged by failed insert")
	}

	// Freeing a slot makes insertion possible again.
	m.Remove(h1)
	if _, err := m.Insert(3); err != nil {
		t.Errorf("Insert() after Remove() failed: %v", err)
	}
}

func TestFind(t *testing.T) {
	m := New[int](8)
	for i := 0; i < 4; i++ {
		if _, err := m.Insert(i); err != nil {
			t.Fatalf("Insert() failed: %v", err)
		}
	}

	h, v, ok := m.Find(func(v *int) bool { return *v >= 2 })
	if !ok {
		t.Fatal("Find() found nothing")
	}
	if *v != 2 {
		t.Errorf("Find() returned %d, want first match 2", *v)
	}
	if got, ok := m.Get(h); !ok || *got != 2 {
		t.Error("handle returned by Find() does not resolve to the match")
	}

	if _, _, ok := m.Find(func(v *int) bool { return *v > 100 }); ok {
		t.Error("Find() matched a nonexistent value")
	}
}

func TestChurnKeepsHandlesDistinct(t *testing.T) {
	// Continuous insert/remove cycles on a small map: no stale handle may
	// ever resolve, and every live handle must resolve to its own value.
	m := New[int](4)
	live := map[Handle]int{}
	var dead []Handle

	next := 0
	for round := 0; round < 100; round++ {
		for m.Len() < m.Cap() {
			h, err := m.Insert(next)
			if err != nil {
				t.Fatalf("Insert() failed: %v", err)
			}
			live[h] = next
			next++
		}

		// Remove half the live entries.
		i := 0
		for h := range live {
			if i%2 == 0 {
				if !m.Remove(h) {
					t.Fatalf("Remove() of live handle failed")
				}
				dead = append(dead, h)
				delete(live, h)
			}
			i++
		}

		for h, want := range live {
			v, ok := m.Get(h)
			if !ok {
				t.Fatalf("live handle %v stopped resolving", h)
			}
			if *v != want {
				t.Fatalf("handle %v resolved to %d, want %d", h, *v, want)
			}
		}
		for _, h := range dead {
			if _, ok := m.Get(h); ok {
				t.Fatalf("dead handle %v resolves", h)
			}
		}
	}
}

func TestOccupiedRangeNeverShrinks(t *testing.T) {
	m := New[int](4)

	var hs []Handle
	for i := 0; i < 4; i++ {
		h, _ := m.Insert(i)
		hs = append(hs, h)
	}
	for _, h := range hs {
		m.Remove(h)
	}

	if m.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Len())
	}

	// Empty map iterates over the masked range without yielding anything.
	m.All(func(Handle, *int) bool {
		t.Error("All yielded an entry from an empty map")
		return false
	})

	// And the full capacity is still available through the free list.
	for i := 0; i < 4; i++ {
		if _, err := m.Insert(i); err != nil {
			t.Fatalf("Insert() after drain failed: %v", err)
		}
	}
}
