package sparse

import (
	"testing"
)

func TestSet_InsertContains(t *testing.T) {
	s := New(10)

	if s.Contains(3) {
		t.Error("empty set contains 3")
	}
	s.Insert(3)
	s.Insert(7)
	s.Insert(0)

	for _, v := range []uint32{0, 3, 7} {
		if !s.Contains(v) {
			t.Errorf("missing %d", v)
		}
	}
	for _, v := range []uint32{1, 2, 9} {
		if s.Contains(v) {
			t.Errorf("unexpectedly contains %d", v)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_DuplicateInsert(t *testing.T) {
	s := New(4)
	s.Insert(2)
	s.Insert(2)
	s.Insert(2)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSet_Clear(t *testing.T) {
	s := New(8)
	s.Insert(1)
	s.Insert(5)
	s.Clear()

	if !s.IsEmpty() {
		t.Error("set not empty after Clear")
	}
	if s.Contains(1) || s.Contains(5) {
		t.Error("cleared set still reports members")
	}

	// Reusable after Clear; stale index entries must not leak membership.
	s.Insert(5)
	if !s.Contains(5) || s.Contains(1) {
		t.Error("membership wrong after Clear and reinsert")
	}
}

func TestSet_ValuesOrder(t *testing.T) {
	s := New(16)
	want := []uint32{9, 4, 11, 0}
	for _, v := range want {
		s.Insert(v)
	}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() has %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSet_OutOfRangeContains(t *testing.T) {
	s := New(4)
	if s.Contains(100) {
		t.Error("Contains(100) = true for capacity-4 set")
	}
}
