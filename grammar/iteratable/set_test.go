package iteratable

import "testing"

func TestSetAddContains(t *testing.T) {
	s := New[int]()
	if s.Contains(1) {
		t.Fatal("empty set contains 1")
	}
	if !s.Add(1) {
		t.Fatal("Add(1) on empty set should report growth")
	}
	if s.Add(1) {
		t.Fatal("Add(1) again should report no growth")
	}
	if !s.Contains(1) {
		t.Fatal("set should contain 1")
	}
}

func TestSetUnionDifference(t *testing.T) {
	a := NewFrom(1, 2, 3)
	b := NewFrom(2, 3, 4)
	if !a.Union(b) {
		t.Fatal("union should have grown a")
	}
	if a.Size() != 4 {
		t.Fatalf("expected size 4, got %d", a.Size())
	}
	d := NewFrom(1, 2, 3).Difference(NewFrom(2))
	if d.Size() != 2 || !d.Contains(1) || !d.Contains(3) {
		t.Fatalf("unexpected difference: %v", d.Values())
	}
}

func TestSetIteration(t *testing.T) {
	s := NewFrom("a", "b", "c")
	seen := map[string]bool{}
	s.IterateOnce()
	for s.Next() {
		seen[s.Item()] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected to visit 3 elements, saw %v", seen)
	}
}

func TestSetEquals(t *testing.T) {
	a := NewFrom(1, 2)
	b := NewFrom(2, 1)
	if !a.Equals(b) {
		t.Fatal("sets with same elements in different insertion order should be equal")
	}
}
