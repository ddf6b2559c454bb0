package ordered

import (
	"reflect"
	"testing"
)

func TestInsertPreservesOrderAndRejectsDuplicates(t *testing.T) {
	s := New[string]()
	for _, v := range []string{"a", "b", "a", "c", "b"} {
		s.Insert(v)
	}
	want := []string{"a", "b", "c"}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	s := NewFrom("a", "b", "c", "d")
	if !s.Remove("b") {
		t.Fatal("Remove(\"b\") = false, want true")
	}
	want := []string{"a", "c", "d"}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if s.Remove("z") {
		t.Error("Remove of absent value reported success")
	}
}

func TestContains(t *testing.T) {
	s := NewFrom(1, 2, 3)
	if !s.Contains(2) {
		t.Error("Contains(2) = false, want true")
	}
	if s.Contains(9) {
		t.Error("Contains(9) = true, want false")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewFrom("x", "y")
	c := s.Clone()
	c.Insert("z")
	if s.Contains("z") {
		t.Error("mutating clone affected original")
	}
	if !c.Contains("z") {
		t.Error("clone missing inserted value")
	}
}

func TestNilSeqIsEmpty(t *testing.T) {
	var s *UniqueSeq[int]
	if s.Len() != 0 {
		t.Errorf("Len() on nil = %d, want 0", s.Len())
	}
	if s.Values() != nil {
		t.Errorf("Values() on nil = %v, want nil", s.Values())
	}
}
