package game

import (
	"testing"

	"github.com/tomz197/donthitclouds/internal/object"
)

func TestMarkerQueue(t *testing.T) {
	q := newMarkerQueue()
	if _, ok := q.head(); ok {
		t.Fatalf("empty queue has a head")
	}

	var track object.Track
	for id := uint64(1); id <= 3; id++ {
		q.push(object.NewMileMarker(id, 0, 0, 1, track))
	}

	if !q.drop(2) || q.drop(2) {
		t.Fatalf("drop should succeed exactly once")
	}
	if m, _ := q.head(); m.ID != 1 {
		t.Fatalf("head = %d, want 1", m.ID)
	}
	q.pop()
	if m, _ := q.head(); m.ID != 3 {
		t.Fatalf("head = %d, want 3", m.ID)
	}
	q.pop()
	q.pop()
	if q.len() != 0 {
		t.Fatalf("len = %d, want 0", q.len())
	}
}
