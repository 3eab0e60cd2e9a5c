package game

import "github.com/tomz197/donthitclouds/internal/object"

// markerQueue holds the mile markers that can still score, oldest first.
type markerQueue struct {
	order   []uint64
	pending map[uint64]*object.MileMarker
}

func newMarkerQueue() markerQueue {
	return markerQueue{pending: make(map[uint64]*object.MileMarker)}
}

func (q *markerQueue) push(m *object.MileMarker) {
	q.order = append(q.order, m.ID)
	q.pending[m.ID] = m
}

// head returns the oldest pending marker.
func (q *markerQueue) head() (*object.MileMarker, bool) {
	if len(q.order) == 0 {
		return nil, false
	}
	return q.pending[q.order[0]], true
}

func (q *markerQueue) pop() {
	if len(q.order) == 0 {
		return
	}
	delete(q.pending, q.order[0])
	q.order[0] = 0
	q.order = q.order[1:]
}

// drop removes a marker wherever it is, e.g. when it leaves the track
// without scoring.
func (q *markerQueue) drop(id uint64) bool {
	if _, ok := q.pending[id]; !ok {
		return false
	}
	delete(q.pending, id)
	for i, v := range q.order {
		if v == id {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	return true
}

func (q *markerQueue) len() int {
	return len(q.order)
}
