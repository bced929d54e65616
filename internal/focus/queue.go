package focus

import (
	"sync"

	"github.com/mj1618/kakao-a11y/internal/model"
)

// Queue holds synthesized focus signals until the host delivers them.
// It is the one piece of mediator state shared with the host's event
// queue, so it is safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	items []model.RemoteObject
}

func same(a, b model.RemoteObject) bool {
	return a.Key() == b.Key() && a.Generation == b.Generation
}

// Push enqueues a signal for obj. A signal already pending for the same
// observation is not duplicated.
func (q *Queue) Push(obj model.RemoteObject) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, it := range q.items {
		if same(it, obj) {
			return false
		}
	}
	q.items = append(q.items, obj)
	return true
}

// Pending reports whether a signal for obj's observation is queued.
func (q *Queue) Pending(obj model.RemoteObject) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, it := range q.items {
		if same(it, obj) {
			return true
		}
	}
	return false
}

// Len returns the number of queued signals.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Drain empties the queue in FIFO order, splitting signals into those whose
// observation is still current and those describing a superseded one.
func (q *Queue) Drain(current func(model.RemoteObject) bool) (ready, stale []model.RemoteObject) {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()

	for _, it := range items {
		if current(it) {
			ready = append(ready, it)
		} else {
			stale = append(stale, it)
		}
	}
	return ready, stale
}
