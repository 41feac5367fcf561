// Package todo implements the task list domain: tasks, task lists, the
// per-session store rehydrated from a plain snapshot, display ordering and
// title validation.
//
// Nothing in this package performs I/O. Callers load a Snapshot, call
// Rehydrate, operate on the resulting Store and persist Serialize's output.
package todo

import (
	"strconv"
	"sync/atomic"
)

// IDGenerator hands out increasing integer ids for new tasks and lists.
// It is safe for concurrent use. Create one per process and share it.
type IDGenerator struct {
	last atomic.Int64
}

// NewIDGenerator returns a generator whose first id is start+1.
func NewIDGenerator(start int) *IDGenerator {
	g := &IDGenerator{}
	g.last.Store(int64(start))
	return g
}

// Next returns an id strictly greater than every id previously returned or
// observed by g.
func (g *IDGenerator) Next() int {
	return int(g.last.Add(1))
}

// Observe raises the floor of g so that later calls to Next return values
// greater than id. Ids below the current floor are ignored.
func (g *IDGenerator) Observe(id int) {
	for {
		cur := g.last.Load()
		if int64(id) <= cur {
			return
		}
		if g.last.CompareAndSwap(cur, int64(id)) {
			return
		}
	}
}

// ParseID converts an externally supplied id to an int.
// ok is false for anything that cannot reference an entity: non-numeric
// input, values out of int range, and ids below 1.
func ParseID(s string) (id int, ok bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
