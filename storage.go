package dispatch

import "github.com/google/uuid"

// node is one registration slot linked into a bucket chain. Within a bucket,
// nodes sharing a trigger name are kept in non-increasing priority order with
// equal priorities in registration order; nodes for different names may
// interleave when their hashes collide.
type node struct {
	id       uuid.UUID
	trigger  string
	priority Priority
	once     bool
	fn       Callback
	fnPtr    uintptr
	owner    any
	next     *node
}

// storage provides registration-slot lifecycle and bucket storage for the
// trigger index. Implementations are chosen at construction time: heapStorage
// grows with load, poolStorage is fixed-capacity for bounded-memory use.
type storage interface {
	// acquire returns a blank slot for the given trigger name or an error
	// when a capacity or validation constraint is violated. The caller fills
	// the slot and links it into a bucket.
	acquire(trigger string) (*node, error)

	// release returns an unlinked slot to the storage.
	release(n *node)

	// buckets exposes the live bucket array. Callers index it with
	// bucketIndex and may unlink nodes in place.
	buckets() []*node

	// grow gives the storage a chance to resize before an insert raises the
	// live count. Fixed-capacity storage ignores it.
	grow(live int)

	// reset drops every chain and returns the storage to its initial unused
	// state.
	reset()

	// capacity reports the maximum number of registrations, 0 for unbounded.
	capacity() int
}

// heapStorage allocates slots individually from the garbage-collected heap
// and doubles its bucket array when the load factor reaches 3/4.
type heapStorage struct {
	table   []*node
	initial int
}

func newHeapStorage(buckets int) *heapStorage {
	return &heapStorage{
		table:   make([]*node, buckets),
		initial: buckets,
	}
}

func (s *heapStorage) acquire(trigger string) (*node, error) {
	return &node{}, nil
}

func (s *heapStorage) release(n *node) {
	// Drop references so a released slot cannot keep callbacks or owners
	// reachable.
	*n = node{}
}

func (s *heapStorage) buckets() []*node {
	return s.table
}

func (s *heapStorage) grow(live int) {
	if live*4 < len(s.table)*3 {
		return
	}

	next := make([]*node, len(s.table)*2)
	tails := make([]*node, len(next))

	// Rehash in forward traversal order, appending to each new bucket's
	// tail. Nodes sharing a trigger name rehash to the same bucket, so
	// appending preserves their priority and registration order.
	for _, head := range s.table {
		for n := head; n != nil; {
			after := n.next
			n.next = nil

			idx := bucketIndex(n.trigger, len(next))
			if tails[idx] == nil {
				next[idx] = n
			} else {
				tails[idx].next = n
			}
			tails[idx] = n

			n = after
		}
	}

	s.table = next
}

func (s *heapStorage) reset() {
	s.table = make([]*node, s.initial)
}

func (s *heapStorage) capacity() int {
	return 0
}
