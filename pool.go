package dispatch

// poolStorage serves registrations from a preallocated slot array via an
// intrusive free list. Bucket count and slot count are fixed at construction;
// exhaustion is reported, never grown past. Intended for memory-bounded use
// where allocation after startup is undesirable.
type poolStorage struct {
	table      []*node
	slots      []node
	free       *node
	maxNameLen int
}

func newPoolStorage(buckets, capacity, maxTriggerLen int) *poolStorage {
	p := &poolStorage{
		table:      make([]*node, buckets),
		slots:      make([]node, capacity),
		maxNameLen: maxTriggerLen,
	}
	p.reset()
	return p
}

func (p *poolStorage) acquire(trigger string) (*node, error) {
	// Over-long names are rejected outright rather than truncated: a
	// truncated name would silently match the wrong registrations.
	if len(trigger) > p.maxNameLen {
		return nil, ErrTriggerTooLong
	}
	if p.free == nil {
		return nil, ErrPoolExhausted
	}

	n := p.free
	p.free = n.next
	n.next = nil
	return n, nil
}

func (p *poolStorage) release(n *node) {
	*n = node{next: p.free}
	p.free = n
}

func (p *poolStorage) buckets() []*node {
	return p.table
}

func (p *poolStorage) grow(live int) {}

func (p *poolStorage) reset() {
	for i := range p.table {
		p.table[i] = nil
	}

	p.free = nil
	for i := range p.slots {
		p.slots[i] = node{next: p.free}
		p.free = &p.slots[i]
	}
}

func (p *poolStorage) capacity() int {
	return len(p.slots)
}
