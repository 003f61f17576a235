package entity

// Pool is a fixed-capacity slot arena with a free-running round-robin
// cursor. Alloc never searches for a free slot: when the pool is saturated
// the cursor wraps and the oldest slot is reused, implicitly destroying
// whatever occupied it. Callers must initialize every field of the returned
// slot before the next allocation.
type Pool[T any] struct {
	slots  []T
	cursor int
	live   func(*T) *bool
}

// NewPool creates a pool of the given capacity. live returns the address of
// the slot-occupied flag inside a slot.
func NewPool[T any](capacity int, live func(*T) *bool) *Pool[T] {
	return &Pool[T]{
		slots: make([]T, capacity),
		live:  live,
	}
}

// Alloc marks the next cursor slot occupied and returns it
func (p *Pool[T]) Alloc() *T {
	slot := &p.slots[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.slots)
	*p.live(slot) = true
	return slot
}

// ReleaseAll marks every slot free. The cursor is left where it is.
func (p *Pool[T]) ReleaseAll() {
	for i := range p.slots {
		*p.live(&p.slots[i]) = false
	}
}

// Cap returns the pool capacity
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// At returns the slot at index i regardless of occupancy
func (p *Pool[T]) At(i int) *T {
	return &p.slots[i]
}

// ForEach visits occupied slots in index order
func (p *Pool[T]) ForEach(fn func(*T)) {
	for i := range p.slots {
		if *p.live(&p.slots[i]) {
			fn(&p.slots[i])
		}
	}
}

// Count returns the number of occupied slots
func (p *Pool[T]) Count() int {
	n := 0
	for i := range p.slots {
		if *p.live(&p.slots[i]) {
			n++
		}
	}
	return n
}
