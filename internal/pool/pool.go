// Package pool recycles the fixed-size buffers that noshell hands to the
// parser: argument slots for a schema, argv word slices and line buffers
// for the shell. Recycling keeps repeated parses off the allocator.
package pool

import "sync"

// Pool is a typed sync.Pool with an optional reset hook run on Get.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool that builds fresh objects with factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{pool: sync.Pool{New: func() any { return factory() }}}
}

// NewWithReset creates a pool whose objects pass through reset before reuse.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get returns a pooled or freshly built object.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put hands obj back. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj != nil {
		p.pool.Put(obj)
	}
}

// Slots is a pool of slices whose length is fixed at size. Every slice
// returned by Get has all elements zeroed.
type Slots[E any] struct {
	*Pool[[]E]
	size int
}

// NewSlots creates a pool of size-element slices.
func NewSlots[E any](size int) *Slots[E] {
	return &Slots[E]{
		Pool: NewWithReset(
			func() *[]E {
				s := make([]E, size)
				return &s
			},
			func(s *[]E) { clear(*s) },
		),
		size: size,
	}
}

// Size is the length of every slice handed out.
func (s *Slots[E]) Size() int { return s.size }

// Put hands back a slice previously obtained from Get. Slices resized by the
// caller are dropped so that Get always returns size elements.
func (s *Slots[E]) Put(v *[]E) {
	if v == nil || len(*v) != s.size {
		return
	}
	s.Pool.Put(v)
}

// Buffer is a pool of byte buffers with length zero and capacity at least
// size.
type Buffer struct {
	*Pool[[]byte]
	size int
}

// NewBuffer creates a byte buffer pool.
func NewBuffer(size int) *Buffer {
	return &Buffer{
		Pool: NewWithReset(
			func() *[]byte {
				b := make([]byte, 0, size)
				return &b
			},
			func(b *[]byte) { *b = (*b)[:0] },
		),
		size: size,
	}
}

// Put drops buffers that lost their capacity.
func (b *Buffer) Put(v *[]byte) {
	if v == nil || cap(*v) < b.size {
		return
	}
	b.Pool.Put(v)
}
