package pool

import (
	"sync"
	"testing"
)

type counter struct{ n int }

func TestPoolReset(t *testing.T) {
	p := NewWithReset(func() *counter { return &counter{} }, func(c *counter) { c.n = 0 })
	c := p.Get()
	c.n = 42
	p.Put(c)
	if got := p.Get(); got.n != 0 {
		t.Fatalf("reset not applied, n = %d", got.n)
	}
	p.Put(nil)
}

func TestSlotsAreZeroedAndSized(t *testing.T) {
	s := NewSlots[string](4)
	v := s.Get()
	if len(*v) != 4 {
		t.Fatalf("len = %d, want 4", len(*v))
	}
	(*v)[0] = "dirty"
	s.Put(v)

	w := s.Get()
	for i, e := range *w {
		if e != "" {
			t.Fatalf("slot %d = %q after reuse", i, e)
		}
	}

	short := (*w)[:2]
	s.Put(&short)
	if got := s.Get(); len(*got) != 4 {
		t.Fatalf("resized slice handed out, len = %d", len(*got))
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(64)
	v := b.Get()
	*v = append(*v, "hello"...)
	b.Put(v)
	w := b.Get()
	if len(*w) != 0 || cap(*w) < 64 {
		t.Fatalf("buffer len=%d cap=%d", len(*w), cap(*w))
	}
}

func TestSlotsConcurrent(t *testing.T) {
	s := NewSlots[int](8)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				v := s.Get()
				for i := range *v {
					if (*v)[i] != 0 {
						t.Errorf("non-zero slot from pool")
						return
					}
					(*v)[i] = g + 1
				}
				s.Put(v)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkSlots(b *testing.B) {
	s := NewSlots[string](32)
	b.ReportAllocs()
	for b.Loop() {
		v := s.Get()
		s.Put(v)
	}
}
