package benchmark_test

import (
	"slices"
	"testing"

	"github.com/dzonerzy/go-noshell/internal/fuzzy"
	"github.com/dzonerzy/go-noshell/internal/intern"
	"github.com/dzonerzy/go-noshell/internal/pool"
	"github.com/dzonerzy/go-noshell/parser"
)

var candidates = []string{
	"help", "version", "verbose", "config", "output", "input",
	"force", "debug", "port", "host", "timeout", "retry",
}

func BenchmarkFuzzyClosest(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fuzzy.Closest("verbos", slices.Values(candidates), 2)
	}
}

func BenchmarkFuzzyDistance(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fuzzy.Distance("configuration", "configration", 3)
	}
}

func BenchmarkIntern(b *testing.B) {
	in := intern.New(0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		in.Intern(candidates[i%len(candidates)])
	}
}

func BenchmarkInternParallel(b *testing.B) {
	in := intern.New(0)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			in.Intern(candidates[i%len(candidates)])
			i++
		}
	})
}

func BenchmarkArgSlots(b *testing.B) {
	slots := pool.NewSlots[parser.Arg](parser.DefaultCapacity)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := slots.Get()
		slots.Put(buf)
	}
}
