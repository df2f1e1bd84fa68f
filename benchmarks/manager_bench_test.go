// Package benchmarks provides performance benchmarks for the manager.
package benchmarks

import (
	"fmt"
	"testing"

	propbag "github.com/propbag/propbag-go"
)

func BenchmarkManagerPut(b *testing.B) {
	m := propbag.NewManager("bench", propbag.WithLogger(Quiet()))
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%d", i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Put(keys[i%len(keys)], i)
	}
}

func BenchmarkManagerGet(b *testing.B) {
	m := propbag.NewManager("bench", propbag.WithLogger(Quiet()))
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%d", i)
		m.Put(keys[i], i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := m.Get(keys[i%len(keys)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkManagerFlush(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("entries=%d", n), func(b *testing.B) {
			m := propbag.NewManager("bench", propbag.WithLogger(Quiet()))

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				for j := 0; j < n; j++ {
					m.Put(fmt.Sprintf("k%d", j), j)
				}
				b.StartTimer()
				m.Flush(true)
			}
		})
	}
}
