// Package benchmarks provides performance benchmarks for field access.
package benchmarks

import (
	"fmt"
	"testing"

	propbag "github.com/propbag/propbag-go"
)

func BenchmarkGetByWidth(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("fields=%d", n), func(b *testing.B) {
			o := GenObject(n)
			key := fmt.Sprintf("f%d", n/2)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if o.Get(key) == nil {
					b.Fatal("field vanished")
				}
			}
		})
	}
}

func BenchmarkSetByWidth(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("fields=%d", n), func(b *testing.B) {
			o := GenObject(n)
			key := fmt.Sprintf("f%d", n/2)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := o.Set(key, i); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkToMapByWidth(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("fields=%d", n), func(b *testing.B) {
			o := GenObject(n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if got := o.ToMap(); len(got) != n {
					b.Fatal("copy size mismatch")
				}
			}
		})
	}
}

func BenchmarkStringByWidth(b *testing.B) {
	for _, n := range []int{10, 100} {
		b.Run(fmt.Sprintf("fields=%d", n), func(b *testing.B) {
			o := GenObject(n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if o.String() == "" {
					b.Fatal("empty rendering")
				}
			}
		})
	}
}

func BenchmarkBuilderBuild(b *testing.B) {
	for _, n := range []int{10, 100} {
		b.Run(fmt.Sprintf("fields=%d", n), func(b *testing.B) {
			fields := GenFields(n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				im := propbag.NewBuilder("Bench", propbag.WithLogger(Quiet())).Apply(fields).Build()
				if im.Len() != n {
					b.Fatal("field count mismatch")
				}
			}
		})
	}
}
