// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"io"
	"log/slog"

	propbag "github.com/propbag/propbag-go"
)

// Quiet returns a logger that discards everything, keeping logging cost
// out of the measured path.
func Quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// GenFields creates n fields named f0..f(n-1) with int values.
func GenFields(n int) map[string]any {
	if n < 1 {
		n = 1
	}
	fields := make(map[string]any, n)
	for i := 0; i < n; i++ {
		fields[fmt.Sprintf("f%d", i)] = i
	}
	return fields
}

// GenObject creates a mutable object carrying n generated fields.
func GenObject(n int) *propbag.Object {
	return propbag.New("Bench", propbag.WithLogger(Quiet()), propbag.WithFields(GenFields(n)))
}

// GenImmutable creates a frozen object carrying n generated fields.
func GenImmutable(n int) *propbag.Immutable {
	return propbag.NewImmutable("Bench", GenFields(n), propbag.WithLogger(Quiet()))
}
