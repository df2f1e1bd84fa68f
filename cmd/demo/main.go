package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	propbag "github.com/propbag/propbag-go"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Mutable object with dual field access
	order := propbag.New("Order", propbag.WithLogger(logger))
	order.Set("sku", "A-1042")
	order.Set("quantity", 3)
	order.Set("priority", "high")

	fmt.Println(order)
	fmt.Println("sku:", order.Get("sku"))

	// Freeze once the order is finalized
	final := order.Freeze()
	if err := final.Set("quantity", 99); err != nil {
		fmt.Println("rejected:", err)
	}

	// Snapshot the frozen order and ship it as YAML
	snap := final.Snapshot()
	data, err := snap.EncodeYAML()
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Printf("snapshot (version %s):\n%s", snap.Version, data)

	// Rehydrate on the other side
	restored, err := propbag.DecodeSnapshotYAML(data)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	back := propbag.FromSnapshot(restored, propbag.WithLogger(logger))
	fmt.Println("restored:", back)

	// Builder for layered configuration
	cfg := propbag.NewBuilder("ServiceConfig", propbag.WithLogger(logger)).
		Set("listen", ":8080").
		Set("timeout", "5s").
		Build()
	fmt.Println("config:", cfg)

	// Manager keeps hot objects behind string keys
	cache := propbag.NewManager("orders",
		propbag.WithLogger(logger),
		propbag.WithTimeLimit(10*time.Minute),
	)
	cache.Put(final.ID(), final)
	if v, err := cache.Get(final.ID()); err == nil {
		fmt.Println("cached:", v)
	}
	cache.Flush(true)
}
