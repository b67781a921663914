// cmd/displayd/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/tamzrod/serial-display/internal/config"
	"github.com/tamzrod/serial-display/internal/display"
	dgpio "github.com/tamzrod/serial-display/internal/display/gpio"
	"github.com/tamzrod/serial-display/internal/receiver"
	"github.com/tamzrod/serial-display/internal/sample"
	"github.com/tamzrod/serial-display/internal/status"
	"github.com/tamzrod/serial-display/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: displayd <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	ctx := context.Background()

	// --------------------
	// Shared state (one cell, both handlers)
	// --------------------

	cell := sample.New()

	// --------------------
	// Link receiver
	// --------------------

	rx, err := receiver.Build(cfg.Display.Link, cell)
	if err != nil {
		log.Fatalf("receiver build failed (port=%s): %v", cfg.Display.Link.Port, err)
	}

	// --------------------
	// Display driver
	// --------------------

	var pins [4]string
	copy(pins[:], cfg.Display.Panel.Pins)

	lines, err := dgpio.New(dgpio.Config{Pins: pins})
	if err != nil {
		log.Fatalf("gpio setup failed: %v", err)
	}

	drv, err := display.New(
		display.Config{
			Interval: time.Duration(cfg.Display.Panel.TickMs) * time.Millisecond,
		},
		cell,
		lines,
	)
	if err != nil {
		log.Fatalf("display build failed: %v", err)
	}

	// --------------------
	// Status replication (opt-in)
	// --------------------

	statusWriter, closeWriter, statusEnabled, err := writer.Build(cfg.Display.StatusMemory)
	if err != nil {
		log.Fatalf("status writer build failed: %v", err)
	}
	defer closeWriter()

	// Orchestrator (main-owned snapshot + status ticker)
	if statusEnabled {
		interval := time.Duration(cfg.Display.StatusMemory.IntervalMs) * time.Millisecond

		go func() {
			var snap status.Snapshot
			var lastCount uint64

			// Default snapshot state on start.
			snap.Health = status.HealthUnknown

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			// Full block write on start (identity re-assert).
			if err := statusWriter.WriteStatus(snap); err != nil {
				log.Printf("status write failed on start: %v", err)
			}

			for {
				select {
				case <-ctx.Done():
					return

				case <-ticker.C:
					count := cell.Count()
					b := cell.Latest()

					snap.LastSample = uint16(b)
					snap.DisplayCode = uint16(display.Quantize(b))
					snap.RxCount = uint32(count)

					switch {
					case count == 0:
						snap.Health = status.HealthUnknown

					case count == lastCount:
						// Nothing new since the last status tick.
						snap.Health = status.HealthStale
						if snap.SecondsStale < 65535 {
							snap.SecondsStale++
						}

					default:
						snap.Health = status.HealthOK
						snap.SecondsStale = 0
					}
					lastCount = count

					if err := statusWriter.WriteStatus(snap); err != nil {
						log.Printf("status write failed: %v", err)
					}
				}
			}
		}()
	}

	// --------------------
	// Handlers: receiver producer, display consumer. They never call
	// each other; the cell is the only coupling.
	// --------------------

	go rx.Run(ctx)
	go drv.Run(ctx)

	// --------------------
	// Block forever (daemon-safe, no deadlock)
	// --------------------
	for {
		time.Sleep(time.Hour)
	}
}
