// internal/display/runner.go
package display

import (
	"context"
	"log"
	"time"
)

// Run starts the ticker loop and renders once per tick.
// One goroutine. No overlap. No retries: a failed render is logged
// and the next tick replaces it wholesale anyway.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.RenderOnce(); err != nil {
				log.Printf("display: render failed: %v", err)
			}
		}
	}
}
