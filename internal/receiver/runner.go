// internal/receiver/runner.go
package receiver

import (
	"context"
	"log"
	"time"
)

// Run reads the link until the context is cancelled. Timeouts are
// retried immediately. Any other port error discards the port; a
// fresh one is opened through the factory after ReopenDelay.
func (r *Receiver) Run(ctx context.Context) {
	defer func() {
		if r.port != nil {
			r.port.Close()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if r.port == nil {
			if !r.sleep(ctx) {
				return
			}
			p, err := r.factory()
			if err != nil {
				log.Printf("receiver: reopen failed: %v", err)
				continue
			}
			r.port = p
		}

		b, ok, err := r.port.ReadByte()
		switch {
		case err != nil:
			if r.factory == nil {
				log.Printf("receiver: link read failed, no factory to reopen: %v", err)
				return
			}
			log.Printf("receiver: link read failed: %v", err)
			r.port.Close()
			r.port = nil
		case ok:
			r.HandleByte(b)
		}
	}
}

// sleep waits one reopen delay, bailing out on cancellation.
func (r *Receiver) sleep(ctx context.Context) bool {
	t := time.NewTimer(r.cfg.ReopenDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
