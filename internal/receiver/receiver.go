// internal/receiver/receiver.go
package receiver

import (
	"errors"
	"time"

	"github.com/tamzrod/serial-display/internal/sample"
)

// Port is the exact contract the receiver uses for the serial link.
// ReadByte blocks until one byte is delivered or the port's read
// timeout elapses. ok is false when nothing arrived in time; err is
// reserved for a dead link. Reading a byte consumes it on the device,
// which is the acknowledgement the link requires before it can signal
// the next one — so acknowledge-exactly-once holds by construction.
type Port interface {
	ReadByte() (b byte, ok bool, err error)
	Close() error
}

// Config is the minimal runtime config the receiver needs.
type Config struct {
	// ReopenDelay paces reconnection after a dead port.
	// One attempt per delay period.
	ReopenDelay time.Duration
}

// Receiver copies delivered bytes into the shared cell.
type Receiver struct {
	cfg     Config
	cell    *sample.Cell
	port    Port
	factory func() (Port, error)
}

// New creates a receiver around an open port. factory reopens the
// link when the port dies; it may be nil if the port is trusted.
func New(cfg Config, cell *sample.Cell, port Port, factory func() (Port, error)) (*Receiver, error) {
	if cell == nil {
		return nil, errors.New("receiver: sample cell required")
	}
	if port == nil && factory == nil {
		return nil, errors.New("receiver: port or factory required")
	}
	if cfg.ReopenDelay <= 0 {
		cfg.ReopenDelay = time.Second
	}
	return &Receiver{cfg: cfg, cell: cell, port: port, factory: factory}, nil
}

// HandleByte records one delivered byte: overwrite the latest sample,
// bump the delivery counter. The byte is accepted as-is — no
// validation, no error cases. The new value is visible to the display
// driver on its next tick. Must not block.
func (r *Receiver) HandleByte(b byte) {
	r.cell.SetLatest(b)
	r.cell.IncrementCount()
}
