// internal/display/driver.go
package display

import (
	"errors"
	"time"

	"github.com/tamzrod/serial-display/internal/sample"
)

// Lines is the exact contract the driver uses to reach the display
// hardware. Apply asserts the set bits and deasserts the clear bits
// of the four address lines. The driver always passes masks that
// together cover all four lines and never overlap, so one Apply is
// equivalent to a full replace of the 4-bit field: no line is left in
// its previous state.
type Lines interface {
	Apply(set, clear uint8) error
}

// Config is the minimal runtime config the driver needs.
type Config struct {
	Interval time.Duration
}

// Driver is a dumb, clock-driven renderer. It holds no state of its
// own: every render is a pure function of the shared cell at that
// instant. A sample oscillating across a bucket boundary between
// ticks flickers between adjacent codes; that is accepted behavior.
type Driver struct {
	cfg   Config
	cell  *sample.Cell
	lines Lines
}

// New creates a driver with immutable config.
func New(cfg Config, cell *sample.Cell, lines Lines) (*Driver, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("display: interval must be > 0")
	}
	if cell == nil {
		return nil, errors.New("display: sample cell required")
	}
	if lines == nil {
		return nil, errors.New("display: output lines required")
	}
	return &Driver{cfg: cfg, cell: cell, lines: lines}, nil
}

// RenderOnce performs exactly one render cycle: read the sample once,
// quantize, drive the lines. Returns the code that was driven.
func (d *Driver) RenderOnce() (Code, error) {
	code := Quantize(d.cell.Latest())

	set := uint8(code) & LineMask
	clear := ^uint8(code) & LineMask

	if err := d.lines.Apply(set, clear); err != nil {
		return code, err
	}
	return code, nil
}
