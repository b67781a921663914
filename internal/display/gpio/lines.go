// internal/display/gpio/lines.go
package gpio

import (
	"errors"
	"fmt"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// Lines drives the four BCD address lines through host GPIO pins.
// Bit i of a mask corresponds to pins[i], least significant line
// first. This process is the sole writer of these pins.
type Lines struct {
	pins [4]gpio.PinIO
}

// Config is minimal transport config.
type Config struct {
	// Pins are periph pin names, address line A (bit 0) first.
	Pins [4]string
}

// New initialises the periph host, resolves the configured pins and
// drives all lines low so the display starts at code 0.
func New(cfg Config) (*Lines, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio: host init failed: %w", err)
	}

	l := &Lines{}
	for i, name := range cfg.Pins {
		if name == "" {
			return nil, errors.New("gpio: pin name required")
		}
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio: no pin named %q", name)
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("gpio: pin %q: %w", name, err)
		}
		l.pins[i] = p
	}
	return l, nil
}

// Apply asserts the set bits and deasserts the clear bits. A bit in
// neither mask leaves its line untouched.
func (l *Lines) Apply(set, clear uint8) error {
	for i, p := range l.pins {
		bit := uint8(1) << uint(i)
		switch {
		case set&bit != 0:
			if err := p.Out(gpio.High); err != nil {
				return fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
			}
		case clear&bit != 0:
			if err := p.Out(gpio.Low); err != nil {
				return fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
			}
		}
	}
	return nil
}
