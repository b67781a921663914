// internal/receiver/serial/port.go
package serial

import (
	"errors"
	"fmt"
	"time"

	gserial "github.com/goburrow/serial"
)

// Port moves single bytes off a local serial device. This adapter is
// transport-only: it maps timeouts and knows nothing about samples.
type Port struct {
	conn gserial.Port
	buf  [1]byte
}

// Config is minimal transport config.
type Config struct {
	Address  string
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
	Timeout  time.Duration
}

// Open opens the serial device.
func Open(cfg Config) (*Port, error) {
	if cfg.Address == "" {
		return nil, errors.New("serial port: address required")
	}

	conn, err := gserial.Open(&gserial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serial port: open %s: %w", cfg.Address, err)
	}

	return &Port{conn: conn}, nil
}

// ReadByte returns the next byte delivered on the link. Reading the
// byte clears the ready condition on the device. ok is false when the
// read timed out with nothing delivered.
func (p *Port) ReadByte() (byte, bool, error) {
	for {
		n, err := p.conn.Read(p.buf[:])
		if err != nil {
			if errors.Is(err, gserial.ErrTimeout) {
				return 0, false, nil
			}
			return 0, false, err
		}
		if n == 0 {
			continue
		}
		return p.buf[0], true, nil
	}
}

// Close closes the serial device.
func (p *Port) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
