// internal/receiver/builder.go
package receiver

import (
	"time"

	cfg "github.com/tamzrod/serial-display/internal/config"
	rserial "github.com/tamzrod/serial-display/internal/receiver/serial"
	"github.com/tamzrod/serial-display/internal/sample"
)

// Build constructs a Receiver and wires the serial port lifecycle.
// The port is opened once up front (fail fast at startup); if the
// link later dies the receiver discards it and reopens through the
// factory. No retries beyond that, no semantics.
func Build(lc cfg.LinkConfig, cell *sample.Cell) (*Receiver, error) {
	// port factory: ONE attempt per call
	factory := func() (Port, error) {
		return rserial.Open(rserial.Config{
			Address:  lc.Port,
			BaudRate: lc.BaudRate,
			DataBits: lc.DataBits,
			StopBits: lc.StopBits,
			Parity:   lc.Parity,
			Timeout:  time.Duration(lc.TimeoutMs) * time.Millisecond,
		})
	}

	port, err := factory()
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			ReopenDelay: time.Duration(lc.ReopenDelayMs) * time.Millisecond,
		},
		cell,
		port,
		factory,
	)
}
