// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := &cfg.Display

	// ------------------------------------------------------------
	// LINK VALIDATION
	// ------------------------------------------------------------

	if d.Link.Port == "" {
		return fmt.Errorf("link: port is required")
	}
	if d.Link.BaudRate < 0 {
		return fmt.Errorf("link: baud_rate must not be negative")
	}
	if d.Link.DataBits != 0 && d.Link.DataBits != 8 {
		return fmt.Errorf("link: data_bits must be 8 for one-byte samples")
	}
	if d.Link.StopBits < 0 || d.Link.StopBits > 2 {
		return fmt.Errorf("link: stop_bits out of range")
	}
	switch d.Link.Parity {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("link: parity must be one of N, E, O")
	}
	if d.Link.TimeoutMs < 0 || d.Link.ReopenDelayMs < 0 {
		return fmt.Errorf("link: timeouts must not be negative")
	}

	// ------------------------------------------------------------
	// PANEL VALIDATION
	// ------------------------------------------------------------

	if d.Panel.TickMs < 0 {
		return fmt.Errorf("panel: tick_ms must not be negative")
	}
	if len(d.Panel.Pins) != 4 {
		return fmt.Errorf("panel: exactly 4 address line pins required, got %d", len(d.Panel.Pins))
	}

	seen := make(map[string]struct{}, 4)
	for i, p := range d.Panel.Pins {
		if p == "" {
			return fmt.Errorf("panel: pin %d is empty", i)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("panel: pin %q used for more than one line", p)
		}
		seen[p] = struct{}{}
	}

	// ------------------------------------------------------------
	// STATUS MEMORY VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	sm := d.StatusMemory
	if sm == nil {
		return nil
	}

	if sm.Endpoint == "" {
		return fmt.Errorf("status_memory: endpoint is required when status_memory is set")
	}
	if sm.IntervalMs < 0 || sm.TimeoutMs < 0 {
		return fmt.Errorf("status_memory: intervals must not be negative")
	}

	// device_name sanity (ASCII only)
	for i := 0; i < len(sm.DeviceName); i++ {
		if sm.DeviceName[i] > 0x7F {
			return fmt.Errorf("status_memory: device_name must contain ASCII characters only")
		}
	}

	return nil
}
