// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Display

	// ------------------------------------------------------------
	// LINK DEFAULTS (9600-8-N-1)
	// ------------------------------------------------------------

	if d.Link.BaudRate == 0 {
		d.Link.BaudRate = 9600
	}
	if d.Link.DataBits == 0 {
		d.Link.DataBits = 8
	}
	if d.Link.StopBits == 0 {
		d.Link.StopBits = 1
	}
	if d.Link.Parity == "" {
		d.Link.Parity = "N"
	}
	if d.Link.TimeoutMs == 0 {
		d.Link.TimeoutMs = 500
	}
	if d.Link.ReopenDelayMs == 0 {
		d.Link.ReopenDelayMs = 1000
	}

	// ------------------------------------------------------------
	// PANEL DEFAULTS
	// ------------------------------------------------------------

	if d.Panel.TickMs == 0 {
		d.Panel.TickMs = 1
	}

	// ------------------------------------------------------------
	// STATUS MEMORY DEFAULTS (OPT-IN)
	// ------------------------------------------------------------

	sm := d.StatusMemory
	if sm == nil {
		return
	}

	if sm.IntervalMs == 0 {
		sm.IntervalMs = 1000
	}
	if sm.TimeoutMs == 0 {
		sm.TimeoutMs = 1000
	}

	// Name truncation only; ASCII already validated. Slot math,
	// packing, and runtime writes belong to later stages.
	if len(sm.DeviceName) > 16 {
		sm.DeviceName = sm.DeviceName[:16]
	}
}
