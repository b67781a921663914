// internal/config/config.go
package config

type Config struct {
	Display DisplayConfig `yaml:"display"`
}

type DisplayConfig struct {
	Link         LinkConfig          `yaml:"link"`
	Panel        PanelConfig         `yaml:"panel"`
	StatusMemory *StatusMemoryConfig `yaml:"status_memory"`
}

// ---- LINK ----

type LinkConfig struct {
	Port          string `yaml:"port"`
	BaudRate      int    `yaml:"baud_rate"`
	DataBits      int    `yaml:"data_bits"`
	StopBits      int    `yaml:"stop_bits"`
	Parity        string `yaml:"parity"`
	TimeoutMs     int    `yaml:"timeout_ms"`
	ReopenDelayMs int    `yaml:"reopen_delay_ms"`
}

// ---- PANEL ----

type PanelConfig struct {
	TickMs int `yaml:"tick_ms"`

	// Pins name the four BCD address lines, line A (bit 0) first.
	Pins []string `yaml:"pins"`
}

// ---- STATUS MEMORY ----

// StatusMemoryConfig enables diagnostics replication. Opt-in.
type StatusMemoryConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	Slot       uint16 `yaml:"slot"`
	DeviceName string `yaml:"device_name"`
	IntervalMs int    `yaml:"interval_ms"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}
