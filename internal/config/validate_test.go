// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal valid config quickly
func valid() *Config {
	return &Config{
		Display: DisplayConfig{
			Link: LinkConfig{
				Port: "/dev/ttyUSB0",
			},
			Panel: PanelConfig{
				Pins: []string{"GPIO17", "GPIO27", "GPIO22", "GPIO23"},
			},
		},
	}
}

// ---- tests ----

func TestValidate_MinimalConfig(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_PortRequired(t *testing.T) {
	cfg := valid()
	cfg.Display.Link.Port = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing port error, got nil")
	}
}

func TestValidate_ExactlyFourPins(t *testing.T) {
	cfg := valid()
	cfg.Display.Panel.Pins = []string{"GPIO17", "GPIO27", "GPIO22"}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected pin count error, got nil")
	}
}

func TestValidate_DuplicatePinsRejected(t *testing.T) {
	cfg := valid()
	cfg.Display.Panel.Pins = []string{"GPIO17", "GPIO17", "GPIO22", "GPIO23"}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected duplicate pin error, got nil")
	}
}

func TestValidate_BadParityRejected(t *testing.T) {
	cfg := valid()
	cfg.Display.Link.Parity = "X"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected parity error, got nil")
	}
}

func TestValidate_NonEightDataBitsRejected(t *testing.T) {
	cfg := valid()
	cfg.Display.Link.DataBits = 7

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected data bits error, got nil")
	}
}

func TestValidate_StatusMemoryEndpointRequired(t *testing.T) {
	cfg := valid()
	cfg.Display.StatusMemory = &StatusMemoryConfig{}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected status endpoint error, got nil")
	}
}

func TestValidate_NonASCIIDeviceNameRejected(t *testing.T) {
	cfg := valid()
	cfg.Display.StatusMemory = &StatusMemoryConfig{
		Endpoint:   "127.0.0.1:1502",
		DeviceName: "дисплей",
	}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected ASCII error, got nil")
	}
}

func TestNormalize_LinkDefaults(t *testing.T) {
	cfg := valid()
	Normalize(cfg)

	l := cfg.Display.Link
	if l.BaudRate != 9600 || l.DataBits != 8 || l.StopBits != 1 || l.Parity != "N" {
		t.Fatalf("link defaults not applied: %+v", l)
	}
	if cfg.Display.Panel.TickMs != 1 {
		t.Fatalf("tick default not applied: %d", cfg.Display.Panel.TickMs)
	}
}

func TestNormalize_DeviceNameTruncated(t *testing.T) {
	cfg := valid()
	cfg.Display.StatusMemory = &StatusMemoryConfig{
		Endpoint:   "127.0.0.1:1502",
		DeviceName: "a-very-long-display-name",
	}
	Normalize(cfg)

	if got := cfg.Display.StatusMemory.DeviceName; len(got) != 16 {
		t.Fatalf("device name not truncated: %q", got)
	}
	if cfg.Display.StatusMemory.IntervalMs != 1000 {
		t.Fatalf("status interval default not applied: %d", cfg.Display.StatusMemory.IntervalMs)
	}
}
