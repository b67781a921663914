// internal/writer/builder.go
package writer

import (
	"time"

	cfg "github.com/tamzrod/serial-display/internal/config"
	wmodbus "github.com/tamzrod/serial-display/internal/writer/modbus"
)

// Build wires a status writer from config. Status replication is
// opt-in: a nil config disables it and returns enabled=false.
func Build(sm *cfg.StatusMemoryConfig) (StatusWriter, func() error, bool, error) {
	if sm == nil {
		return nil, func() error { return nil }, false, nil
	}

	cli, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: sm.Endpoint,
		Timeout:  time.Duration(sm.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, false, err
	}

	sw, err := NewDeviceStatusWriter(&StatusPlan{
		Endpoint:   sm.Endpoint,
		UnitID:     sm.UnitID,
		BaseSlot:   sm.Slot,
		DeviceName: sm.DeviceName,
	}, cli)
	if err != nil {
		_ = cli.Close()
		return nil, nil, false, err
	}

	return sw, cli.Close, true, nil
}
