// internal/writer/types.go
package writer

import "github.com/tamzrod/serial-display/internal/status"

// StatusPlan describes where the status block lives.
type StatusPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
}

// StatusWriter is the delivery-only contract for device status.
// It receives a snapshot and writes it verbatim.
// No logic, no state, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// endpointClient is the exact contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
