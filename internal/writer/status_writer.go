// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/serial-display/internal/status"
)

// deviceStatusWriter delivers status snapshots into status memory.
type deviceStatusWriter struct {
	plan *StatusPlan
	cli  endpointClient

	needFull bool
	lastRegs []uint16
	nameRegs []uint16
}

// NewDeviceStatusWriter builds a status writer around a plan.
func NewDeviceStatusWriter(plan *StatusPlan, cli endpointClient) (*deviceStatusWriter, error) {
	if plan == nil {
		return nil, errors.New("status writer: plan required")
	}
	if cli == nil {
		return nil, fmt.Errorf("status writer: missing client for endpoint %s", plan.Endpoint)
	}

	return &deviceStatusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		nameRegs: encodeDeviceNameRegs(plan.DeviceName),
	}, nil
}

// WriteStatus delivers a device status snapshot into status memory.
// The first write (and any write after a failure) asserts the full
// block including the device name; later writes touch only the live
// slots whose values changed.
func (sw *deviceStatusWriter) WriteStatus(s status.Snapshot) error {
	baseAddr := sw.baseAddr()
	regs := sw.fullBlockRegs(s)

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		if err := sw.cli.WriteRegisters(sw.plan.UnitID, baseAddr, regs); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.lastRegs = regs
		return nil
	}

	var errs []string

	// Live slots only; the name never changes after the full assert.
	for slot := 0; slot < status.SlotReservedStart; slot++ {
		if regs[slot] == sw.lastRegs[slot] {
			continue
		}
		if err := sw.cli.WriteRegisters(
			sw.plan.UnitID,
			baseAddr+uint16(slot),
			regs[slot:slot+1],
		); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d write failed: %v", slot, err))
		} else {
			sw.lastRegs[slot] = regs[slot]
		}
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt — re-assert on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *deviceStatusWriter) baseAddr() uint16 {
	// Each device owns a fixed SlotsPerDevice block.
	return sw.plan.BaseSlot * status.SlotsPerDevice
}

func (sw *deviceStatusWriter) fullBlockRegs(s status.Snapshot) []uint16 {
	regs := status.Encode(s)

	// Reserved slots stay zero. Device name always lives at the end
	// of the block.
	for i := 0; i < status.SlotDeviceNameSlots && i < len(sw.nameRegs); i++ {
		regs[status.SlotDeviceNameStart+i] = sw.nameRegs[i]
	}

	return regs
}

// encodeDeviceNameRegs packs up to 16 ASCII characters into 8 uint16
// registers, two big-endian bytes per register.
func encodeDeviceNameRegs(name string) []uint16 {
	out := make([]uint16, status.SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > status.DeviceNameMaxChars {
		b = b[:status.DeviceNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < status.DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
