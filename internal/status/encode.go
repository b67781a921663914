// internal/status/encode.go
package status

// Encode converts a Snapshot into the live slots of a status block.
// Layout is protocol-locked. No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastSample] = s.LastSample
	regs[SlotDisplayCode] = s.DisplayCode
	regs[SlotRxCountHi] = uint16(s.RxCount >> 16)
	regs[SlotRxCountLo] = uint16(s.RxCount)
	regs[SlotSecondsStale] = s.SecondsStale

	return regs
}
