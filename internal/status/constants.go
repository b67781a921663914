// internal/status/constants.go
package status

// Status memory block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per device.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the device health state.
const SlotHealthCode = 0

// SlotLastSample holds the most recently received link byte.
const SlotLastSample = 1

// SlotDisplayCode holds the quantized display code for that byte.
const SlotDisplayCode = 2

// SlotRxCountHi and SlotRxCountLo hold the delivery counter as a
// 32-bit big-endian pair. The counter wraps at 2^32.
const SlotRxCountHi = 3
const SlotRxCountLo = 4

// SlotSecondsStale holds how long the link has delivered nothing new.
const SlotSecondsStale = 5

// ---- RESERVED RANGE ----

// Slots 6–10 are reserved for future use.
const SlotReservedStart = 6
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state before any byte arrived.
const HealthUnknown uint16 = 0

// HealthOK represents a live link.
const HealthOK uint16 = 1

// HealthError represents a device error state.
const HealthError uint16 = 2

// HealthStale represents a link that stopped delivering new bytes.
const HealthStale uint16 = 3
