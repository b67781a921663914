// internal/sample/cell.go
package sample

import "sync/atomic"

// Cell is the single shared slot between the link receiver and the
// display driver: the latest delivered byte plus a monotonic delivery
// counter. There is no lock. The receiver is the only writer, the
// driver is the only reader, and a read that races a write observes
// either the old or the new byte in full — newest value wins.
type Cell struct {
	latest atomic.Uint32 // low 8 bits hold the sample
	count  atomic.Uint64
}

// New creates the process-lifetime cell. The initial sample is 0.
func New() *Cell {
	return &Cell{}
}

// SetLatest overwrites the stored sample. Called only by the receiver.
func (c *Cell) SetLatest(b byte) {
	c.latest.Store(uint32(b))
}

// Latest returns the most recently stored sample. Called only by the
// display driver. Never mutates.
func (c *Cell) Latest() byte {
	return byte(c.latest.Load())
}

// IncrementCount records one delivered byte. Diagnostics only; the
// display driver never reads it.
func (c *Cell) IncrementCount() {
	c.count.Add(1)
}

// Count returns the total number of delivered bytes.
func (c *Cell) Count() uint64 {
	return c.count.Load()
}
