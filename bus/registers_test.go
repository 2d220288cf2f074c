package bus_test

import (
	"testing"

	"github.com/bdwalton/snes816/bus"
	"github.com/stretchr/testify/assert"
)

// tickThroughFrame advances the router by enough cycles to guarantee at
// least one full scanline sweep, regardless of where in the frame it
// starts from.
func tickThroughFrame(r *bus.Router) {
	r.Tick(400_000)
}

func TestNMITriggersOnVBlankEdge(t *testing.T) {
	r := newTestRouter(t)

	r.Write(bus.Address{Bank: 0x00, Offset: 0x4200}, 0x80) // enable NMI
	tickThroughFrame(r)

	assert.True(t, r.NMIPending())
	// CheckAndResetNMI clears the flag; it must not re-fire without a
	// fresh VBlank edge.
	assert.False(t, r.NMIPending())
}

func TestNMINotPendingWhenDisabled(t *testing.T) {
	r := newTestRouter(t)

	tickThroughFrame(r)

	assert.False(t, r.NMIPending())
}

func TestIRQTriggersOnRasterRowMatch(t *testing.T) {
	r := newTestRouter(t)

	const targetRow = 100
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4209}, targetRow) // IRQ row low byte
	r.Write(bus.Address{Bank: 0x00, Offset: 0x420A}, 0x00)      // IRQ row high bit
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4200}, 0x20)      // enable row-match IRQ

	tickThroughFrame(r)

	assert.True(t, r.IRQPending())
	assert.False(t, r.IRQPending())
}

func TestIRQNotPendingWhenConditionNever(t *testing.T) {
	r := newTestRouter(t)

	r.Write(bus.Address{Bank: 0x00, Offset: 0x4209}, 100)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x420A}, 0x00)
	// $4200 left at 0x00: IrqNever, row/column configured but disabled.

	tickThroughFrame(r)

	assert.False(t, r.IRQPending())
}

func TestDMAPendingReportsChannelMaskAndClears(t *testing.T) {
	r := newTestRouter(t)

	r.Write(bus.Address{Bank: 0x00, Offset: 0x420B}, 0x05) // trigger channels 0 and 2

	mask, pending := r.DMAPending()
	assert.True(t, pending)
	assert.Equal(t, uint8(0x05), mask)

	_, pending = r.DMAPending()
	assert.False(t, pending)
}
