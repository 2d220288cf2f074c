package cpu65816_test

import (
	"testing"

	"github.com/bdwalton/snes816/bus"
	"github.com/bdwalton/snes816/cartridge"
	"github.com/bdwalton/snes816/cpu65816"
	"github.com/stretchr/testify/assert"
)

// newTestCPU builds a CPU wired to a real bus.Router over a synthetic
// LoROM cartridge, with program placed starting at $8000 (ROM offset
// 0) and the reset vector pointed at it. Tests write their program
// directly into the ROM image since bus.Router refuses writes to ROM,
// matching real hardware.
func newTestCPU(t *testing.T, program []byte) (*cpu65816.CPU, *bus.Router) {
	t.Helper()
	data := make([]byte, 0x10000)
	copy(data, program)
	data[0x7FFC] = 0x00
	data[0x7FFD] = 0x80
	r := bus.NewRouter(&cartridge.ROM{Mode: cartridge.LoROM, Data: data, Sram: make([]byte, 0x2000)})
	c := cpu65816.New(r)
	return c, r
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU(t, nil)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.True(t, c.E)
	assert.True(t, c.P.Has(cpu65816.FlagIndex8))
	assert.True(t, c.P.Has(cpu65816.FlagMemory8))
}

func TestLDAImmediate(t *testing.T) {
	c, _ := newTestCPU(t, []byte{0xA9, 0x42}) // LDA #$42
	c.Step()
	assert.Equal(t, uint16(0x0042), c.A)
	assert.False(t, c.P.Has(cpu65816.FlagZero))
	assert.False(t, c.P.Has(cpu65816.FlagNegative))
}

func TestLDAImmediateSetsZeroFlag(t *testing.T) {
	c, _ := newTestCPU(t, []byte{0xA9, 0x00})
	c.Step()
	assert.True(t, c.P.Has(cpu65816.FlagZero))
}

func TestXCEEntersNativeMode(t *testing.T) {
	// CLC; XCE switches E<-C(0), so E becomes false (native mode).
	c, _ := newTestCPU(t, []byte{0x18, 0xFB})
	c.Step() // CLC
	c.Step() // XCE
	assert.False(t, c.E)
}

func TestREPWidensAccumulator(t *testing.T) {
	program := []byte{
		0x18,       // CLC
		0xFB,       // XCE -> native mode
		0xC2, 0x20, // REP #$20 -> clear M, 16-bit accumulator
		0xA9, 0x34, 0x12, // LDA #$1234 (now a 2-byte immediate)
	}
	c, _ := newTestCPU(t, program)
	c.Step()
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, uint16(0x1234), c.A)
}

func TestSEPNarrowsIndexAndTruncates(t *testing.T) {
	program := []byte{
		0x18,       // CLC
		0xFB,       // XCE -> native
		0xC2, 0x10, // REP #$10 -> 16-bit index
		0xA2, 0x34, 0x12, // LDX #$1234
		0xE2, 0x10, // SEP #$10 -> 8-bit index, truncates X
	}
	c, _ := newTestCPU(t, program)
	for i := 0; i < 5; i++ {
		c.Step()
	}
	assert.Equal(t, uint16(0x0034), c.X)
}

func TestBranchTaken(t *testing.T) {
	program := []byte{
		0xA9, 0x00, // LDA #$00 -> sets Z
		0xF0, 0x02, // BEQ +2
		0xA9, 0xFF, // (skipped) LDA #$FF
		0xA9, 0x11, // LDA #$11
	}
	c, r := newTestCPU(t, program)
	before := r.Clock()
	c.Step() // LDA #$00
	c.Step() // BEQ taken
	after := r.Clock()
	assert.Greater(t, after, before)
	c.Step() // LDA #$11 (branch landed here)
	assert.Equal(t, uint16(0x0011), c.A)
}

func TestBranchNotTaken(t *testing.T) {
	program := []byte{
		0xA9, 0x01, // LDA #$01 -> Z clear
		0xF0, 0x02, // BEQ +2 (not taken)
		0xA9, 0xFF, // LDA #$FF (falls through here)
	}
	c, _ := newTestCPU(t, program)
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, uint16(0x00FF), c.A)
}

func TestADCOverflow(t *testing.T) {
	// 8-bit ADC: 0x7F + 0x01 overflows into negative.
	program := []byte{
		0xA9, 0x7F, // LDA #$7F
		0x18,       // CLC
		0x69, 0x01, // ADC #$01
	}
	c, _ := newTestCPU(t, program)
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, uint16(0x0080), c.A)
	assert.True(t, c.P.Has(cpu65816.FlagOverflow))
	assert.True(t, c.P.Has(cpu65816.FlagNegative))
}

func TestStackBalancePHAPLA(t *testing.T) {
	program := []byte{
		0xA9, 0x99, // LDA #$99
		0x48, // PHA
		0xA9, 0x00, // LDA #$00
		0x68, // PLA
	}
	c, _ := newTestCPU(t, program)
	startS := c.S
	for i := 0; i < 4; i++ {
		c.Step()
	}
	assert.Equal(t, uint16(0x0099), c.A)
	assert.Equal(t, startS, c.S)
}

func TestJSRRTSStackBalance(t *testing.T) {
	program := []byte{
		0x20, 0x06, 0x80, // JSR $8006
		0xA9, 0xEE, // LDA #$EE (not executed directly; RTS lands here)
		0xEA, // NOP (padding, address $8005)
		0x60, // RTS, the subroutine at $8006
	}
	c, _ := newTestCPU(t, program)
	startS := c.S
	c.Step() // JSR
	assert.NotEqual(t, startS, c.S)
	c.Step() // RTS
	assert.Equal(t, startS, c.S)
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestEmulationStackConfinedToPage1(t *testing.T) {
	c, _ := newTestCPU(t, []byte{0x48}) // PHA with A=0
	c.S = 0x0100
	c.Step()
	assert.Equal(t, uint16(0x01FF), c.S, "emulation-mode stack must wrap within bank-0 page 1")
}

func TestDeterministicReset(t *testing.T) {
	c1, _ := newTestCPU(t, []byte{0xA9, 0x42})
	c2, _ := newTestCPU(t, []byte{0xA9, 0x42})
	c1.Step()
	c2.Step()
	assert.Equal(t, c1.String(), c2.String())
}
