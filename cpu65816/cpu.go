// Package cpu65816 implements the 65C816 instruction engine: registers
// and flags, the operand-width-generic accessor model, the 22
// addressing modes, the opcode dispatch table, and interrupt dispatch.
// Decimal-mode arithmetic, sub-instruction cycle accuracy, and a
// debugger are out of scope; invalid opcodes and decimal-mode ADC/SBC
// are fatal. WAI halts the CPU until an NMI or unmasked IRQ is serviced;
// STP halts it until Reset.
package cpu65816

import (
	"fmt"

	"github.com/bdwalton/snes816/bus"
)

const ioCycles uint64 = 6

// Bus is what the CPU needs from the memory system: byte/word access
// and the ability to observe/service pending NMI, IRQ, and DMA
// requests. bus.Router satisfies this.
type Bus interface {
	Read(addr bus.Address) uint8
	Write(addr bus.Address, value uint8)
	Read16(addr bus.Address) uint16
	Write16(addr bus.Address, value uint16)
	Tick(cycles uint64)
	NMIPending() bool
	IRQPending() bool
	DMAPending() (mask uint8, pending bool)
	TriggerDMA(mask uint8)
}

// CPU is the 65C816's visible register state plus the bus it executes
// against.
type CPU struct {
	A, X, Y, D uint16
	S          uint16
	PC         uint16
	PB, DB     uint8
	P          Flags
	E          bool // emulation mode

	bus     Bus
	stopped bool // STP was executed
	waiting bool // WAI was executed
}

// New returns a CPU wired to bus, powered on in 65C02 emulation mode as
// the hardware reset vector leaves it: interrupts disabled, 8-bit
// index/accumulator width implied by E, stack pointer at $01FF.
func New(b Bus) *CPU {
	c := &CPU{bus: b}
	c.Reset()
	return c
}

// Reset puts the CPU into its post-reset state and loads PC from the
// emulation-mode reset vector at $00FFFC.
func (c *CPU) Reset() {
	c.E = true
	c.D = 0x0000
	c.DB = 0x00
	c.PB = 0x00
	c.S = 0x01FF
	c.P = FlagIRQDisable | FlagIndex8 | FlagMemory8
	c.X &= 0x00FF
	c.Y &= 0x00FF
	c.stopped = false
	c.waiting = false
	c.PC = c.bus.Read16(bus.Address{Bank: 0x00, Offset: vectorResetEmulation})
}

func (c *CPU) String() string {
	return fmt.Sprintf("A=%04X X=%04X Y=%04X D=%04X S=%04X PB=%02X DB=%02X PC=%04X P=%s E=%v",
		c.A, c.X, c.Y, c.D, c.S, c.PB, c.DB, c.PC, c.P.String(c.E), c.E)
}

// fetch8 reads the byte at PB:PC and advances PC.
func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(bus.Address{Bank: c.PB, Offset: c.PC})
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// Step services one pending hardware event if any (NMI first, then IRQ
// when not masked, then DMA — matching spec's tick-arbitration priority
// and original_source's cpu.tick order), else fetches and executes one
// instruction.
func (c *CPU) Step() {
	if c.bus.NMIPending() {
		c.waiting = false
		c.dispatchInterrupt(vectorNMI, vectorNMIEmulation, false)
		return
	}
	// IRQPending always clears the pending request, even when masked,
	// matching original_source's check_and_reset_irq.
	if irq := c.bus.IRQPending(); irq && !c.P.Has(FlagIRQDisable) {
		c.waiting = false
		c.dispatchInterrupt(vectorIRQ, vectorIRQEmulation, false)
		return
	}
	if mask, pending := c.bus.DMAPending(); pending {
		c.bus.TriggerDMA(mask)
		return
	}

	if c.waiting || c.stopped {
		c.bus.Tick(ioCycles)
		return
	}

	opByte := c.fetch8()
	op, ok := opcodeTable[opByte]
	if !ok {
		panic(fmt.Sprintf("cpu65816: invalid opcode $%02X at %02X:%04X", opByte, c.PB, c.PC-1))
	}
	op.exec(c, op.mode)
}

// indexWidth16 reports whether X/Y are in 16-bit mode.
func (c *CPU) indexWidth16() bool { return !c.E && !c.P.Has(FlagIndex8) }

// memWidth16 reports whether A/memory operands are in 16-bit mode.
func (c *CPU) memWidth16() bool { return !c.E && !c.P.Has(FlagMemory8) }

// setNZ updates the N and Z flags from a result value.
func setNZ[W uint8 | uint16](c *CPU, v W) {
	c.P.Set(FlagZero, v == 0)
	var neg bool
	switch any(v).(type) {
	case uint8:
		neg = v&0x80 != 0
	default:
		neg = uint16(v)&0x8000 != 0
	}
	c.P.Set(FlagNegative, neg)
}
