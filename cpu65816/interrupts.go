package cpu65816

import "github.com/bdwalton/snes816/bus"

// Interrupt vectors. Native-mode vectors are distinct from the
// emulation-mode (6502-compatible) ones, per spec §4.7.
const (
	vectorCOP           = 0xFFE5
	vectorBRK           = 0xFFE6
	vectorNMI           = 0xFFEA
	vectorIRQ           = 0xFFEE
	vectorCOPEmulation  = 0xFFF4
	vectorResetEmulation = 0xFFFC
	vectorNMIEmulation  = 0xFFFA
	vectorIRQEmulation  = 0xFFFE
	vectorBRKEmulation  = vectorIRQEmulation
)

// push8 pushes one byte, wrapping S as a uint8 confined to bank 0 page
// 1 whenever the CPU is in emulation mode (the resolved Open Question
// (c): original_source leaves this as a TODO, this repo fixes the stack
// to $0100-$01FF in emulation mode and lets it range over all of bank 0
// in native mode).
func (c *CPU) push8(v uint8) {
	c.bus.Write(bus.Address{Bank: 0x00, Offset: c.S}, v)
	if c.E {
		c.S = 0x0100 | ((c.S - 1) & 0x00FF)
	} else {
		c.S--
	}
}

func (c *CPU) pull8() uint8 {
	if c.E {
		c.S = 0x0100 | ((c.S + 1) & 0x00FF)
	} else {
		c.S++
	}
	return c.bus.Read(bus.Address{Bank: 0x00, Offset: c.S})
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// dispatchInterrupt pushes the return context and loads PC from the
// appropriate vector. brk sets the B bit in the pushed copy of P in
// emulation mode; only BRK passes true. BRK and COP have already
// consumed their signature byte, so the pushed PC points past it;
// NMI/IRQ push the address of the *next* instruction, not yet fetched.
func (c *CPU) dispatchInterrupt(nativeVector, emulationVector uint16, brk bool) {
	if !c.E {
		c.push8(c.PB)
	}
	c.push16(c.PC)
	if c.E {
		// the B flag is only meaningful in the pushed copy of P
		pushed := c.P
		pushed.Set(FlagIndex8, brk)
		c.push8(uint8(pushed))
	} else {
		c.push8(uint8(c.P))
	}

	c.P.Set(FlagIRQDisable, true)
	c.P.Set(FlagDecimal, false)
	c.PB = 0x00

	vector := nativeVector
	if c.E {
		vector = emulationVector
	}
	c.PC = c.bus.Read16(bus.Address{Bank: 0x00, Offset: vector})

	c.bus.Tick(2 * ioCycles)
}
