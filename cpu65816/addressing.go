package cpu65816

import "github.com/bdwalton/snes816/bus"

// AddressMode names one of the 65C816's addressing modes. Operand
// byte-width for the M/X-sized immediate modes is decided by the
// relevant flag at resolve time, matching spec's width-dispatch design
// note.
type AddressMode int

const (
	ModeImplied AddressMode = iota
	ModeAccumulator
	ModeImmediateM // sized by the M flag: ADC/AND/CMP/EOR/LDA/ORA/SBC/BIT
	ModeImmediateX // sized by the X flag: LDX/LDY/CPX/CPY
	ModeImmediate8 // always one byte: REP/SEP/COP/BRK signature/WDM
	ModeDirectPage
	ModeDirectPageIndexedX
	ModeDirectPageIndexedY
	ModeDirectPageIndirect
	ModeDirectPageIndirectLong
	ModeDirectPageIndexedIndirectX    // (dp,X)
	ModeDirectPageIndirectIndexedY    // (dp),Y
	ModeDirectPageIndirectLongIndexedY // [dp],Y
	ModeAbsolute
	ModeAbsoluteIndexedX
	ModeAbsoluteIndexedY
	ModeAbsoluteLong
	ModeAbsoluteLongIndexedX
	ModeAbsoluteIndirect        // JMP (abs)
	ModeAbsoluteIndirectLong    // JML [abs]
	ModeAbsoluteIndexedIndirect // JMP/JSR (abs,X)
	ModeStackRelative
	ModeStackRelativeIndirectIndexedY // (sr,S),Y
	ModeRelative8                     // branches
	ModeRelativeLong                  // BRL
)

// operand is the resolved location an instruction reads or writes.
// isAccumulator distinguishes "operate on the A register" from "operate
// on a bus address", since Accumulator mode has no memory location at
// all.
type operand struct {
	addr         bus.Address
	isAccumulator bool
}

// directPageBase returns D + dp as a bank-0 offset, charging the extra
// IO cycle original_source's direct_page_cycle applies whenever the
// direct page register's low byte is non-zero.
func (c *CPU) directPageBase(dp uint8) uint16 {
	if uint8(c.D) != 0 {
		c.bus.Tick(ioCycles)
	}
	return c.D + uint16(dp)
}

func (c *CPU) resolve(mode AddressMode) operand {
	switch mode {
	case ModeImplied:
		return operand{}

	case ModeAccumulator:
		return operand{isAccumulator: true}

	case ModeImmediateM:
		addr := bus.Address{Bank: c.PB, Offset: c.PC}
		if c.memWidth16() {
			c.PC += 2
		} else {
			c.PC++
		}
		return operand{addr: addr}

	case ModeImmediateX:
		addr := bus.Address{Bank: c.PB, Offset: c.PC}
		if c.indexWidth16() {
			c.PC += 2
		} else {
			c.PC++
		}
		return operand{addr: addr}

	case ModeImmediate8:
		addr := bus.Address{Bank: c.PB, Offset: c.PC}
		c.PC++
		return operand{addr: addr}

	case ModeDirectPage:
		dp := c.fetch8()
		return operand{addr: bus.Address{Bank: 0x00, Offset: c.directPageBase(dp)}}

	case ModeDirectPageIndexedX:
		dp := c.fetch8()
		return operand{addr: bus.Address{Bank: 0x00, Offset: c.directPageBase(dp) + c.X}}

	case ModeDirectPageIndexedY:
		dp := c.fetch8()
		return operand{addr: bus.Address{Bank: 0x00, Offset: c.directPageBase(dp) + c.Y}}

	case ModeDirectPageIndirect:
		dp := c.fetch8()
		ptr := bus.Address{Bank: 0x00, Offset: c.directPageBase(dp)}
		word := c.bus.Read16(ptr)
		return operand{addr: bus.Address{Bank: c.DB, Offset: word}}

	case ModeDirectPageIndirectLong:
		dp := c.fetch8()
		base := c.directPageBase(dp)
		ptr := bus.Address{Bank: 0x00, Offset: base}
		word := c.bus.Read16(ptr)
		bank := c.bus.Read(bus.Address{Bank: 0x00, Offset: base + 2})
		return operand{addr: bus.Address{Bank: bank, Offset: word}}

	case ModeDirectPageIndexedIndirectX:
		dp := c.fetch8()
		ptr := bus.Address{Bank: 0x00, Offset: c.directPageBase(dp) + c.X}
		word := c.bus.Read16(ptr)
		return operand{addr: bus.Address{Bank: c.DB, Offset: word}}

	case ModeDirectPageIndirectIndexedY:
		dp := c.fetch8()
		ptr := bus.Address{Bank: 0x00, Offset: c.directPageBase(dp)}
		word := c.bus.Read16(ptr)
		return operand{addr: bus.Address{Bank: c.DB, Offset: word}.WrappingAdd(c.Y)}

	case ModeDirectPageIndirectLongIndexedY:
		dp := c.fetch8()
		base := c.directPageBase(dp)
		ptr := bus.Address{Bank: 0x00, Offset: base}
		word := c.bus.Read16(ptr)
		bank := c.bus.Read(bus.Address{Bank: 0x00, Offset: base + 2})
		return operand{addr: bus.Address{Bank: bank, Offset: word}.WrappingAdd(c.Y)}

	case ModeAbsolute:
		word := c.fetch16()
		return operand{addr: bus.Address{Bank: c.DB, Offset: word}}

	case ModeAbsoluteIndexedX:
		word := c.fetch16()
		return operand{addr: bus.Address{Bank: c.DB, Offset: word}.WrappingAdd(c.X)}

	case ModeAbsoluteIndexedY:
		word := c.fetch16()
		return operand{addr: bus.Address{Bank: c.DB, Offset: word}.WrappingAdd(c.Y)}

	case ModeAbsoluteLong:
		word := c.fetch16()
		bank := c.fetch8()
		return operand{addr: bus.Address{Bank: bank, Offset: word}}

	case ModeAbsoluteLongIndexedX:
		word := c.fetch16()
		bank := c.fetch8()
		return operand{addr: bus.Address{Bank: bank, Offset: word}.WrappingAdd(c.X)}

	case ModeAbsoluteIndirect:
		word := c.fetch16()
		target := c.bus.Read16(bus.Address{Bank: 0x00, Offset: word})
		return operand{addr: bus.Address{Bank: c.PB, Offset: target}}

	case ModeAbsoluteIndirectLong:
		word := c.fetch16()
		ptr := bus.Address{Bank: 0x00, Offset: word}
		target := c.bus.Read16(ptr)
		bank := c.bus.Read(bus.Address{Bank: 0x00, Offset: word + 2})
		return operand{addr: bus.Address{Bank: bank, Offset: target}}

	case ModeAbsoluteIndexedIndirect:
		word := c.fetch16()
		ptr := bus.Address{Bank: c.PB, Offset: word + c.X}
		target := c.bus.Read16(ptr)
		return operand{addr: bus.Address{Bank: c.PB, Offset: target}}

	case ModeStackRelative:
		sr := c.fetch8()
		return operand{addr: bus.Address{Bank: 0x00, Offset: c.S + uint16(sr)}}

	case ModeStackRelativeIndirectIndexedY:
		sr := c.fetch8()
		ptr := bus.Address{Bank: 0x00, Offset: c.S + uint16(sr)}
		word := c.bus.Read16(ptr)
		return operand{addr: bus.Address{Bank: c.DB, Offset: word}.WrappingAdd(c.Y)}

	case ModeRelative8:
		disp := int8(c.fetch8())
		return operand{addr: bus.Address{Bank: c.PB, Offset: uint16(int32(c.PC) + int32(disp))}}

	case ModeRelativeLong:
		disp := int16(c.fetch16())
		return operand{addr: bus.Address{Bank: c.PB, Offset: uint16(int32(c.PC) + int32(disp))}}

	default:
		panic("cpu65816: unhandled addressing mode")
	}
}
