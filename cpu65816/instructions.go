package cpu65816

import (
	"github.com/bdwalton/snes816/bitops"
	"github.com/bdwalton/snes816/bus"
)

// aluAdd performs one ADC-shaped add at the given width, delegating the
// actual wrapping/overflow arithmetic to bitops's width-generic helpers
// so the 8-bit and 16-bit paths share one implementation each,
// instantiated rather than duplicated by hand.
func aluAdd(width16 bool, a, b uint16, carryIn bool) (sum uint16, carry, overflow bool) {
	if width16 {
		s, c := bitops.WrappingAdd[uint16](a, b, carryIn)
		return s, c, bitops.Overflowed[uint16](a, b, s)
	}
	s, c := bitops.WrappingAdd[uint8](uint8(a), uint8(b), carryIn)
	return uint16(s), c, bitops.Overflowed[uint8](uint8(a), uint8(b), s)
}

func aluSub(width16 bool, a, b uint16, borrowIn bool) (diff uint16, noBorrow bool) {
	if width16 {
		d, nb := bitops.WrappingSub[uint16](a, b, borrowIn)
		return d, nb
	}
	d, nb := bitops.WrappingSub[uint8](uint8(a), uint8(b), borrowIn)
	return uint16(d), nb
}

func isNegative(width16 bool, v uint16) bool {
	if width16 {
		return bitops.IsNegative[uint16](v)
	}
	return bitops.IsNegative[uint8](uint8(v))
}

func (c *CPU) setNZWidth(width16 bool, v uint16) {
	if width16 {
		c.P.Set(FlagZero, v == 0)
	} else {
		c.P.Set(FlagZero, uint8(v) == 0)
	}
	c.P.Set(FlagNegative, isNegative(width16, v))
}

func (c *CPU) failIfDecimal() {
	if c.P.Has(FlagDecimal) {
		panic("cpu65816: decimal-mode arithmetic is not supported")
	}
}

// ---- load/store/transfer ----

func instLDA(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	v := c.readM(op)
	c.A = v
	c.setNZWidth(c.memWidth16(), v)
}

func instLDX(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	v := c.readX(op)
	c.X = v
	c.setNZWidth(c.indexWidth16(), v)
}

func instLDY(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	v := c.readX(op)
	c.Y = v
	c.setNZWidth(c.indexWidth16(), v)
}

func instSTA(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.writeM(op, c.A)
}

func instSTX(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.writeX(op, c.X)
}

func instSTY(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.writeX(op, c.Y)
}

func instSTZ(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.writeM(op, 0)
}

func transfer(c *CPU, get func() uint16, set func(uint16), width16 bool, updateFlags bool) {
	v := get()
	if !width16 {
		v &= 0x00FF
	}
	set(v)
	if updateFlags {
		c.setNZWidth(width16, v)
	}
}

func instTAX(c *CPU, _ AddressMode) {
	transfer(c, func() uint16 { return c.A }, func(v uint16) { c.X = v }, c.indexWidth16(), true)
}
func instTAY(c *CPU, _ AddressMode) {
	transfer(c, func() uint16 { return c.A }, func(v uint16) { c.Y = v }, c.indexWidth16(), true)
}
func instTXA(c *CPU, _ AddressMode) {
	transfer(c, func() uint16 { return c.X }, func(v uint16) { c.A = v }, c.memWidth16(), true)
}
func instTYA(c *CPU, _ AddressMode) {
	transfer(c, func() uint16 { return c.Y }, func(v uint16) { c.A = v }, c.memWidth16(), true)
}
func instTXY(c *CPU, _ AddressMode) {
	transfer(c, func() uint16 { return c.X }, func(v uint16) { c.Y = v }, c.indexWidth16(), true)
}
func instTYX(c *CPU, _ AddressMode) {
	transfer(c, func() uint16 { return c.Y }, func(v uint16) { c.X = v }, c.indexWidth16(), true)
}
func instTCD(c *CPU, _ AddressMode) {
	c.D = c.A
	c.setNZWidth(true, c.D)
}
func instTDC(c *CPU, _ AddressMode) {
	c.A = c.D
	c.setNZWidth(true, c.A)
}
func instTCS(c *CPU, _ AddressMode) {
	c.S = c.A
	if c.E {
		c.S = 0x0100 | (c.S & 0x00FF)
	}
}
func instTSC(c *CPU, _ AddressMode) {
	c.A = c.S
	c.setNZWidth(true, c.A)
}
func instTSX(c *CPU, _ AddressMode) {
	transfer(c, func() uint16 { return c.S }, func(v uint16) { c.X = v }, c.indexWidth16(), true)
}
func instTXS(c *CPU, _ AddressMode) {
	c.S = c.X
	if c.E {
		c.S = 0x0100 | (c.S & 0x00FF)
	}
}

// ---- arithmetic ----

func instADC(c *CPU, mode AddressMode) {
	c.failIfDecimal()
	op := c.resolve(mode)
	width16 := c.memWidth16()
	a := c.A
	if !width16 {
		a &= 0x00FF
	}
	b := c.readM(op)
	sum, carry, overflow := aluAdd(width16, a, b, c.P.Has(FlagCarry))
	if width16 {
		c.A = sum
	} else {
		c.A = (c.A &^ 0x00FF) | (sum & 0x00FF)
	}
	c.P.Set(FlagCarry, carry)
	c.P.Set(FlagOverflow, overflow)
	c.setNZWidth(width16, sum)
}

func instSBC(c *CPU, mode AddressMode) {
	c.failIfDecimal()
	op := c.resolve(mode)
	width16 := c.memWidth16()
	a := c.A
	if !width16 {
		a &= 0x00FF
	}
	b := c.readM(op)
	diff, noBorrow := aluSub(width16, a, b, !c.P.Has(FlagCarry))
	// SBC's overflow uses the same two's-complement check as ADC, against
	// the bitwise complement of b (subtraction is addition of -b-1+carry).
	_, _, overflow := aluAdd(width16, a, ^b, c.P.Has(FlagCarry))
	if width16 {
		c.A = diff
	} else {
		c.A = (c.A &^ 0x00FF) | (diff & 0x00FF)
	}
	c.P.Set(FlagCarry, noBorrow)
	c.P.Set(FlagOverflow, overflow)
	c.setNZWidth(width16, diff)
}

func baseCompare(c *CPU, width16 bool, reg, val uint16) {
	diff, noBorrow := aluSub(width16, reg, val, false)
	c.P.Set(FlagCarry, noBorrow)
	c.setNZWidth(width16, diff)
}

func instCMP(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.memWidth16()
	baseCompare(c, width16, c.A, c.readM(op))
}
func instCPX(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.indexWidth16()
	baseCompare(c, width16, c.X, c.readX(op))
}
func instCPY(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.indexWidth16()
	baseCompare(c, width16, c.Y, c.readX(op))
}

func instINC(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.memWidth16()
	v, _, _ := aluAdd(width16, c.readM(op), 1, false)
	c.bus.Tick(ioCycles)
	c.writeM(op, v)
	c.setNZWidth(width16, v)
}
func instDEC(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.memWidth16()
	v, _ := aluSub(width16, c.readM(op), 1, false)
	c.bus.Tick(ioCycles)
	c.writeM(op, v)
	c.setNZWidth(width16, v)
}
func instINX(c *CPU, _ AddressMode) {
	width16 := c.indexWidth16()
	v, _, _ := aluAdd(width16, c.X, 1, false)
	c.X = v
	c.setNZWidth(width16, v)
}
func instINY(c *CPU, _ AddressMode) {
	width16 := c.indexWidth16()
	v, _, _ := aluAdd(width16, c.Y, 1, false)
	c.Y = v
	c.setNZWidth(width16, v)
}
func instDEX(c *CPU, _ AddressMode) {
	width16 := c.indexWidth16()
	v, _ := aluSub(width16, c.X, 1, false)
	c.X = v
	c.setNZWidth(width16, v)
}
func instDEY(c *CPU, _ AddressMode) {
	width16 := c.indexWidth16()
	v, _ := aluSub(width16, c.Y, 1, false)
	c.Y = v
	c.setNZWidth(width16, v)
}

// ---- logical ----

func instAND(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	v := c.A & c.readM(op)
	if !c.memWidth16() {
		v = (c.A &^ 0x00FF) | (v & 0x00FF)
	}
	c.A = v
	c.setNZWidth(c.memWidth16(), c.A)
}
func instORA(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	v := c.A | c.readM(op)
	c.A = v
	c.setNZWidth(c.memWidth16(), c.A)
}
func instEOR(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	v := c.A ^ c.readM(op)
	c.A = v
	c.setNZWidth(c.memWidth16(), c.A)
}

func instBIT(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.memWidth16()
	v := c.readM(op)
	result := c.A & v
	if width16 {
		c.P.Set(FlagZero, result == 0)
	} else {
		c.P.Set(FlagZero, uint8(result) == 0)
	}
	if mode != ModeImmediateM {
		c.P.Set(FlagNegative, isNegative(width16, v))
		c.P.Set(FlagOverflow, v&(bitopsSignShift(width16)>>1) != 0)
	}
}

// bitopsSignShift returns the sign bit for the given width, used by BIT
// to pick off bit 6 (the overflow-flag source bit).
func bitopsSignShift(width16 bool) uint16 {
	if width16 {
		return 0x8000
	}
	return 0x0080
}

func instTRB(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	v := c.readM(op)
	c.bus.Tick(ioCycles)
	c.P.Set(FlagZero, c.A&v == 0)
	c.writeM(op, v&^c.A)
}
func instTSB(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	v := c.readM(op)
	c.bus.Tick(ioCycles)
	result := c.A & v
	c.P.Set(FlagZero, result == 0)
	c.writeM(op, v|c.A)
}

// ---- shifts/rotates ----

func instASL(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.memWidth16()
	v := c.readM(op)
	shifted, carry := shiftLeft(width16, v, false)
	c.bus.Tick(ioCycles)
	c.writeM(op, shifted)
	c.P.Set(FlagCarry, carry)
	c.setNZWidth(width16, shifted)
}
func instLSR(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.memWidth16()
	v := c.readM(op)
	shifted, carry := shiftRight(width16, v, false)
	c.bus.Tick(ioCycles)
	c.writeM(op, shifted)
	c.P.Set(FlagCarry, carry)
	c.setNZWidth(width16, shifted)
}
func instROL(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.memWidth16()
	v := c.readM(op)
	shifted, carry := shiftLeft(width16, v, c.P.Has(FlagCarry))
	c.bus.Tick(ioCycles)
	c.writeM(op, shifted)
	c.P.Set(FlagCarry, carry)
	c.setNZWidth(width16, shifted)
}
func instROR(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	width16 := c.memWidth16()
	v := c.readM(op)
	shifted, carry := shiftRight(width16, v, c.P.Has(FlagCarry))
	c.bus.Tick(ioCycles)
	c.writeM(op, shifted)
	c.P.Set(FlagCarry, carry)
	c.setNZWidth(width16, shifted)
}

func shiftLeft(width16 bool, v uint16, carryIn bool) (uint16, bool) {
	if width16 {
		r, c := bitops.ShiftLeft[uint16](v, carryIn)
		return r, c
	}
	r, c := bitops.ShiftLeft[uint8](uint8(v), carryIn)
	return uint16(r), c
}
func shiftRight(width16 bool, v uint16, carryIn bool) (uint16, bool) {
	if width16 {
		r, c := bitops.ShiftRight[uint16](v, carryIn)
		return r, c
	}
	r, c := bitops.ShiftRight[uint8](uint8(v), carryIn)
	return uint16(r), c
}

// ---- flags ----

func instCLC(c *CPU, _ AddressMode) { c.P.Set(FlagCarry, false); c.bus.Tick(ioCycles) }
func instSEC(c *CPU, _ AddressMode) { c.P.Set(FlagCarry, true); c.bus.Tick(ioCycles) }
func instCLI(c *CPU, _ AddressMode) { c.P.Set(FlagIRQDisable, false); c.bus.Tick(ioCycles) }
func instSEI(c *CPU, _ AddressMode) { c.P.Set(FlagIRQDisable, true); c.bus.Tick(ioCycles) }
func instCLV(c *CPU, _ AddressMode) { c.P.Set(FlagOverflow, false); c.bus.Tick(ioCycles) }
func instCLD(c *CPU, _ AddressMode) { c.P.Set(FlagDecimal, false); c.bus.Tick(ioCycles) }
func instSED(c *CPU, _ AddressMode) { c.P.Set(FlagDecimal, true); c.bus.Tick(ioCycles) }

func (c *CPU) afterWidthChange() {
	if !c.indexWidth16() {
		c.X = c.truncateIndex(c.X)
		c.Y = c.truncateIndex(c.Y)
	}
}

func instREP(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	mask := Flags(c.readByte(op.addr))
	c.P &^= mask
	c.afterWidthChange()
	c.bus.Tick(ioCycles)
}
func instSEP(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	mask := Flags(c.readByte(op.addr))
	c.P |= mask
	c.afterWidthChange()
	c.bus.Tick(ioCycles)
}

func instXCE(c *CPU, _ AddressMode) {
	carry := c.P.Has(FlagCarry)
	c.P.Set(FlagCarry, c.E)
	c.E = carry
	if c.E {
		c.P |= FlagIndex8 | FlagMemory8
		c.X = c.truncateIndex(c.X)
		c.Y = c.truncateIndex(c.Y)
		c.S = 0x0100 | (c.S & 0x00FF)
	}
	c.bus.Tick(ioCycles)
}

func instXBA(c *CPU, _ AddressMode) {
	lo := uint8(c.A)
	hi := uint8(c.A >> 8)
	c.A = uint16(lo)<<8 | uint16(hi)
	c.setNZWidth(false, uint16(hi))
	c.bus.Tick(2 * ioCycles)
}

// ---- stack ----

func instPHA(c *CPU, _ AddressMode) {
	if c.memWidth16() {
		c.push16(c.A)
	} else {
		c.push8(uint8(c.A))
	}
}
func instPLA(c *CPU, _ AddressMode) {
	if c.memWidth16() {
		c.A = c.pull16()
	} else {
		c.A = (c.A &^ 0x00FF) | uint16(c.pull8())
	}
	c.setNZWidth(c.memWidth16(), c.A)
}
func instPHX(c *CPU, _ AddressMode) {
	if c.indexWidth16() {
		c.push16(c.X)
	} else {
		c.push8(uint8(c.X))
	}
}
func instPLX(c *CPU, _ AddressMode) {
	if c.indexWidth16() {
		c.X = c.pull16()
	} else {
		c.X = uint16(c.pull8())
	}
	c.setNZWidth(c.indexWidth16(), c.X)
}
func instPHY(c *CPU, _ AddressMode) {
	if c.indexWidth16() {
		c.push16(c.Y)
	} else {
		c.push8(uint8(c.Y))
	}
}
func instPLY(c *CPU, _ AddressMode) {
	if c.indexWidth16() {
		c.Y = c.pull16()
	} else {
		c.Y = uint16(c.pull8())
	}
	c.setNZWidth(c.indexWidth16(), c.Y)
}
func instPHP(c *CPU, _ AddressMode) { c.push8(uint8(c.P)) }
func instPLP(c *CPU, _ AddressMode) {
	c.P = Flags(c.pull8())
	if c.E {
		c.P |= FlagIndex8 | FlagMemory8
	}
	c.afterWidthChange()
}
func instPHB(c *CPU, _ AddressMode) { c.push8(c.DB) }
func instPLB(c *CPU, _ AddressMode) {
	c.DB = c.pull8()
	c.setNZWidth(false, uint16(c.DB))
}
func instPHK(c *CPU, _ AddressMode) { c.push8(c.PB) }
func instPHD(c *CPU, _ AddressMode) { c.push16(c.D) }
func instPLD(c *CPU, _ AddressMode) {
	c.D = c.pull16()
	c.setNZWidth(true, c.D)
}

func instPEA(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.push16(op.addr.Offset)
}
func instPEI(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.push16(op.addr.Offset)
}
func instPER(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.push16(op.addr.Offset)
}

// ---- control flow ----

func instJMP(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.PC = op.addr.Offset
}
func instJML(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.PB = op.addr.Bank
	c.PC = op.addr.Offset
}
func instJSR(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.push16(c.PC - 1)
	c.PC = op.addr.Offset
}
func instJSL(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.push8(c.PB)
	c.push16(c.PC - 1)
	c.PB = op.addr.Bank
	c.PC = op.addr.Offset
}
func instRTS(c *CPU, _ AddressMode) {
	c.PC = c.pull16() + 1
}
func instRTL(c *CPU, _ AddressMode) {
	c.PC = c.pull16() + 1
	c.PB = c.pull8()
}
func instRTI(c *CPU, _ AddressMode) {
	c.P = Flags(c.pull8())
	if c.E {
		c.P |= FlagIndex8 | FlagMemory8
	}
	c.afterWidthChange()
	c.PC = c.pull16()
	if !c.E {
		c.PB = c.pull8()
	}
}

func (c *CPU) branchIf(taken bool, mode AddressMode) {
	op := c.resolve(mode)
	if taken {
		c.bus.Tick(ioCycles)
		c.PC = op.addr.Offset
	}
}

func instBCC(c *CPU, mode AddressMode) { c.branchIf(!c.P.Has(FlagCarry), mode) }
func instBCS(c *CPU, mode AddressMode) { c.branchIf(c.P.Has(FlagCarry), mode) }
func instBEQ(c *CPU, mode AddressMode) { c.branchIf(c.P.Has(FlagZero), mode) }
func instBNE(c *CPU, mode AddressMode) { c.branchIf(!c.P.Has(FlagZero), mode) }
func instBMI(c *CPU, mode AddressMode) { c.branchIf(c.P.Has(FlagNegative), mode) }
func instBPL(c *CPU, mode AddressMode) { c.branchIf(!c.P.Has(FlagNegative), mode) }
func instBVC(c *CPU, mode AddressMode) { c.branchIf(!c.P.Has(FlagOverflow), mode) }
func instBVS(c *CPU, mode AddressMode) { c.branchIf(c.P.Has(FlagOverflow), mode) }
func instBRA(c *CPU, mode AddressMode) { c.branchIf(true, mode) }
func instBRL(c *CPU, mode AddressMode) {
	op := c.resolve(mode)
	c.PC = op.addr.Offset
}

func instNOP(c *CPU, _ AddressMode) { c.bus.Tick(ioCycles) }
func instWDM(c *CPU, mode AddressMode) {
	c.resolve(mode) // consume and discard the signature byte
	c.bus.Tick(ioCycles)
}

func instWAI(c *CPU, _ AddressMode) { c.waiting = true }
func instSTP(c *CPU, _ AddressMode) { c.stopped = true }

func instBRK(c *CPU, mode AddressMode) {
	c.resolve(mode) // BRK/COP consume a signature byte
	c.dispatchInterrupt(vectorBRK, vectorBRKEmulation, true)
}
func instCOP(c *CPU, mode AddressMode) {
	c.resolve(mode)
	c.dispatchInterrupt(vectorCOP, vectorCOPEmulation, false)
}

// instMVN/instMVP implement the 65816 block-move instructions. Each
// fetches its own two-byte (destination bank, source bank) operand
// directly rather than going through resolve/operand, since its
// addressing does not fit the generic effective-address model.
//
// Both X and Y always advance from their own prior value here: the
// original reference implementation's MVP path derives Y from X
// (a copy-paste bug), which this port does not reproduce.
func instMVN(c *CPU, _ AddressMode) {
	destBank := c.fetch8()
	srcBank := c.fetch8()
	v := c.readByte(bus.Address{Bank: srcBank, Offset: c.X})
	c.writeByte(bus.Address{Bank: destBank, Offset: c.Y}, v)
	c.X = c.truncateIndex(c.X + 1)
	c.Y = c.truncateIndex(c.Y + 1)
	c.A--
	c.DB = destBank
	c.bus.Tick(2 * ioCycles)
	if c.A != 0xFFFF {
		c.PC -= 3
	}
}

func instMVP(c *CPU, _ AddressMode) {
	destBank := c.fetch8()
	srcBank := c.fetch8()
	v := c.readByte(bus.Address{Bank: srcBank, Offset: c.X})
	c.writeByte(bus.Address{Bank: destBank, Offset: c.Y}, v)
	c.X = c.truncateIndex(c.X - 1)
	c.Y = c.truncateIndex(c.Y - 1)
	c.A--
	c.DB = destBank
	c.bus.Tick(2 * ioCycles)
	if c.A != 0xFFFF {
		c.PC -= 3
	}
}
