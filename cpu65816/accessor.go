package cpu65816

import "github.com/bdwalton/snes816/bus"

// readM/writeM access an operand at the accumulator/memory width (the M
// flag, or forced 8-bit in emulation mode).
func (c *CPU) readM(op operand) uint16 {
	if op.isAccumulator {
		return c.A
	}
	if c.memWidth16() {
		return c.bus.Read16(op.addr)
	}
	return uint16(c.bus.Read(op.addr))
}

func (c *CPU) writeM(op operand, v uint16) {
	if op.isAccumulator {
		if c.memWidth16() {
			c.A = v
		} else {
			c.A = (c.A &^ 0x00FF) | (v & 0x00FF)
		}
		return
	}
	if c.memWidth16() {
		c.bus.Write16(op.addr, v)
	} else {
		c.bus.Write(op.addr, uint8(v))
	}
}

// readX/writeX access a bus operand at the index-register width (the X
// flag, or forced 8-bit in emulation mode).
func (c *CPU) readX(op operand) uint16 {
	if c.indexWidth16() {
		return c.bus.Read16(op.addr)
	}
	return uint16(c.bus.Read(op.addr))
}

func (c *CPU) writeX(op operand, v uint16) {
	if c.indexWidth16() {
		c.bus.Write16(op.addr, v)
	} else {
		c.bus.Write(op.addr, uint8(v))
	}
}

// truncateIndex masks v to 8 bits when index registers are narrow,
// matching what REP/SEP and an E=1 transition must do to X and Y.
func (c *CPU) truncateIndex(v uint16) uint16 {
	if c.indexWidth16() {
		return v
	}
	return v & 0x00FF
}

// readByte/writeByte are used by instructions that always operate
// on a single byte regardless of M/X width (e.g. block move).
func (c *CPU) readByte(addr bus.Address) uint8  { return c.bus.Read(addr) }
func (c *CPU) writeByte(addr bus.Address, v uint8) { c.bus.Write(addr, v) }
