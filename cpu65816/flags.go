package cpu65816

// Flags packs the 65C816 processor status register (P). Bit 5 and bit
// 4 mean different things depending on the Emulation (E) pseudo-flag:
// in native mode they are M (accumulator/memory width) and X (index
// width); in emulation mode they are the unused U bit and B (break).
type Flags uint8

const (
	FlagCarry     Flags = 1 << 0 // C
	FlagZero      Flags = 1 << 1 // Z
	FlagIRQDisable Flags = 1 << 2 // I
	FlagDecimal   Flags = 1 << 3 // D
	FlagIndex8    Flags = 1 << 4 // X (native) / B (emulation)
	FlagMemory8   Flags = 1 << 5 // M (native) / unused (emulation)
	FlagOverflow  Flags = 1 << 6 // V
	FlagNegative  Flags = 1 << 7 // N
)

func (p Flags) Has(f Flags) bool { return p&f != 0 }

func (p *Flags) Set(f Flags, on bool) {
	if on {
		*p |= f
	} else {
		*p &^= f
	}
}

// String renders the flags the way a register dump traditionally does,
// one letter per bit, negative-to-carry, dot for a clear bit. The
// letters shown for bits 4/5 depend on e, matching the register's
// actual meaning in that mode.
func (p Flags) String(e bool) string {
	letters := []struct {
		bit Flags
		ch  byte
	}{
		{FlagNegative, 'N'},
		{FlagOverflow, 'V'},
		{FlagMemory8, 'M'},
		{FlagIndex8, 'X'},
		{FlagDecimal, 'D'},
		{FlagIRQDisable, 'I'},
		{FlagZero, 'Z'},
		{FlagCarry, 'C'},
	}
	if e {
		letters[2].ch = '-'
		letters[3].ch = 'B'
	}

	buf := make([]byte, len(letters))
	for i, l := range letters {
		if p.Has(l.bit) {
			buf[i] = l.ch
		} else {
			buf[i] = '.'
		}
	}
	return string(buf)
}
