package cpu65816

// opcodeEntry names one of the 256 defined 65C816 opcodes: its mnemonic
// (descriptive only; nothing reads it), the addressing
// mode resolve() should use to build its operand, and the function that
// carries out the semantics.
type opcodeEntry struct {
	name string
	mode AddressMode
	exec func(c *CPU, mode AddressMode)
}

// opcodeTable is the full 256-entry dispatch table. The 65C816 leaves
// no opcode byte undefined, unlike its NES-era 6502 ancestor.
var opcodeTable = map[uint8]opcodeEntry{
	0x00: {"BRK", ModeImmediate8, instBRK},
	0x01: {"ORA", ModeDirectPageIndexedIndirectX, instORA},
	0x02: {"COP", ModeImmediate8, instCOP},
	0x03: {"ORA", ModeStackRelative, instORA},
	0x04: {"TSB", ModeDirectPage, instTSB},
	0x05: {"ORA", ModeDirectPage, instORA},
	0x06: {"ASL", ModeDirectPage, instASL},
	0x07: {"ORA", ModeDirectPageIndirectLong, instORA},
	0x08: {"PHP", ModeImplied, instPHP},
	0x09: {"ORA", ModeImmediateM, instORA},
	0x0A: {"ASL", ModeAccumulator, instASL},
	0x0B: {"PHD", ModeImplied, instPHD},
	0x0C: {"TSB", ModeAbsolute, instTSB},
	0x0D: {"ORA", ModeAbsolute, instORA},
	0x0E: {"ASL", ModeAbsolute, instASL},
	0x0F: {"ORA", ModeAbsoluteLong, instORA},

	0x10: {"BPL", ModeRelative8, instBPL},
	0x11: {"ORA", ModeDirectPageIndirectIndexedY, instORA},
	0x12: {"ORA", ModeDirectPageIndirect, instORA},
	0x13: {"ORA", ModeStackRelativeIndirectIndexedY, instORA},
	0x14: {"TRB", ModeDirectPage, instTRB},
	0x15: {"ORA", ModeDirectPageIndexedX, instORA},
	0x16: {"ASL", ModeDirectPageIndexedX, instASL},
	0x17: {"ORA", ModeDirectPageIndirectLongIndexedY, instORA},
	0x18: {"CLC", ModeImplied, instCLC},
	0x19: {"ORA", ModeAbsoluteIndexedY, instORA},
	0x1A: {"INC", ModeAccumulator, instINC},
	0x1B: {"TCS", ModeImplied, instTCS},
	0x1C: {"TRB", ModeAbsolute, instTRB},
	0x1D: {"ORA", ModeAbsoluteIndexedX, instORA},
	0x1E: {"ASL", ModeAbsoluteIndexedX, instASL},
	0x1F: {"ORA", ModeAbsoluteLongIndexedX, instORA},

	0x20: {"JSR", ModeAbsolute, instJSR},
	0x21: {"AND", ModeDirectPageIndexedIndirectX, instAND},
	0x22: {"JSL", ModeAbsoluteLong, instJSL},
	0x23: {"AND", ModeStackRelative, instAND},
	0x24: {"BIT", ModeDirectPage, instBIT},
	0x25: {"AND", ModeDirectPage, instAND},
	0x26: {"ROL", ModeDirectPage, instROL},
	0x27: {"AND", ModeDirectPageIndirectLong, instAND},
	0x28: {"PLP", ModeImplied, instPLP},
	0x29: {"AND", ModeImmediateM, instAND},
	0x2A: {"ROL", ModeAccumulator, instROL},
	0x2B: {"PLD", ModeImplied, instPLD},
	0x2C: {"BIT", ModeAbsolute, instBIT},
	0x2D: {"AND", ModeAbsolute, instAND},
	0x2E: {"ROL", ModeAbsolute, instROL},
	0x2F: {"AND", ModeAbsoluteLong, instAND},

	0x30: {"BMI", ModeRelative8, instBMI},
	0x31: {"AND", ModeDirectPageIndirectIndexedY, instAND},
	0x32: {"AND", ModeDirectPageIndirect, instAND},
	0x33: {"AND", ModeStackRelativeIndirectIndexedY, instAND},
	0x34: {"BIT", ModeDirectPageIndexedX, instBIT},
	0x35: {"AND", ModeDirectPageIndexedX, instAND},
	0x36: {"ROL", ModeDirectPageIndexedX, instROL},
	0x37: {"AND", ModeDirectPageIndirectLongIndexedY, instAND},
	0x38: {"SEC", ModeImplied, instSEC},
	0x39: {"AND", ModeAbsoluteIndexedY, instAND},
	0x3A: {"DEC", ModeAccumulator, instDEC},
	0x3B: {"TSC", ModeImplied, instTSC},
	0x3C: {"BIT", ModeAbsoluteIndexedX, instBIT},
	0x3D: {"AND", ModeAbsoluteIndexedX, instAND},
	0x3E: {"ROL", ModeAbsoluteIndexedX, instROL},
	0x3F: {"AND", ModeAbsoluteLongIndexedX, instAND},

	0x40: {"RTI", ModeImplied, instRTI},
	0x41: {"EOR", ModeDirectPageIndexedIndirectX, instEOR},
	0x42: {"WDM", ModeImmediate8, instWDM},
	0x43: {"EOR", ModeStackRelative, instEOR},
	0x44: {"MVP", ModeImplied, instMVP},
	0x45: {"EOR", ModeDirectPage, instEOR},
	0x46: {"LSR", ModeDirectPage, instLSR},
	0x47: {"EOR", ModeDirectPageIndirectLong, instEOR},
	0x48: {"PHA", ModeImplied, instPHA},
	0x49: {"EOR", ModeImmediateM, instEOR},
	0x4A: {"LSR", ModeAccumulator, instLSR},
	0x4B: {"PHK", ModeImplied, instPHK},
	0x4C: {"JMP", ModeAbsolute, instJMP},
	0x4D: {"EOR", ModeAbsolute, instEOR},
	0x4E: {"LSR", ModeAbsolute, instLSR},
	0x4F: {"EOR", ModeAbsoluteLong, instEOR},

	0x50: {"BVC", ModeRelative8, instBVC},
	0x51: {"EOR", ModeDirectPageIndirectIndexedY, instEOR},
	0x52: {"EOR", ModeDirectPageIndirect, instEOR},
	0x53: {"EOR", ModeStackRelativeIndirectIndexedY, instEOR},
	0x54: {"MVN", ModeImplied, instMVN},
	0x55: {"EOR", ModeDirectPageIndexedX, instEOR},
	0x56: {"LSR", ModeDirectPageIndexedX, instLSR},
	0x57: {"EOR", ModeDirectPageIndirectLongIndexedY, instEOR},
	0x58: {"CLI", ModeImplied, instCLI},
	0x59: {"EOR", ModeAbsoluteIndexedY, instEOR},
	0x5A: {"PHY", ModeImplied, instPHY},
	0x5B: {"TCD", ModeImplied, instTCD},
	0x5C: {"JML", ModeAbsoluteLong, instJML},
	0x5D: {"EOR", ModeAbsoluteIndexedX, instEOR},
	0x5E: {"LSR", ModeAbsoluteIndexedX, instLSR},
	0x5F: {"EOR", ModeAbsoluteLongIndexedX, instEOR},

	0x60: {"RTS", ModeImplied, instRTS},
	0x61: {"ADC", ModeDirectPageIndexedIndirectX, instADC},
	0x62: {"PER", ModeRelativeLong, instPER},
	0x63: {"ADC", ModeStackRelative, instADC},
	0x64: {"STZ", ModeDirectPage, instSTZ},
	0x65: {"ADC", ModeDirectPage, instADC},
	0x66: {"ROR", ModeDirectPage, instROR},
	0x67: {"ADC", ModeDirectPageIndirectLong, instADC},
	0x68: {"PLA", ModeImplied, instPLA},
	0x69: {"ADC", ModeImmediateM, instADC},
	0x6A: {"ROR", ModeAccumulator, instROR},
	0x6B: {"RTL", ModeImplied, instRTL},
	0x6C: {"JMP", ModeAbsoluteIndirect, instJMP},
	0x6D: {"ADC", ModeAbsolute, instADC},
	0x6E: {"ROR", ModeAbsolute, instROR},
	0x6F: {"ADC", ModeAbsoluteLong, instADC},

	0x70: {"BVS", ModeRelative8, instBVS},
	0x71: {"ADC", ModeDirectPageIndirectIndexedY, instADC},
	0x72: {"ADC", ModeDirectPageIndirect, instADC},
	0x73: {"ADC", ModeStackRelativeIndirectIndexedY, instADC},
	0x74: {"STZ", ModeDirectPageIndexedX, instSTZ},
	0x75: {"ADC", ModeDirectPageIndexedX, instADC},
	0x76: {"ROR", ModeDirectPageIndexedX, instROR},
	0x77: {"ADC", ModeDirectPageIndirectLongIndexedY, instADC},
	0x78: {"SEI", ModeImplied, instSEI},
	0x79: {"ADC", ModeAbsoluteIndexedY, instADC},
	0x7A: {"PLY", ModeImplied, instPLY},
	0x7B: {"TDC", ModeImplied, instTDC},
	0x7C: {"JMP", ModeAbsoluteIndexedIndirect, instJMP},
	0x7D: {"ADC", ModeAbsoluteIndexedX, instADC},
	0x7E: {"ROR", ModeAbsoluteIndexedX, instROR},
	0x7F: {"ADC", ModeAbsoluteLongIndexedX, instADC},

	0x80: {"BRA", ModeRelative8, instBRA},
	0x81: {"STA", ModeDirectPageIndexedIndirectX, instSTA},
	0x82: {"BRL", ModeRelativeLong, instBRL},
	0x83: {"STA", ModeStackRelative, instSTA},
	0x84: {"STY", ModeDirectPage, instSTY},
	0x85: {"STA", ModeDirectPage, instSTA},
	0x86: {"STX", ModeDirectPage, instSTX},
	0x87: {"STA", ModeDirectPageIndirectLong, instSTA},
	0x88: {"DEY", ModeImplied, instDEY},
	0x89: {"BIT", ModeImmediateM, instBIT},
	0x8A: {"TXA", ModeImplied, instTXA},
	0x8B: {"PHB", ModeImplied, instPHB},
	0x8C: {"STY", ModeAbsolute, instSTY},
	0x8D: {"STA", ModeAbsolute, instSTA},
	0x8E: {"STX", ModeAbsolute, instSTX},
	0x8F: {"STA", ModeAbsoluteLong, instSTA},

	0x90: {"BCC", ModeRelative8, instBCC},
	0x91: {"STA", ModeDirectPageIndirectIndexedY, instSTA},
	0x92: {"STA", ModeDirectPageIndirect, instSTA},
	0x93: {"STA", ModeStackRelativeIndirectIndexedY, instSTA},
	0x94: {"STY", ModeDirectPageIndexedX, instSTY},
	0x95: {"STA", ModeDirectPageIndexedX, instSTA},
	0x96: {"STX", ModeDirectPageIndexedY, instSTX},
	0x97: {"STA", ModeDirectPageIndirectLongIndexedY, instSTA},
	0x98: {"TYA", ModeImplied, instTYA},
	0x99: {"STA", ModeAbsoluteIndexedY, instSTA},
	0x9A: {"TXS", ModeImplied, instTXS},
	0x9B: {"TXY", ModeImplied, instTXY},
	0x9C: {"STZ", ModeAbsolute, instSTZ},
	0x9D: {"STA", ModeAbsoluteIndexedX, instSTA},
	0x9E: {"STZ", ModeAbsoluteIndexedX, instSTZ},
	0x9F: {"STA", ModeAbsoluteLongIndexedX, instSTA},

	0xA0: {"LDY", ModeImmediateX, instLDY},
	0xA1: {"LDA", ModeDirectPageIndexedIndirectX, instLDA},
	0xA2: {"LDX", ModeImmediateX, instLDX},
	0xA3: {"LDA", ModeStackRelative, instLDA},
	0xA4: {"LDY", ModeDirectPage, instLDY},
	0xA5: {"LDA", ModeDirectPage, instLDA},
	0xA6: {"LDX", ModeDirectPage, instLDX},
	0xA7: {"LDA", ModeDirectPageIndirectLong, instLDA},
	0xA8: {"TAY", ModeImplied, instTAY},
	0xA9: {"LDA", ModeImmediateM, instLDA},
	0xAA: {"TAX", ModeImplied, instTAX},
	0xAB: {"PLB", ModeImplied, instPLB},
	0xAC: {"LDY", ModeAbsolute, instLDY},
	0xAD: {"LDA", ModeAbsolute, instLDA},
	0xAE: {"LDX", ModeAbsolute, instLDX},
	0xAF: {"LDA", ModeAbsoluteLong, instLDA},

	0xB0: {"BCS", ModeRelative8, instBCS},
	0xB1: {"LDA", ModeDirectPageIndirectIndexedY, instLDA},
	0xB2: {"LDA", ModeDirectPageIndirect, instLDA},
	0xB3: {"LDA", ModeStackRelativeIndirectIndexedY, instLDA},
	0xB4: {"LDY", ModeDirectPageIndexedX, instLDY},
	0xB5: {"LDA", ModeDirectPageIndexedX, instLDA},
	0xB6: {"LDX", ModeDirectPageIndexedY, instLDX},
	0xB7: {"LDA", ModeDirectPageIndirectLongIndexedY, instLDA},
	0xB8: {"CLV", ModeImplied, instCLV},
	0xB9: {"LDA", ModeAbsoluteIndexedY, instLDA},
	0xBA: {"TSX", ModeImplied, instTSX},
	0xBB: {"TYX", ModeImplied, instTYX},
	0xBC: {"LDY", ModeAbsoluteIndexedX, instLDY},
	0xBD: {"LDA", ModeAbsoluteIndexedX, instLDA},
	0xBE: {"LDX", ModeAbsoluteIndexedY, instLDX},
	0xBF: {"LDA", ModeAbsoluteLongIndexedX, instLDA},

	0xC0: {"CPY", ModeImmediateX, instCPY},
	0xC1: {"CMP", ModeDirectPageIndexedIndirectX, instCMP},
	0xC2: {"REP", ModeImmediate8, instREP},
	0xC3: {"CMP", ModeStackRelative, instCMP},
	0xC4: {"CPY", ModeDirectPage, instCPY},
	0xC5: {"CMP", ModeDirectPage, instCMP},
	0xC6: {"DEC", ModeDirectPage, instDEC},
	0xC7: {"CMP", ModeDirectPageIndirectLong, instCMP},
	0xC8: {"INY", ModeImplied, instINY},
	0xC9: {"CMP", ModeImmediateM, instCMP},
	0xCA: {"DEX", ModeImplied, instDEX},
	0xCB: {"WAI", ModeImplied, instWAI},
	0xCC: {"CPY", ModeAbsolute, instCPY},
	0xCD: {"CMP", ModeAbsolute, instCMP},
	0xCE: {"DEC", ModeAbsolute, instDEC},
	0xCF: {"CMP", ModeAbsoluteLong, instCMP},

	0xD0: {"BNE", ModeRelative8, instBNE},
	0xD1: {"CMP", ModeDirectPageIndirectIndexedY, instCMP},
	0xD2: {"CMP", ModeDirectPageIndirect, instCMP},
	0xD3: {"CMP", ModeStackRelativeIndirectIndexedY, instCMP},
	0xD4: {"PEI", ModeDirectPageIndirect, instPEI},
	0xD5: {"CMP", ModeDirectPageIndexedX, instCMP},
	0xD6: {"DEC", ModeDirectPageIndexedX, instDEC},
	0xD7: {"CMP", ModeDirectPageIndirectLongIndexedY, instCMP},
	0xD8: {"CLD", ModeImplied, instCLD},
	0xD9: {"CMP", ModeAbsoluteIndexedY, instCMP},
	0xDA: {"PHX", ModeImplied, instPHX},
	0xDB: {"STP", ModeImplied, instSTP},
	0xDC: {"JML", ModeAbsoluteIndirectLong, instJML},
	0xDD: {"CMP", ModeAbsoluteIndexedX, instCMP},
	0xDE: {"DEC", ModeAbsoluteIndexedX, instDEC},
	0xDF: {"CMP", ModeAbsoluteLongIndexedX, instCMP},

	0xE0: {"CPX", ModeImmediateX, instCPX},
	0xE1: {"SBC", ModeDirectPageIndexedIndirectX, instSBC},
	0xE2: {"SEP", ModeImmediate8, instSEP},
	0xE3: {"SBC", ModeStackRelative, instSBC},
	0xE4: {"CPX", ModeDirectPage, instCPX},
	0xE5: {"SBC", ModeDirectPage, instSBC},
	0xE6: {"INC", ModeDirectPage, instINC},
	0xE7: {"SBC", ModeDirectPageIndirectLong, instSBC},
	0xE8: {"INX", ModeImplied, instINX},
	0xE9: {"SBC", ModeImmediateM, instSBC},
	0xEA: {"NOP", ModeImplied, instNOP},
	0xEB: {"XBA", ModeImplied, instXBA},
	0xEC: {"CPX", ModeAbsolute, instCPX},
	0xED: {"SBC", ModeAbsolute, instSBC},
	0xEE: {"INC", ModeAbsolute, instINC},
	0xEF: {"SBC", ModeAbsoluteLong, instSBC},

	0xF0: {"BEQ", ModeRelative8, instBEQ},
	0xF1: {"SBC", ModeDirectPageIndirectIndexedY, instSBC},
	0xF2: {"SBC", ModeDirectPageIndirect, instSBC},
	0xF3: {"SBC", ModeStackRelativeIndirectIndexedY, instSBC},
	0xF4: {"PEA", ModeAbsolute, instPEA},
	0xF5: {"SBC", ModeDirectPageIndexedX, instSBC},
	0xF6: {"INC", ModeDirectPageIndexedX, instINC},
	0xF7: {"SBC", ModeDirectPageIndirectLongIndexedY, instSBC},
	0xF8: {"SED", ModeImplied, instSED},
	0xF9: {"SBC", ModeAbsoluteIndexedY, instSBC},
	0xFA: {"PLX", ModeImplied, instPLX},
	0xFB: {"XCE", ModeImplied, instXCE},
	0xFC: {"JSR", ModeAbsoluteIndexedIndirect, instJSR},
	0xFD: {"SBC", ModeAbsoluteIndexedX, instSBC},
	0xFE: {"INC", ModeAbsoluteIndexedX, instINC},
	0xFF: {"SBC", ModeAbsoluteLongIndexedX, instSBC},
}
