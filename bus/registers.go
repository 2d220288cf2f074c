package bus

const chipVersion = 0x02
const joypadAutoReadLines = 3

// cpu action pending bits, gating which of NMI/IRQ/DMA the CPU services
// next (spec §4.6's tick-arbitration priority).
const (
	actionNMI uint8 = 0x80
	actionIRQ uint8 = 0x40
	actionDMA uint8 = 0x20
)

// IrqCondition selects what the raster-match IRQ compares against the
// PPU's H/V dot counters.
type IrqCondition int

const (
	IrqNever IrqCondition = iota
	IrqMatchRow
	IrqMatchColumn
	IrqMatchRowAndColumn
)

// Registers is the $4200-$421F system register file: NMI/IRQ enable and
// pending flags, the raster-match IRQ timer, the 8x8->16
// multiplication and 16/8 division units, joypad auto-read state, and
// the DMA-trigger register.
type Registers struct {
	ioPort *IoPort

	cpuAction uint8

	vblank, hblank bool

	nmiEnabled, nmiActive bool

	irqEnabled IrqCondition
	irqRow     uint16
	irqColumn  uint16
	irqActive  bool

	multLhs    uint8
	multResult uint16

	divLhs    uint16
	divResult uint16

	joypadAutoReadEnabled bool
	joypadAutoReadActive  uint8
	joypadButtonState     [JoypadCount]uint16

	dmaChannelMask uint8
}

func NewRegisters(io *IoPort) *Registers {
	return &Registers{
		ioPort:   io,
		multLhs:  0xFF,
		divLhs:   0xFFFF,
	}
}

// Update is called once per PPU dot (driven by the Router's Tick) to
// detect the VBlank edge (latching NMI-pending and the joypad auto-read
// snapshot), evaluate the raster-match IRQ condition, and drain the
// IO-port latch request into a PPU position snapshot.
func (r *Registers) Update(ppu *Ppu, joy *Joypad) {
	oldVBlank := r.vblank
	r.vblank = ppu.VBlank()
	r.hblank = ppu.HBlank()

	if r.vblank != oldVBlank {
		r.nmiActive = r.vblank
		if r.nmiActive {
			if r.nmiEnabled {
				r.cpuAction |= actionNMI
			}
			if r.joypadAutoReadEnabled {
				r.joypadAutoReadActive = joypadAutoReadLines
				r.joypadButtonState = joy.ReadButtonState()
			}
		}
	}

	if r.irqEnabled != IrqNever && !r.irqActive {
		h, v := ppu.Position()
		var match bool
		switch r.irqEnabled {
		case IrqMatchRow:
			match = v == r.irqRow && h == 0
		case IrqMatchColumn:
			match = h == r.irqColumn
		case IrqMatchRowAndColumn:
			match = v == r.irqRow && h == r.irqColumn
		}
		if match {
			r.irqActive = true
			r.cpuAction |= actionIRQ
		}
	}

	if r.joypadAutoReadActive > 0 {
		r.joypadAutoReadActive--
	}

	if r.ioPort.Triggered() {
		ppu.StorePosition()
		r.ioPort.ResetTrigger()
	}
}

func (r *Registers) ActionPending() bool { return r.cpuAction != 0 }

func (r *Registers) CheckAndResetNMI() bool {
	if r.cpuAction&actionNMI != 0 {
		r.cpuAction &^= actionNMI
		return true
	}
	return false
}

func (r *Registers) CheckAndResetIRQ() bool {
	if r.cpuAction&actionIRQ != 0 {
		r.cpuAction &^= actionIRQ
		return true
	}
	return false
}

// CheckAndResetDMA reports the pending channel mask (and clears it) if
// a DMA trigger is pending.
func (r *Registers) CheckAndResetDMA() (mask uint8, pending bool) {
	if r.cpuAction&actionDMA != 0 {
		r.cpuAction &^= actionDMA
		mask = r.dmaChannelMask
		r.dmaChannelMask = 0x00
		return mask, true
	}
	return 0, false
}

func (r *Registers) Read(offset int) uint8 {
	switch offset {
	case 0x10:
		var nmi uint8
		if r.nmiActive {
			nmi = 0x80
		}
		r.nmiActive = false
		return nmi | chipVersion
	case 0x11:
		var irq uint8
		if r.irqActive {
			irq = 0x80
		}
		r.irqActive = false
		return irq
	case 0x12:
		var v uint8
		if r.vblank {
			v |= 0x80
		}
		if r.hblank {
			v |= 0x40
		}
		if r.joypadAutoReadActive > 0 {
			v |= 0x01
		}
		return v
	case 0x13:
		return r.ioPort.Value()
	case 0x14:
		return uint8(r.divResult)
	case 0x15:
		return uint8(r.divResult >> 8)
	case 0x16:
		return uint8(r.multResult)
	case 0x17:
		return uint8(r.multResult >> 8)
	case 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F:
		pad := (offset - 0x18) / 2
		if offset%2 == 0 {
			return uint8(r.joypadButtonState[pad])
		}
		return uint8(r.joypadButtonState[pad] >> 8)
	default:
		return 0x00
	}
}

func (r *Registers) Write(offset int, value uint8) {
	switch offset {
	case 0x00:
		r.nmiEnabled = value&0x80 != 0
		r.joypadAutoReadEnabled = value&0x01 != 0
		switch value & 0x30 {
		case 0x10:
			r.irqEnabled = IrqMatchColumn
		case 0x20:
			r.irqEnabled = IrqMatchRow
		case 0x30:
			r.irqEnabled = IrqMatchRowAndColumn
		default:
			r.irqEnabled = IrqNever
		}
	case 0x01:
		r.ioPort.SetValue(value)
	case 0x02:
		r.multLhs = value
	case 0x03:
		r.multResult = uint16(r.multLhs) * uint16(value)
	case 0x04:
		r.divLhs = (r.divLhs &^ 0x00FF) | uint16(value)
	case 0x05:
		r.divLhs = (r.divLhs & 0x00FF) | uint16(value)<<8
	case 0x06:
		if value != 0 {
			r.divResult = r.divLhs / uint16(value)
			r.multResult = r.divLhs % uint16(value)
		} else {
			r.divResult = 0xFFFF
			r.multResult = r.divLhs
		}
	case 0x07:
		r.irqColumn = (r.irqColumn &^ 0x00FF) | uint16(value)
	case 0x08:
		r.irqColumn = (r.irqColumn & 0x00FF) | uint16(value&0x01)<<8
	case 0x09:
		r.irqRow = (r.irqRow &^ 0x00FF) | uint16(value)
	case 0x0A:
		r.irqRow = (r.irqRow & 0x00FF) | uint16(value&0x01)<<8
	case 0x0B:
		r.dmaChannelMask = value
		if value != 0x00 {
			r.cpuAction |= actionDMA
		}
	}
}
