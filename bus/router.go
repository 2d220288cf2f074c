package bus

import "github.com/bdwalton/snes816/cartridge"

const (
	fastCycles      uint64 = 6
	slowCycles      uint64 = 8
	extraSlowCycles uint64 = 12
)

// Router is the memory bus: it decodes every CPU-visible (bank, offset)
// address to a Port plus the IO-wait cycle class that access costs, and
// drives the PPU's dot clock forward on every access so VBlank/HBlank/
// raster-match state stays in lockstep with the bus. Grounded on
// original_source/hardware/hardware.rs's Hardware::byte_at.
type Router struct {
	rom    *Rom
	wram   *Wram
	ppu    *Ppu
	apu    *Apu
	joypad *Joypad
	regs   *Registers
	dma    [DmaChannelCount]*DmaChannel
	open   openBus
	clock  uint64
}

// NewRouter wires a loaded cartridge to a fresh set of SNES hardware.
func NewRouter(cart *cartridge.ROM) *Router {
	io := NewIoPort()
	ppu := NewPpu(io)
	joy := NewJoypad()
	r := &Router{
		rom:    NewRom(cart),
		wram:   NewWram(),
		ppu:    ppu,
		apu:    NewApu(),
		joypad: joy,
		regs:   NewRegisters(io),
	}
	for i := range r.dma {
		r.dma[i] = NewDmaChannel()
	}
	return r
}

func (r *Router) Ppu() *Ppu             { return r.ppu }
func (r *Router) Joypad() *Joypad       { return r.joypad }
func (r *Router) Registers() *Registers { return r.regs }
func (r *Router) Clock() uint64         { return r.clock }

// NMIPending reports and clears a pending NMI request.
func (r *Router) NMIPending() bool { return r.regs.CheckAndResetNMI() }

// IRQPending reports and clears a pending raster-match IRQ request.
func (r *Router) IRQPending() bool { return r.regs.CheckAndResetIRQ() }

// DMAPending reports and clears a pending DMA-trigger request.
func (r *Router) DMAPending() (mask uint8, pending bool) { return r.regs.CheckAndResetDMA() }

// Tick advances the PPU dot clock by cycles and, for every pixel that
// completes, runs one hardware-register update (matching
// original_source's drain-while-pixel-completes shape in Hardware::tick).
func (r *Router) Tick(cycles uint64) {
	r.ppu.AddCycles(cycles)
	for r.ppu.NextPixel() {
		r.regs.Update(r.ppu, r.joypad)
	}
	r.clock += cycles
}

// locate resolves addr to the Port and byte offset backing it, and the
// cycle class that access costs.
func (r *Router) locate(addr Address) (Port, int, uint64) {
	bank, offset := addr.Bank, addr.Offset

	if bank&0x40 != 0 {
		switch bank {
		case 0x7E:
			return r.wram.Data(), int(offset), slowCycles
		case 0x7F:
			return r.wram.Data(), 0x10000 | int(offset), slowCycles
		default:
			if r.rom.Mode() == cartridge.HiROM {
				return r.rom.Data(), rom21(addr), slowCycles
			}
			if offset&0x8000 != 0 {
				return r.rom.Data(), rom20(addr), slowCycles
			}
			if bank&0x70 == 0x70 {
				return r.rom.Sram(), sram20(addr), slowCycles
			}
			return r.open, 0, fastCycles
		}
	}

	switch offset & 0xE000 {
	case 0x0000:
		return r.wram.Data(), int(offset), slowCycles
	case 0x2000:
		switch offset & 0xFFC0 {
		case 0x2100:
			return r.ppu, int(offset & 0x003F), fastCycles
		case 0x2140:
			return r.apu, int(offset & 0x0003), fastCycles
		case 0x2180:
			return r.wram, int(offset & 0x003F), fastCycles
		default:
			return r.open, 0, fastCycles
		}
	case 0x4000:
		switch offset & 0xFF80 {
		case 0x4200:
			return r.regs, int(offset & 0x007F), fastCycles
		case 0x4300:
			idx := int(offset&0x0070) >> 4
			return r.dma[idx], int(offset & 0x000F), fastCycles
		case 0x4000:
			return r.joypad, int(offset & 0x007F), extraSlowCycles
		default:
			return r.open, 0, fastCycles
		}
	case 0x6000:
		if r.rom.Mode() == cartridge.HiROM && bank&0x20 == 0x20 {
			return r.rom.Sram(), sram21(addr), slowCycles
		}
		return r.open, 0, slowCycles
	default:
		if r.rom.Mode() == cartridge.HiROM {
			return r.rom.Data(), rom21(addr), slowCycles
		}
		return r.rom.Data(), rom20(addr), slowCycles
	}
}

// Read reads one byte from addr, charging its IO-wait cycle cost.
func (r *Router) Read(addr Address) uint8 {
	port, offset, cycles := r.locate(addr)
	v := port.Read(offset)
	r.Tick(cycles)
	return v
}

// Write writes one byte to addr, charging its IO-wait cycle cost.
func (r *Router) Write(addr Address, value uint8) {
	port, offset, cycles := r.locate(addr)
	port.Write(offset, value)
	r.Tick(cycles)
}

// Read16 reads a 16-bit little-endian value at addr. Per the resolved
// Open Question (a), the second byte's offset wraps within the same
// bank rather than spilling into the next one.
func (r *Router) Read16(addr Address) uint16 {
	lo := r.Read(addr)
	hi := r.Read(Address{Bank: addr.Bank, Offset: addr.Offset + 1})
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a 16-bit little-endian value at addr, with the same
// same-bank wrap as Read16.
func (r *Router) Write16(addr Address, value uint16) {
	r.Write(addr, uint8(value))
	r.Write(Address{Bank: addr.Bank, Offset: addr.Offset + 1}, uint8(value>>8))
}

// TriggerDMA runs a general-purpose transfer on every channel selected
// in mask, moving bytes directly between bus addresses via Read/Write
// (so each byte transferred still charges its own port's cycle cost on
// top of the DMA setup/per-byte overhead).
func (r *Router) TriggerDMA(mask uint8) {
	runDMA(&r.dma, mask, func(src, dst Address) {
		r.Write(dst, r.Read(src))
	}, r.Tick)
}

func rom20(a Address) int {
	return 0x8000*int(a.Bank&0x7F) + int(a.Offset&0x7FFF)
}

func rom21(a Address) int {
	return 0x10000*int(a.Bank&0x3F) + int(a.Offset)
}

func sram20(a Address) int {
	return 0x8000*int(a.Bank&0x0F) + int(a.Offset&0x7FFF)
}

func sram21(a Address) int {
	return 0x2000*int(a.Bank&0x1F) + int(a.Offset&0x1FFF)
}
