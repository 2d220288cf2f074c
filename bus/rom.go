package bus

import "github.com/bdwalton/snes816/cartridge"

// Rom wraps a loaded cartridge.ROM as the two bus ports the router
// addresses separately: the (read-only) PRG data and the (read-write)
// SRAM backing.
type Rom struct {
	cart *cartridge.ROM
}

// NewRom wraps a loaded cartridge for bus access.
func NewRom(cart *cartridge.ROM) *Rom {
	return &Rom{cart: cart}
}

func (r *Rom) Mode() cartridge.Mode { return r.cart.Mode }

// Data is the read-only PRG port.
func (r *Rom) Data() Port { return romData{r.cart} }

// Sram is the read-write cartridge RAM port, indexed modulo its size
// (zero-length SRAM always reads 0 and ignores writes).
func (r *Rom) Sram() Port { return sramData{r.cart} }

type romData struct{ cart *cartridge.ROM }

func (d romData) Read(offset int) uint8 { return d.cart.Data[offset] }
func (d romData) Write(offset int, v uint8) {
	// PRG ROM is not writable.
}

type sramData struct{ cart *cartridge.ROM }

func (d sramData) Read(offset int) uint8 {
	if n := len(d.cart.Sram); n > 0 {
		return d.cart.Sram[offset%n]
	}
	return 0
}

func (d sramData) Write(offset int, v uint8) {
	if n := len(d.cart.Sram); n > 0 {
		d.cart.Sram[offset%n] = v
	}
}
