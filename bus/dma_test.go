package bus_test

import (
	"testing"

	"github.com/bdwalton/snes816/bus"
	"github.com/bdwalton/snes816/cartridge"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *bus.Router {
	t.Helper()
	data := make([]byte, 0x10000)
	return bus.NewRouter(&cartridge.ROM{Mode: cartridge.LoROM, Data: data, Sram: make([]byte, 0x2000)})
}

// TestDMATransferTargetsPpuNotWram exercises a general-purpose DMA
// transfer from WRAM into VMDATAL ($2118), the PPU's VRAM write port,
// and confirms the bytes land in VRAM rather than in WRAM at the raw
// $0018 offset a missing $2100 base would produce.
func TestDMATransferTargetsPpuNotWram(t *testing.T) {
	r := newTestRouter(t)

	src := bus.Address{Bank: 0x00, Offset: 0x1000}
	r.Write(src, 0xAB)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x1001}, 0xCD)

	// $2115 bit 7: increment the VRAM address after the high-byte write
	// rather than the low-byte write, so a low/high byte pair lands in
	// the same VRAM word.
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2115}, 0x80)

	// Channel 0 control ($4300): increment up, two-byte (AB) transfer so
	// successive bytes alternate between destination and destination+1.
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4300}, 0x01)
	// Destination low byte ($4301) = $18 -> VMDATAL ($2118).
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4301}, 0x18)
	// Source address ($4302/$4303/$4304) = $00:1000.
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4302}, 0x00)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4303}, 0x10)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4304}, 0x00)
	// Count ($4305/$4306) = 2 bytes.
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4305}, 0x02)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4306}, 0x00)

	// Point VRAM write address at 0 before the transfer.
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2116}, 0x00)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2117}, 0x00)

	r.TriggerDMA(0x01)

	// Re-point the VRAM read address back at 0 and read the low/high
	// bytes the DMA wrote into VRAM word 0.
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2116}, 0x00)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2117}, 0x00)
	lo := r.Read(bus.Address{Bank: 0x00, Offset: 0x2139})
	hi := r.Read(bus.Address{Bank: 0x00, Offset: 0x213A})

	assert.Equal(t, uint8(0xAB), lo)
	assert.Equal(t, uint8(0xCD), hi)

	// WRAM at the raw (baseless) offset $0018 must be untouched.
	assert.Equal(t, uint8(0x00), r.Read(bus.Address{Bank: 0x00, Offset: 0x0018}))
}

func TestDMATransferReverseWramToSource(t *testing.T) {
	r := newTestRouter(t)

	// Seed VRAM word 0 via the normal write port so reverse transfer has
	// something to read back out. Bit 7 of $2115 makes the address
	// advance after the high-byte write, so this low/high pair lands in
	// the same word.
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2115}, 0x80)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2116}, 0x00)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2117}, 0x00)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2118}, 0x55)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2119}, 0x66)

	r.Write(bus.Address{Bank: 0x00, Offset: 0x2116}, 0x00)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x2117}, 0x00)

	// Channel 1 ($4310-$431A), reverse transfer bit set, AB transfer
	// mode. Destination $39 is VMDATAL/VMDATAH's *read* port: a reverse
	// transfer reading raw $2118/$2119 would read the write-only ports
	// and get back zero, not the stored word.
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4310}, 0x81)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4311}, 0x39)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4312}, 0x20)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4313}, 0x00)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4314}, 0x00)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4315}, 0x02)
	r.Write(bus.Address{Bank: 0x00, Offset: 0x4316}, 0x00)

	r.TriggerDMA(0x02)

	assert.Equal(t, uint8(0x55), r.Read(bus.Address{Bank: 0x00, Offset: 0x0020}))
	assert.Equal(t, uint8(0x66), r.Read(bus.Address{Bank: 0x00, Offset: 0x0021}))
}
