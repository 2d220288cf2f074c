package bus

import (
	"testing"

	"github.com/bdwalton/snes816/cartridge"
	"github.com/stretchr/testify/assert"
)

func testRom(mode cartridge.Mode, size int) *cartridge.ROM {
	return &cartridge.ROM{
		Mode: mode,
		Data: make([]byte, size),
		Sram: make([]byte, 0x2000),
	}
}

func TestWramDirectMapping(t *testing.T) {
	r := NewRouter(testRom(cartridge.LoROM, 0x8000))

	r.Write(Address{Bank: 0x00, Offset: 0x0010}, 0x42)
	assert.Equal(t, uint8(0x42), r.Read(Address{Bank: 0x00, Offset: 0x0010}))
	// banks 0x7E/0x7F are the flat WRAM mapping
	assert.Equal(t, uint8(0x42), r.Read(Address{Bank: 0x7E, Offset: 0x0010}))
}

func TestRead16SameBankWrap(t *testing.T) {
	r := NewRouter(testRom(cartridge.LoROM, 0x8000))

	// Bank 0x7E is WRAM across the whole bank, so both bytes are
	// writable; bank 0x7F:0000 is a different WRAM byte (still zero).
	r.Write(Address{Bank: 0x7E, Offset: 0xFFFF}, 0x34)
	r.Write(Address{Bank: 0x7E, Offset: 0x0000}, 0x12)

	got := r.Read16(Address{Bank: 0x7E, Offset: 0xFFFF})
	assert.Equal(t, uint16(0x1234), got, "16-bit read must wrap the offset within the same bank, not roll into bank 0x7F")
}

func TestLoROMDataMapping(t *testing.T) {
	data := make([]byte, 0x10000)
	data[0x0000] = 0xAB
	rom := &cartridge.ROM{Mode: cartridge.LoROM, Data: data}
	r := NewRouter(rom)

	got := r.Read(Address{Bank: 0x00, Offset: 0x8000})
	assert.Equal(t, uint8(0xAB), got)
}

func TestRegisterWindowRouting(t *testing.T) {
	r := NewRouter(testRom(cartridge.LoROM, 0x8000))

	r.Write(Address{Bank: 0x00, Offset: 0x4202}, 7)
	r.Write(Address{Bank: 0x00, Offset: 0x4203}, 6)
	assert.Equal(t, uint8(42), r.Read(Address{Bank: 0x00, Offset: 0x4216}))
}

func TestDivisionByZeroYieldsAllOnes(t *testing.T) {
	r := NewRouter(testRom(cartridge.LoROM, 0x8000))

	r.Write(Address{Bank: 0x00, Offset: 0x4204}, 0x34)
	r.Write(Address{Bank: 0x00, Offset: 0x4205}, 0x12)
	r.Write(Address{Bank: 0x00, Offset: 0x4206}, 0x00)

	assert.Equal(t, uint8(0xFF), r.Read(Address{Bank: 0x00, Offset: 0x4214}))
	assert.Equal(t, uint8(0xFF), r.Read(Address{Bank: 0x00, Offset: 0x4215}))
}
