package cartridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildLoROM returns a minimal 32KiB image with a valid LoROM header at
// 0x7F00, reset vector 0x8000, declared ROM size matching len(data).
func buildLoROM(size int) []byte {
	data := make([]byte, size)
	header := data[0x7F00:0x8000]
	copy(header[0xC0:0xD5], "TEST CARTRIDGE")
	header[0xD5] = 0x00 // LoROM
	header[0xD6] = 0x00 // no SRAM
	header[0xD7] = byte(log2(size / 0x400))
	header[0xD8] = 0x00
	header[0xFD] = 0x80 // reset vector high byte

	return data
}

func log2(n int) int {
	i := 0
	for n > 1 {
		n >>= 1
		i++
	}
	return i
}

func TestLoadLoROM(t *testing.T) {
	data := buildLoROM(0x8000)
	path := filepath.Join(t.TempDir(), "test.sfc")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write testdata: %v", err)
	}

	rom, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, LoROM, rom.Mode)
	assert.Equal(t, "TEST CARTRIDGE", rom.Title)
	assert.Equal(t, 0x8000, len(rom.Data))
}

func TestLoadStripsSMCHeader(t *testing.T) {
	data := buildLoROM(0x8000)
	withSMC := append(make([]byte, smcHeaderSize), data...)
	path := filepath.Join(t.TempDir(), "test_smc.sfc")
	if err := os.WriteFile(path, withSMC, 0644); err != nil {
		t.Fatalf("write testdata: %v", err)
	}

	rom, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 0x8000, len(rom.Data))
}

func TestLoadRejectsGarbage(t *testing.T) {
	data := make([]byte, 0x8000)
	path := filepath.Join(t.TempDir(), "garbage.sfc")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write testdata: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("expected an error loading an all-zero image, got nil")
	}
}
