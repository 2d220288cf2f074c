package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappingAdd8(t *testing.T) {
	tests := []struct {
		name       string
		a, b       uint8
		carryIn    bool
		wantSum    uint8
		wantCarry  bool
	}{
		{"no overflow", 0x01, 0x01, false, 0x02, false},
		{"wraps at 0xFF", 0xFF, 0x01, false, 0x00, true},
		{"carry in propagates", 0xFE, 0x01, true, 0x00, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, carry := WrappingAdd(tt.a, tt.b, tt.carryIn)
			assert.Equal(t, tt.wantSum, sum)
			assert.Equal(t, tt.wantCarry, carry)
		})
	}
}

func TestWrappingAdd16(t *testing.T) {
	sum, carry := WrappingAdd[uint16](0xFFFF, 0x0001, false)
	if sum != 0x0000 {
		t.Errorf("sum = 0x%04x, want 0x0000", sum)
	}
	if !carry {
		t.Errorf("carry = false, want true")
	}
}

func TestOverflowed(t *testing.T) {
	// 0x7F + 0x01 = 0x80 overflows (positive + positive = negative)
	if !Overflowed[uint8](0x7F, 0x01, 0x80) {
		t.Errorf("expected signed overflow for 0x7F+0x01")
	}
	// 0x01 + 0x01 = 0x02 does not
	if Overflowed[uint8](0x01, 0x01, 0x02) {
		t.Errorf("did not expect signed overflow for 0x01+0x01")
	}
}

func TestShiftLeftRight(t *testing.T) {
	v, carry := ShiftLeft[uint8](0x80, false)
	assert.Equal(t, uint8(0x00), v)
	assert.True(t, carry)

	v2, carry2 := ShiftRight[uint16](0x0001, true)
	assert.Equal(t, uint16(0x8000), v2)
	assert.True(t, carry2)
}

func TestJoin16(t *testing.T) {
	if got := Join16(0x34, 0x12); got != 0x1234 {
		t.Errorf("Join16(0x34, 0x12) = 0x%04x, want 0x1234", got)
	}
}

func TestLoHi(t *testing.T) {
	v := uint16(0xBEEF)
	if Lo(v) != 0xEF {
		t.Errorf("Lo(0xBEEF) = 0x%02x, want 0xef", Lo(v))
	}
	if Hi(v) != 0xBE {
		t.Errorf("Hi(0xBEEF) = 0x%02x, want 0xbe", Hi(v))
	}
	if Hi[uint8](0xEF) != 0 {
		t.Errorf("Hi of an 8-bit value must be 0")
	}
}
