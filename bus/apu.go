package bus

// Apu is the CPU-side half of the SPC700 handshake ports at
// $2140-$2143. It never runs the audio co-processor or synthesizes
// sound (an explicit non-goal) — it only reproduces the handshake byte
// sequence a boot ROM/IPL stub drives to hand a transfer off to the
// APU, which is as much of the APU's behavior as CPU-visible state
// requires.
type Apu struct {
	ports            [4]uint8
	transferStarted  bool
}

func NewApu() *Apu {
	return &Apu{ports: [4]uint8{0xAA, 0x00, 0x00, 0x00}}
}

func (a *Apu) Read(offset int) uint8 {
	switch offset {
	case 0x00:
		return a.ports[0]
	case 0x01:
		return 0xBB
	case 0x02:
		return a.ports[2]
	case 0x03:
		return a.ports[3]
	default:
		return 0x00
	}
}

func (a *Apu) Write(offset int, value uint8) {
	switch offset {
	case 0x00:
		switch {
		case a.transferStarted:
			if value == 0 || value == a.ports[0]+1 || a.ports[1] != 0 {
				// mid-transfer handshake byte, nothing to settle yet
			} else {
				a.transferStarted = false
			}
			a.ports[0] = value
		case value == 0xCC && a.ports[1] != 0:
			a.transferStarted = true
			a.ports[0] = value
		case value == 0x00:
			a.ports[0] = 0xAA
		}
	case 0x01:
		a.ports[1] = value
	case 0x02:
		a.ports[2] = value
	case 0x03:
		a.ports[3] = value
	}
}
