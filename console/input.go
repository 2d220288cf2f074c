package console

import (
	"github.com/bdwalton/snes816/bus"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBits pairs an ebiten key with the SNES button bit it drives.
// Ports 2 and 3 of the auto-read snapshot exist only for multitap and
// are never written here.
var keyBits = []struct {
	key ebiten.Key
	bit uint16
}{
	{ebiten.KeyZ, bus.ButtonB},
	{ebiten.KeyX, bus.ButtonA},
	{ebiten.KeyA, bus.ButtonY},
	{ebiten.KeyS, bus.ButtonX},
	{ebiten.KeyQ, bus.ButtonL},
	{ebiten.KeyW, bus.ButtonR},
	{ebiten.KeyBackspace, bus.ButtonSelect},
	{ebiten.KeyEnter, bus.ButtonStart},
	{ebiten.KeyUp, bus.ButtonUp},
	{ebiten.KeyDown, bus.ButtonDown},
	{ebiten.KeyLeft, bus.ButtonLeft},
	{ebiten.KeyRight, bus.ButtonRight},
}

// pollInput samples the keyboard into controller port 0 every step,
// the way the teacher's controller.poll samples into its own single
// live-state byte.
func (m *Machine) pollInput() {
	var state uint16
	for _, kb := range keyBits {
		if ebiten.IsKeyPressed(kb.key) {
			state |= kb.bit
		}
	}
	m.router.Joypad().SetButtons(0, state)
}
