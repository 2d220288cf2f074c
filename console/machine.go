// Package console wires a cpu65816.CPU to a bus.Router into a runnable
// machine, drives it from an ebiten.Game loop, and exposes the BIOS
// text debug console grounded on the teacher's own inspector.
package console

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"

	"github.com/bdwalton/snes816/bus"
	"github.com/bdwalton/snes816/cartridge"
	"github.com/bdwalton/snes816/cpu65816"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	displayWidth  = 256
	displayHeight = 224
)

// Machine owns the CPU and the bus it runs against, and is the
// ebiten.Game implementation the top-level command drives.
type Machine struct {
	cpu    *cpu65816.CPU
	router *bus.Router

	trace bool
}

// New wires a loaded cartridge into a fresh CPU+bus pair.
func New(cart *cartridge.ROM, trace bool) *Machine {
	router := bus.NewRouter(cart)
	m := &Machine{router: router, trace: trace}
	m.cpu = cpu65816.New(router)

	ebiten.SetWindowSize(displayWidth*2, displayHeight*2)
	ebiten.SetWindowTitle("snes816")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return m
}

// Layout returns the constant SNES display resolution, forcing ebiten
// to scale on window resize rather than reflow our (nonexistent)
// pixel buffer.
func (m *Machine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return displayWidth, displayHeight
}

// Draw has no pixel data to show: the PPU facade tracks register and
// timing state only, never a frame buffer (spec non-goal). It paints a
// flat field that tracks VBlank so a running machine is visibly alive.
func (m *Machine) Draw(screen *ebiten.Image) {
	if m.router.Ppu().VBlank() {
		screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x20, A: 0xFF})
	} else {
		screen.Fill(color.Black)
	}
}

// Update is a no-op: Run drives the CPU on its own goroutine so the
// emulation rate is independent of ebiten's render loop, matching the
// teacher's split between Bus.Update and Bus.Run.
func (m *Machine) Update() error {
	return nil
}

// Run steps the CPU until ctx is cancelled. It is the emulation driver;
// ebiten.RunGame drives only the window/input side.
func (m *Machine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			m.pollInput()
			if m.trace {
				fmt.Println(m.cpu)
			}
			m.cpu.Step()
		}
	}
}

// BIOS is the text debug console: a read-only inspector with
// breakpoints and a single-step/run loop, grounded on the teacher's own
// BIOS method. It never snapshots or rewinds state (spec non-goal); it
// only displays it and can reset the CPU.
func (m *Machine) BIOS(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", m.cpu)
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(R)un - run until a breakpoint or Ctrl-C")
		fmt.Println("(S)tep - step one instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(Q)uit - shut down")
		fmt.Printf("Choice: ")

		var in rune
		fmt.Scanf("%c\n", &in)

		switch in {
		case 'b', 'B':
			breaks[readAddress("Breakpoint (eg: 8000): ")] = struct{}{}
		case 'c', 'C':
			breaks = make(map[uint16]struct{})
		case 'e', 'E':
			m.cpu.Reset()
		case 'q', 'Q':
			return
		case 'r', 'R':
			cctx, cancel := context.WithCancel(ctx)
			go func() {
				select {
				case <-sigQuit:
					cancel()
				case <-cctx.Done():
				}
			}()
			m.runToBreakpoint(cctx, breaks)
			cancel()
		case 's', 'S':
			m.pollInput()
			m.cpu.Step()
		}
	}
}

func (m *Machine) runToBreakpoint(ctx context.Context, breaks map[uint16]struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			m.pollInput()
			m.cpu.Step()
			if _, hit := breaks[m.cpu.PC]; hit {
				return
			}
		}
	}
}

func readAddress(prompt string) uint16 {
	var a uint16
	fmt.Printf(prompt)
	fmt.Scanf("%04x\n", &a)
	return a
}
