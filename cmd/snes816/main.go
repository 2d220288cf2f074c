package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bdwalton/snes816/cartridge"
	"github.com/bdwalton/snes816/console"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func main() {
	var trace bool
	var bios bool
	var scale int

	rootCmd := &cobra.Command{
		Use:   "snes816 [rom]",
		Short: "A 65C816/SNES bus-and-CPU emulator core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := cartridge.Load(args[0])
			if err != nil {
				return fmt.Errorf("invalid ROM: %w", err)
			}

			m := console.New(cart, trace)
			// SNES display resolution (256x224) times the requested scale.
			ebiten.SetWindowSize(256*scale, 224*scale)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if bios {
				m.BIOS(ctx)
				return nil
			}

			go m.Run(ctx)

			if err := ebiten.RunGame(m); err != nil {
				return err
			}
			return nil
		},
	}
	rootCmd.Flags().BoolVar(&trace, "trace", false, "print each instruction's register state before executing it")
	rootCmd.Flags().BoolVar(&bios, "bios", false, "start the text debug console instead of the ebiten window")
	rootCmd.Flags().IntVar(&scale, "scale", 2, "window scale factor")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
