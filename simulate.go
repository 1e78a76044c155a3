package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"vpet/internal/anim"
	"vpet/internal/clock"
	"vpet/internal/pet"
	"vpet/internal/ui"
)

// simulation describes a headless run on a manual clock
type simulation struct {
	ticks   int
	step    time.Duration
	feedAt  []int
	petAt   []int
	waterAt []int
}

func (a *app) simulateCmd() *cobra.Command {
	sim := simulation{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the pet without a display and print every notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sim.ticks < 0 {
				return fmt.Errorf("--ticks must not be negative, got %d", sim.ticks)
			}
			if sim.step <= 0 {
				return fmt.Errorf("--step must be positive, got %s", sim.step)
			}

			cfg, err := a.flags.Load()
			if err != nil {
				return err
			}

			c := clock.NewManual(time.Now())
			engine := newEngine(cfg, c)
			sim.run(cmd.OutOrStdout(), engine, c)
			return nil
		},
	}

	cmd.Flags().IntVar(&sim.ticks, "ticks", 10, "Number of ticks to run")
	cmd.Flags().DurationVar(&sim.step, "step", 500*time.Millisecond, "Simulated time between ticks")
	cmd.Flags().IntSliceVar(&sim.feedAt, "feed-at", nil, "Tick indices at which to feed the pet")
	cmd.Flags().IntSliceVar(&sim.petAt, "pet-at", nil, "Tick indices at which to pet the pet")
	cmd.Flags().IntSliceVar(&sim.waterAt, "water-at", nil, "Tick indices at which to give water")
	return cmd
}

func (s simulation) run(w io.Writer, engine *pet.Engine, c *clock.Manual) {
	fmt.Fprintln(w, "VPet simulation")
	fmt.Fprintln(w, "===============")

	engine.Subscribe(pet.ListenerFuncs{
		OnPetData: func(a pet.Attributes) {
			fmt.Fprintf(w, "Pet Stats - State: %s, Animation: %s, Happiness: %.0f, Hunger: %.0f, Thirst: %.0f\n",
				a.Mood, a.Animation, a.Happiness, a.Hunger, a.Thirst)
		},
		OnFrame: func(f anim.Frame) {
			fmt.Fprintf(w, "Animation frame: %s (duration: %dms)\n", f.ImagePath, f.Duration.Milliseconds())
		},
		OnSequence: func(seq *anim.Sequence) {
			fmt.Fprintf(w, "Sequence: %s (%s, %d frames)\n", seq.Name(), seq.Category(), seq.FrameCount())
		},
	})

	fmt.Fprintln(w, "Starting pet simulation...")
	start := c.Now()

	for i := 0; i < s.ticks; i++ {
		engine.Tick(c.Advance(s.step))

		if slices.Contains(s.petAt, i) {
			fmt.Fprintln(w, "\nPetting the pet...")
			engine.OnPetted()
		}
		if slices.Contains(s.waterAt, i) {
			fmt.Fprintln(w, "\nGiving water...")
			engine.GiveWater()
		}
		if slices.Contains(s.feedAt, i) {
			fmt.Fprintln(w, "\nFeeding the pet...")
			engine.Feed()
		}
	}

	fmt.Fprintf(w, "\nSimulation finished after %d ticks (%s simulated).\n", s.ticks, c.Now().Sub(start))
	fmt.Fprint(w, ui.StatsCard(engine.Snapshot()))
}
