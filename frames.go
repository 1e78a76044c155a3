package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"vpet/internal/anim"
	"vpet/internal/clock"
)

var frameStyles = struct {
	header lipgloss.Style
	detail lipgloss.Style
	frame  lipgloss.Style
}{
	header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")),

	detail: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")),

	frame: lipgloss.NewStyle().
		PaddingLeft(2),
}

func (a *app) framesCmd() *cobra.Command {
	var loadedOnly bool

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "List the animation sequences the pet would play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.flags.Load()
			if err != nil {
				return err
			}

			var set anim.Set
			if loadedOnly {
				set, err = cfg.Loader().LoadAll(cfg.Assets)
				if err != nil {
					return err
				}
			} else {
				set = newEngine(cfg, clock.System{}).Animations()
			}

			printSet(cmd.OutOrStdout(), set)
			return nil
		},
	}

	cmd.Flags().BoolVar(&loadedOnly, "loaded-only", false, "Show only what was found on disk, without built-in sequences")
	return cmd
}

func printSet(w io.Writer, set anim.Set) {
	for _, c := range set.Categories() {
		seq, _ := set.Get(c)

		mode := "looping"
		if !seq.Looping() {
			mode = "once"
		}
		fmt.Fprintln(w, frameStyles.header.Render(fmt.Sprintf("%s (%s)", c, seq.Name())))
		fmt.Fprintln(w, frameStyles.detail.Render(fmt.Sprintf("  %d frames, %s, %s, id %s", seq.FrameCount(), seq.TotalDuration(), mode, seq.ID())))

		for i, f := range seq.Frames() {
			fmt.Fprintln(w, frameStyles.frame.Render(fmt.Sprintf("%2d. %s %s", i+1, f.ImagePath, f.Duration)))
		}
	}
}
