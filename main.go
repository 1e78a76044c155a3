package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vpet/internal/clock"
	"vpet/internal/config"
	"vpet/internal/pet"
	"vpet/internal/ui"
)

const Version = "v0.1.0"

// app carries what every command shares
type app struct {
	flags *config.Flags
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "vpet",
		Short:         "A virtual pet that lives in your terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runTUI,
	}
	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Open the pet in the terminal (default)",
			Args:  cobra.NoArgs,
			RunE:  a.runTUI,
		},
		a.framesCmd(),
		a.simulateCmd(),
		a.configCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newEngine builds an engine from cfg and loads its assets
func newEngine(cfg config.Config, c clock.Clock) *pet.Engine {
	opts := cfg.EngineOptions()
	opts.Clock = c
	e := pet.NewEngine(opts)
	e.LoadAssets(cfg.Assets, cfg.Loader())
	return e
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := a.flags.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(cfg.LogFile, "vpet")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	engine := newEngine(cfg, clock.System{})
	model := ui.NewModel(engine, clock.System{}, cfg.TickInterval.Duration)

	log.Printf("Starting %s with a %s tick", cfg.Pet.Name, cfg.TickInterval)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("pet display error: %w", err)
	}
	return nil
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.flags.Load()
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}
