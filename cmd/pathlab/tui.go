package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/internal/config"
	"github.com/katalvlaran/pathlab/internal/tui"
	"github.com/katalvlaran/pathlab/pathfinder"
)

func (c *cli) tuiCmd() *cobra.Command {
	var (
		logFile string
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// the screen owns the terminal; logs go to a file or nowhere
			c.log.SetOutput(io.Discard)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				c.log.SetOutput(f)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.runTUI(ctx, seed, cmd.Flags().Changed("seed"))
		},
	}
	cmd.Flags().Int("size", grid.DefaultSize, "board edge length")
	cmd.Flags().Duration("delay", config.DefaultStepDelay, "pause after each search step")
	cmd.Flags().Bool("sound", true, "play a tone when a search finishes")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for random wall layouts")
	c.bind(config.KeyGridSize, cmd.Flags().Lookup("size"))
	c.bind(config.KeyStepDelay, cmd.Flags().Lookup("delay"))
	c.bind(config.KeySound, cmd.Flags().Lookup("sound"))
	return cmd
}

func (c *cli) runTUI(ctx context.Context, seed int64, seeded bool) error {
	session, err := pathfinder.NewSession(
		pathfinder.WithSize(c.cfg.GridSize),
		pathfinder.WithDepthLimit(c.cfg.DepthLimit),
		pathfinder.WithLogger(c.log),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	opts := []tui.Option{tui.WithStepDelay(c.cfg.StepDelay), tui.WithLogger(c.log)}
	if seeded {
		opts = append(opts, tui.WithSeed(seed))
	}
	if c.cfg.Sound {
		sp, err := tui.NewSpeaker()
		if err != nil {
			// non-fatal, the board works without sound
			c.log.WithError(err).Warn("audio initialization failed")
		} else {
			defer sp.Close()
			opts = append(opts, tui.WithCue(sp))
		}
	}

	err = tui.New(screen, session, opts...).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
