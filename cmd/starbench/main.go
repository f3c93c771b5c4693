// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command starbench benchmarks the star rendering strategies headlessly
// or shows the interactive scene in a terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/starbench"
	"github.com/gogpu/starbench/bench"
	"github.com/gogpu/starbench/config"
	"github.com/gogpu/starbench/engine"
	"github.com/gogpu/starbench/internal/hud"
	"github.com/gogpu/starbench/internal/sound"
	"github.com/gogpu/starbench/internal/term"
)

const (
	hudSize     = 13 // points
	soundVolume = 0.5
)

type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:           "starbench",
		Short:         "Star rendering strategy benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogging(g.logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log to stderr at this level (debug, info, warn, error)")

	rootCmd.AddCommand(benchCmd(&g))
	rootCmd.AddCommand(viewCmd(&g))
	rootCmd.AddCommand(configCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "starbench:", err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	if level == "" {
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	starbench.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func benchCmd(g *globalFlags) *cobra.Command {
	var (
		strategies []string
		frames     int
		snapshots  string
		withHUD    bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the scripted drag benchmark for each strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g.configPath)
			if err != nil {
				return err
			}
			if len(strategies) > 0 {
				cfg.Bench.Strategies = nil
				for _, name := range strategies {
					s, err := engine.ParseStrategy(name)
					if err != nil {
						return err
					}
					cfg.Bench.Strategies = append(cfg.Bench.Strategies, s)
				}
			}
			if cmd.Flags().Changed("frames") {
				cfg.Bench.Frames = frames
			}
			if snapshots != "" {
				cfg.Bench.SnapshotDir = snapshots
			}

			var opts []bench.Option
			if withHUD {
				h, err := hud.New(hudSize)
				if err != nil {
					return err
				}
				defer h.Close()
				opts = append(opts, bench.WithHUD(h))
			}

			results, err := bench.NewRunner(cfg, opts...).Run(cmd.Context())
			if err != nil {
				return err
			}
			return bench.WriteReport(cmd.OutOrStdout(), language.English, results)
		},
	}

	cmd.Flags().StringSliceVarP(&strategies, "strategy", "s", nil, "strategies to run (default all)")
	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "ticks per strategy")
	cmd.Flags().StringVarP(&snapshots, "snapshots", "o", "", "directory for PNG snapshots")
	cmd.Flags().BoolVar(&withHUD, "hud", false, "draw the metrics overlay on snapshots")
	return cmd
}

func viewCmd(g *globalFlags) *cobra.Command {
	var withSound bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the interactive scene in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g.configPath)
			if err != nil {
				return err
			}
			e := engine.New(cfg.EngineOptions()...)

			if withSound || cfg.View.Sound {
				p := sound.NewPlayer(soundVolume)
				if err := p.Init(); err != nil {
					starbench.Logger().Warn("sound disabled", "err", err)
				} else {
					defer p.Close()
					e.Subscribe(p.Listener())
				}
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			return term.NewViewer(screen, e, cfg.View.FPS).Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&withSound, "sound", false, "click when grabbing and releasing stars")
	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
