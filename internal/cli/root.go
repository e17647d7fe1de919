// SPDX-License-Identifier: MIT

// Package cli wires the patterns command line: configuration, logging and the
// run, list, describe and eval subcommands.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/patterns/internal/config"
	"github.com/katalvlaran/patterns/internal/logger"
	"github.com/katalvlaran/patterns/internal/narrate"
)

// headerStyle is applied to section headers when color is on.
var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	color      bool

	cfg config.Config
	log *zap.Logger
}

// newLogger is swapped out in tests.
var newLogger = logger.New

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Run classic design pattern demonstrations",
		Long: `patterns narrates eighteen classic design patterns, one section each.

Run without arguments to execute the demos selected in the configuration
(all of them by default).`,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemos(cmd, a.cfg.Patterns)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML or TOML config file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&a.color, "color", false, "style section headers")

	cmd.AddCommand(
		runCmd(a),
		listCmd(a),
		describeCmd(a),
		evalCmd(a),
	)
	return cmd
}

// setup loads the config and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = a.color
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	l, err := newLogger(logger.Options{Level: level})
	if err != nil {
		return err
	}
	a.log = l
	a.log.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Strings("patterns", cfg.Patterns),
		zap.String("theme", cfg.Theme),
		zap.String("locale", cfg.Locale))
	return nil
}

// narrator builds the narrator for cmd's output from the loaded config.
func (a *app) narrator(cmd *cobra.Command) (*narrate.Narrator, error) {
	tag, err := a.cfg.Tag()
	if err != nil {
		return nil, err
	}
	opts := []narrate.Option{
		narrate.WithLocale(tag),
		narrate.WithSymbol(a.cfg.Currency),
		narrate.WithLogger(a.log),
	}
	if a.cfg.Color {
		opts = append(opts, narrate.WithHeaderStyle(headerStyle))
	}
	return narrate.New(cmd.OutOrStdout(), opts...), nil
}
