// snake is a real-time snake game for the terminal.
//
// Usage:
//
//	snake              - Play with the configured frontend
//	snake frontends    - List available frontends
//
// Flags:
//
//	--frontend <name>  - Frontend to play on: term, tui, cell (default: term)
//	--seed <value>     - RNG seed for reproducible food placement
//	--config <path>    - Path to a custom config YAML
//	--log-file <path>  - Write diagnostic logs to this file
//	--log-level <lvl>  - Log level: debug, info, warn, error
//
// Steer with the arrow keys. The game ends when the head reaches the left
// or top edge; Ctrl+C quits at any time.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/registry"

	// Import frontends to register them
	_ "github.com/vovakirdan/term-snake/internal/platform/cell"
	_ "github.com/vovakirdan/term-snake/internal/platform/term"
	_ "github.com/vovakirdan/term-snake/internal/platform/tui"
)

var (
	flagFrontend string
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake in your terminal",
	Long: `Snake is a real-time terminal game. Steer with the arrow keys,
eat the food to grow, and avoid the left and top edges.

Examples:
  snake
  snake --frontend tui
  snake --seed 42 --log-file snake.log --log-level debug
  snake frontends`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend to play on (see 'snake frontends')")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(frontendsCmd)
}

func runPlay(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(&cfg)

	// Check if frontend exists
	if !registry.Exists(cfg.Frontend) {
		return fmt.Errorf("unknown frontend %q (run 'snake frontends' to see available frontends)", cfg.Frontend)
	}

	frontend, err := registry.Create(cfg.Frontend)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); err == nil {
			err = closeErr
		}
	}()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", frontend.Name(), "seed", seed)

	err = frontend.Run(ctx, registry.Options{
		Seed:    seed,
		Display: cfg.Display,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("session failed", "error", err)
		return err
	}

	logger.Info("session ended")
	return nil
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cfg *config.Config) {
	if flagFrontend != "" {
		cfg.Frontend = flagFrontend
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}
