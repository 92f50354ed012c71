// Package main is the entry point for the reverie engine core.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmorandi/reverie/internal/config"
	"github.com/lmorandi/reverie/internal/engine"
	"github.com/lmorandi/reverie/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("reverie %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: os.Stderr,
		Prefix: "reverie",
	})

	eng := engine.New(cfg, engine.WithLogger(logger))
	eng.States().SetInitialState(&idleState{out: os.Stdout})

	if configPath != "" {
		watcher, err := config.Watch(configPath, eng.Dispatcher(), eng.ApplyConfig, logger.WithComponent("config"))
		if err != nil {
			logger.Warn("config watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go readInput(ctx, eng)

	if err := eng.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// readInput feeds stdin lines into the engine until the context is done.
func readInput(ctx context.Context, eng *engine.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		eng.HandleInput(scanner.Text())
	}
}

// idleState is the placeholder mode installed at startup. Real games
// replace it through the state controller.
type idleState struct {
	out *os.File
}

func (s *idleState) Name() string { return "Idle" }

func (s *idleState) Enter() {
	fmt.Fprintln(s.out, "reverie core ready")
}

func (s *idleState) HandleInput(input string) {
	fmt.Fprintf(s.out, "> %s\n", input)
}

func (s *idleState) Update(time.Duration) {}

func (s *idleState) Render() {}

func (s *idleState) Exit() {}
