package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/wasal/kidscore/internal/simulator"
)

// Default configuration constants.
const (
	defaultChildren   = 20
	defaultSessions   = 200
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
	defaultSeed       = 1
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		children = flag.Int("children", defaultChildren, "Number of simulated children")
		sessions = flag.Int("sessions", defaultSessions, "Number of sessions to generate and submit")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent submitters")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed     = flag.Int64("seed", defaultSeed, "RNG seed; the same seed produces the same sessions")
		logFile  = flag.String("log", "", "Log file for run output (default: simulation_TIMESTAMP.log)")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		simulator.ShowHelp()
		return
	}

	if err := simulator.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &simulator.Config{
		BaseURL:     *baseURL,
		NumChildren: *children,
		NumSessions: *sessions,
		Workers:     *workers,
		Timeout:     *timeout,
		Seed:        *seed,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	if err := simulator.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Simulation failed: " + err.Error() + "\n")
		return
	}
}
