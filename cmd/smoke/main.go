package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/smoke"
)

// Default configuration constants.
const (
	defaultNumStudents = 50
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8000", "Base URL of the service")
		numStudents = flag.Int("students", defaultNumStudents, "Number of students to register")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile     = flag.String("log", "", "Log file for test output (default: smoke_log_TIMESTAMP.log)")
		keep        = flag.Bool("keep", false, "Skip the unregister pass, leaving the rosters populated")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := smoke.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	config := &smoke.Config{
		BaseURL:     *baseURL,
		NumStudents: *numStudents,
		Workers:     *workers,
		Timeout:     *timeout,
		LogFile:     *logFile,
		KeepSignups: *keep,
		Verbose:     *verbose,
	}

	if err := smoke.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Smoke test failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
