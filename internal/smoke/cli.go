package smoke

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "smoke_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the smoke test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Activities Smoke Test Tool
==========================

Exercises a running activities server end to end: signs students up,
verifies rosters via GET /activities, then unregisters them again.

Usage:
  go run cmd/smoke/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -students int
        Number of students to register (default 50)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for test output (default: smoke_log_TIMESTAMP.log)
  -keep
        Skip the unregister pass, leaving the rosters populated
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Smoke test a local server
  go run cmd/smoke/main.go

  # Fill rosters for manual frontend testing
  go run cmd/smoke/main.go -students 100 -keep

  # Test a remote deployment
  go run cmd/smoke/main.go -url http://activities.example.com -verbose
`)
}
