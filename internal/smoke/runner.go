package smoke

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/pkg/logger"
)

// Run executes the complete smoke test against a running server.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting activities smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("students", config.NumStudents),
		logger.Int("workers", config.Workers),
		logger.Duration("timeout", config.Timeout),
		logger.Bool("keepSignups", config.KeepSignups),
	)

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Check the root redirect the frontend relies on
	if err := checkRootRedirect(ctx, client, config); err != nil {
		return fmt.Errorf("root redirect check failed: %w", err)
	}

	// Step 3: Fetch the activity directory
	directory, err := fetchDirectory(ctx, client, config)
	if err != nil {
		return fmt.Errorf("directory fetch failed: %w", err)
	}
	stats.ActivitiesFound = len(directory)

	names := make([]string, 0, len(directory))
	for name := range directory {
		names = append(names, name)
	}
	sort.Strings(names)

	// Step 4: Generate registrations
	regs := generateRegistrations(ctx, config, names, stats)

	// Step 5: Sign everyone up concurrently
	if err := submitRegistrations(ctx, client, config, "signup", regs, stats); err != nil {
		return fmt.Errorf("signup submission failed: %w", err)
	}

	// Step 6: Verify rosters
	if err := verifyRosters(ctx, client, config, regs, true, stats); err != nil {
		return fmt.Errorf("roster verification failed: %w", err)
	}

	// Step 7: Unregister everyone and verify removal
	if !config.KeepSignups {
		if err := submitRegistrations(ctx, client, config, "unregister", regs, stats); err != nil {
			return fmt.Errorf("unregister submission failed: %w", err)
		}
		if err := verifyRosters(ctx, client, config, regs, false, stats); err != nil {
			return fmt.Errorf("post-unregister verification failed: %w", err)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	if stats.RosterMismatches > 0 || stats.SignupsFailed > 0 || stats.UnregisterFailed > 0 {
		return fmt.Errorf("smoke test found failures: %d signup, %d unregister, %d roster",
			stats.SignupsFailed, stats.UnregisterFailed, stats.RosterMismatches)
	}

	logger.Get().Info(ctx, "smoke test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Any 200 counts as healthy (the endpoint serves Prometheus metrics).
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// checkRootRedirect verifies GET / issues a 307 to the static index page.
func checkRootRedirect(ctx context.Context, client *HTTPClient, config *Config) error {
	resp, err := client.Get(ctx, config.BaseURL+"/")
	if err != nil {
		return fmt.Errorf("failed to fetch root: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusTemporaryRedirect {
		return fmt.Errorf("expected 307 from root, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/static/index.html" {
		return fmt.Errorf("unexpected redirect target: %q", loc)
	}
	return nil
}

// fetchDirectory retrieves the full activity directory.
func fetchDirectory(ctx context.Context, client *HTTPClient, config *Config) (map[string]ActivityDetails, error) {
	resp, err := client.Get(ctx, config.BaseURL+"/activities")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("activities fetch failed with status: %d", resp.StatusCode)
	}

	var directory map[string]ActivityDetails
	if err := decodeBody(resp, &directory); err != nil {
		return nil, err
	}
	if len(directory) == 0 {
		return nil, fmt.Errorf("directory is empty")
	}
	return directory, nil
}

// submitRegistrations posts signup or unregister requests concurrently using
// a worker pool.
func submitRegistrations(ctx context.Context, client *HTTPClient, config *Config, action string, regs []Registration, stats *Stats) error {
	log.Printf("📤 Submitting %d %s requests with %d workers...", len(regs), action, config.Workers)

	var (
		successful int64
		failed     int64
	)

	regChan := make(chan Registration, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for reg := range regChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if submitSingleRegistration(ctx, client, config, action, reg) {
					atomic.AddInt64(&successful, 1)
				} else {
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	for _, reg := range regs {
		select {
		case <-ctx.Done():
			close(regChan)
			wg.Wait()
			return fmt.Errorf("context cancelled during submission: %w", ctx.Err())
		case regChan <- reg:
		}
	}
	close(regChan)
	wg.Wait()

	switch action {
	case "signup":
		stats.SignupsAttempted = len(regs)
		stats.SignupsSuccessful = int(successful)
		stats.SignupsFailed = int(failed)
	case "unregister":
		stats.UnregisterAttempted = len(regs)
		stats.UnregisterSuccessful = int(successful)
		stats.UnregisterFailed = int(failed)
	}

	log.Printf("✅ %s complete: %d ok, %d failed", action, successful, failed)
	return nil
}

// submitSingleRegistration posts one request and checks the envelope.
func submitSingleRegistration(ctx context.Context, client *HTTPClient, config *Config, action string, reg Registration) bool {
	resp, err := client.Post(ctx, registrationURL(config.BaseURL, action, reg))
	if err != nil {
		log.Printf("❌ %s request failed for %s: %v", action, reg.Email, err)
		return false
	}

	if resp.StatusCode != http.StatusOK {
		var detail DetailResponse
		_ = decodeBody(resp, &detail)
		log.Printf("❌ %s rejected for %s (%d): %s", action, reg.Email, resp.StatusCode, detail.Detail)
		return false
	}

	var msg MessageResponse
	if err := decodeBody(resp, &msg); err != nil {
		log.Printf("❌ bad %s response for %s: %v", action, reg.Email, err)
		return false
	}
	if config.Verbose {
		log.Printf("   %s", msg.Message)
	}
	return msg.Message != ""
}

// verifyRosters re-fetches the directory and checks that every registration
// is present (wantPresent) or absent after the unregister pass.
func verifyRosters(ctx context.Context, client *HTTPClient, config *Config, regs []Registration, wantPresent bool, stats *Stats) error {
	log.Println("🔍 Verifying rosters...")

	directory, err := fetchDirectory(ctx, client, config)
	if err != nil {
		return err
	}

	mismatches := 0
	for _, reg := range regs {
		details, ok := directory[reg.Activity]
		if !ok {
			log.Printf("⚠️  activity %q missing from directory", reg.Activity)
			mismatches++
			continue
		}
		present := false
		for _, p := range details.Participants {
			if p == reg.Email {
				present = true
				break
			}
		}
		if present != wantPresent {
			log.Printf("⚠️  roster mismatch: %s in %q, present=%v want=%v",
				reg.Email, reg.Activity, present, wantPresent)
			mismatches++
		}
	}

	stats.RostersVerified += len(regs) - mismatches
	stats.RosterMismatches += mismatches

	if mismatches == 0 {
		log.Println("✅ Roster verification completed")
	}
	return nil
}

// displayFinalStats prints the summary of the run.
func displayFinalStats(stats *Stats) {
	log.Println("📊 Smoke test summary")
	log.Printf("   activities found:      %d", stats.ActivitiesFound)
	log.Printf("   students generated:    %d", stats.StudentsGenerated)
	log.Printf("   signups ok/failed:     %d/%d", stats.SignupsSuccessful, stats.SignupsFailed)
	log.Printf("   unregister ok/failed:  %d/%d", stats.UnregisterSuccessful, stats.UnregisterFailed)
	log.Printf("   rosters ok/mismatched: %d/%d", stats.RostersVerified, stats.RosterMismatches)
	log.Printf("   duration:              %s", stats.Duration)
}
