package smoke

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/guru01092001/skills-getting-started-with-github-copilot/pkg/logger"
)

const emailDomain = "mergington.edu"

// randomIndex returns a random int in [0, n) using crypto/rand.
func randomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateRegistrations creates unique student emails and assigns each to a
// random activity from the directory.
func generateRegistrations(ctx context.Context, config *Config, activities []string, stats *Stats) []Registration {
	logger.Get().Info(ctx, "generating student registrations",
		logger.Int("students", config.NumStudents),
		logger.Int("activities", len(activities)),
	)

	regs := make([]Registration, config.NumStudents)
	for i := range regs {
		// UUID local parts keep emails unique across runs against a
		// long-lived server.
		local := strings.Split(uuid.New().String(), "-")[0]
		regs[i] = Registration{
			Activity: activities[randomIndex(len(activities))],
			Email:    "student-" + local + "@" + emailDomain,
		}
	}

	stats.StudentsGenerated = len(regs)
	return regs
}
