package smoke

import "time"

// Config holds configuration for the smoke test.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumStudents int           // Number of students to register
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	LogFile     string        // Log file for test output
	KeepSignups bool          // Skip the unregister pass, leaving rosters populated
	Verbose     bool          // Enable verbose logging
}

// Registration pairs a generated student email with a target activity.
type Registration struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
}

// ActivityDetails mirrors the attributes served by GET /activities.
type ActivityDetails struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the success envelope for signup/unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the failure envelope.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Stats holds smoke test statistics.
type Stats struct {
	ActivitiesFound      int
	StudentsGenerated    int
	SignupsAttempted     int
	SignupsSuccessful    int
	SignupsFailed        int
	RostersVerified      int
	RosterMismatches     int
	UnregisterAttempted  int
	UnregisterSuccessful int
	UnregisterFailed     int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}
