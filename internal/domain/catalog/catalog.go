// Package catalog holds the seed directory of school activities.
package catalog

import (
	"github.com/guru01092001/skills-getting-started-with-github-copilot/internal/domain/model"
)

// Default returns the seed catalog the directory is built from at startup.
// Names are the directory keys; every activity starts with an empty roster.
func Default() []model.Activity {
	return []model.Activity{
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis techniques and compete in local tournaments",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
		},
		{
			Name:            "Basketball Team",
			Description:     "Join the school basketball team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
		},
		{
			Name:            "Art Club",
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
		},
		{
			Name:            "Robotics Club",
			Description:     "Design and build robots for regional competitions",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 16,
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
		},
	}
}
