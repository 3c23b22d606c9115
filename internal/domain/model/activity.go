// Package model contains domain models passed between layers.
package model

// Activity represents an extracurricular offering with a capacity and roster.
// Fields mirror the JSON shape served by GET /activities; the name is the
// directory key and is not repeated in the serialized attributes.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"` // informational only; never enforced
	Participants    []string `json:"participants"`     // unique emails, insertion order = signup order
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the store's backing slice.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
