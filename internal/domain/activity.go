package domain

import "errors"

// Roster validation failures. Messages are returned verbatim to clients.
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadyEnrolled  = errors.New("Student is already signed up")
	ErrNotEnrolled      = errors.New("Student is not registered")
)

// Activity is one extracurricular offering and its current roster.
// Name is the catalog key and is not part of the JSON object.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant reports whether participantID is on the roster
func (a *Activity) HasParticipant(participantID string) bool {
	return a.indexOf(participantID) >= 0
}

// indexOf returns the roster position of participantID or -1
func (a *Activity) indexOf(participantID string) int {
	for i, p := range a.Participants {
		if p == participantID {
			return i
		}
	}
	return -1
}

// AddParticipant appends participantID to the end of the roster
func (a *Activity) AddParticipant(participantID string) error {
	if a.HasParticipant(participantID) {
		return ErrAlreadyEnrolled
	}
	a.Participants = append(a.Participants, participantID)
	return nil
}

// RemoveParticipant drops participantID keeping the order of the others
func (a *Activity) RemoveParticipant(participantID string) error {
	i := a.indexOf(participantID)
	if i < 0 {
		return ErrNotEnrolled
	}
	a.Participants = append(a.Participants[:i:i], a.Participants[i+1:]...)
	return nil
}

// Clone returns a copy that shares no roster storage with a
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

// Catalog maps activity name to activity
type Catalog map[string]Activity

// Clone returns a deep copy of the catalog
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for name, activity := range c {
		out[name] = activity.Clone()
	}
	return out
}

// MessageResponse is the success body of signup and unregister
type MessageResponse struct {
	Message string `json:"message"`
}
