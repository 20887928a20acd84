package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

func NormalizeEventStatus(s string) EventStatus {
	switch EventStatus(s) {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted:
		return EventStatus(s)
	default:
		return EventStatusUpcoming
	}
}

// ParticipantTag marks entries in the organizers column that are team-member
// participants rather than organizing bodies. Both kinds share one array.
const ParticipantTag = "[PARTICIPANT] "

// Event represents a community or agency event. The wire shape splits
// organizers and participants; storage keeps them in a single tagged array.
type Event struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text"`
	EventDate   time.Time                   `json:"event_date" db:"event_date" gorm:"not null;index"`
	Location    string                      `json:"location" db:"location" gorm:"type:text"`
	ImageURL    string                      `json:"image_url" db:"image_url" gorm:"type:text"`
	Organizers  datatypes.JSONSlice[string] `json:"-" db:"organizers"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	Status      EventStatus                 `json:"status" db:"status" gorm:"type:text;not null"`
	Featured    bool                        `json:"featured" db:"featured"`
	CreatedAt   time.Time                   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.Status = NormalizeEventStatus(string(e.Status))
	return nil
}

// SetOrganizers rebuilds the tagged storage array from the two wire lists.
func (e *Event) SetOrganizers(organizers, participants []string) {
	merged := make([]string, 0, len(organizers)+len(participants))
	merged = append(merged, organizers...)
	for _, p := range participants {
		merged = append(merged, ParticipantTag+p)
	}
	e.Organizers = datatypes.NewJSONSlice(merged)
}

// OrganizerNames returns the untagged organizer entries.
func (e *Event) OrganizerNames() []string {
	names := []string{}
	for _, entry := range e.Organizers {
		if !strings.HasPrefix(entry, ParticipantTag) {
			names = append(names, entry)
		}
	}
	return names
}

// Participants returns the entries carrying the participant tag, stripped.
func (e *Event) Participants() []string {
	participants := []string{}
	for _, entry := range e.Organizers {
		if strings.HasPrefix(entry, ParticipantTag) {
			participants = append(participants, strings.TrimPrefix(entry, ParticipantTag))
		}
	}
	return participants
}

type eventAlias Event

// MarshalJSON serves the split organizers/participants wire shape.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		eventAlias
		Organizers   []string `json:"organizers"`
		Participants []string `json:"participants"`
	}{
		eventAlias:   eventAlias(e),
		Organizers:   e.OrganizerNames(),
		Participants: e.Participants(),
	})
}

// UnmarshalJSON accepts the split wire shape and merges it back into the
// tagged storage array.
func (e *Event) UnmarshalJSON(data []byte) error {
	var payload struct {
		eventAlias
		Organizers   []string `json:"organizers"`
		Participants []string `json:"participants"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	*e = Event(payload.eventAlias)
	e.Status = NormalizeEventStatus(string(e.Status))
	e.SetOrganizers(payload.Organizers, payload.Participants)
	return nil
}
