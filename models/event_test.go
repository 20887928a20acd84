package models

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestEventOrganizersTaggedStorage(t *testing.T) {
	var e Event
	e.SetOrganizers([]string{"BrightForge"}, []string{"Jane Doe", "John Smith"})

	expected := []string{"BrightForge", ParticipantTag + "Jane Doe", ParticipantTag + "John Smith"}
	if !reflect.DeepEqual([]string(e.Organizers), expected) {
		t.Errorf("Expected tagged array %v, got %v", expected, e.Organizers)
	}

	if !reflect.DeepEqual(e.OrganizerNames(), []string{"BrightForge"}) {
		t.Errorf("Expected organizers [BrightForge], got %v", e.OrganizerNames())
	}
	if !reflect.DeepEqual(e.Participants(), []string{"Jane Doe", "John Smith"}) {
		t.Errorf("Expected participants stripped of tag, got %v", e.Participants())
	}
}

func TestEventMarshalSplitsOrganizers(t *testing.T) {
	e := Event{
		Title:     "Launch Night",
		EventDate: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
		Status:    EventStatusUpcoming,
	}
	e.SetOrganizers([]string{"BrightForge"}, []string{"Jane Doe"})

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal wire shape failed: %v", err)
	}

	organizers, ok := wire["organizers"].([]any)
	if !ok || len(organizers) != 1 || organizers[0] != "BrightForge" {
		t.Errorf("Expected organizers [BrightForge], got %v", wire["organizers"])
	}
	participants, ok := wire["participants"].([]any)
	if !ok || len(participants) != 1 || participants[0] != "Jane Doe" {
		t.Errorf("Expected participants [Jane Doe], got %v", wire["participants"])
	}
}

func TestEventUnmarshalMergesOrganizers(t *testing.T) {
	payload := `{
		"title": "Meetup",
		"event_date": "2026-04-10T18:00:00Z",
		"status": "nonsense",
		"organizers": ["BrightForge"],
		"participants": ["Jane Doe"]
	}`

	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	expected := []string{"BrightForge", ParticipantTag + "Jane Doe"}
	if !reflect.DeepEqual([]string(e.Organizers), expected) {
		t.Errorf("Expected merged tagged array %v, got %v", expected, e.Organizers)
	}
	if e.Status != EventStatusUpcoming {
		t.Errorf("Expected unknown status coerced to upcoming, got %s", e.Status)
	}
}
