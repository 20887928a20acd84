package api

import (
	"net/http"
	"testing"
)

func TestCreateEventRequiresTitleAndDate(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/admin/events",
		map[string]any{"event_date": "2026-05-01T18:00:00Z"}, token)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing title, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPost, "/api/admin/events",
		map[string]any{"title": "Meetup"}, token)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing date, got %d", recorder.Code)
	}
}

func TestEventOrganizersSurviveRoundTrip(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/admin/events", map[string]any{
		"title":        "Launch Night",
		"event_date":   "2026-05-01T18:00:00Z",
		"status":       "whenever",
		"organizers":   []string{"BrightForge"},
		"participants": []string{"Jane Doe"},
	}, token)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/events", nil, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var collection struct {
		Events []map[string]any `json:"events"`
		Total  int              `json:"total"`
	}
	decodeBody(t, recorder, &collection)
	if collection.Total != 1 {
		t.Fatalf("Expected one event, got %d", collection.Total)
	}

	event := collection.Events[0]
	organizers, _ := event["organizers"].([]any)
	participants, _ := event["participants"].([]any)
	if len(organizers) != 1 || organizers[0] != "BrightForge" {
		t.Errorf("Expected organizers [BrightForge], got %v", event["organizers"])
	}
	if len(participants) != 1 || participants[0] != "Jane Doe" {
		t.Errorf("Expected participants [Jane Doe], got %v", event["participants"])
	}
	if event["status"] != "upcoming" {
		t.Errorf("Expected coerced status upcoming, got %v", event["status"])
	}
}

func TestEventRoutesRequireAdmin(t *testing.T) {
	router := newDefaultTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/admin/events", map[string]any{
		"title":      "Sneaky",
		"event_date": "2026-05-01T18:00:00Z",
	}, "")
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", recorder.Code)
	}
}
