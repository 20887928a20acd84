package api

import (
	"net/http"
	"testing"
)

func TestCreateCollaborationRequiresName(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/network/collaborations",
		map[string]any{"description": "Joint accelerator program"}, token)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing name, got %d", recorder.Code)
	}

	var response ErrorResponse
	decodeBody(t, recorder, &response)
	if response.Error != "Name is required" {
		t.Errorf("Expected error %q, got %q", "Name is required", response.Error)
	}
}

func TestCreatePartnerRequiresName(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/network/partners",
		map[string]any{"role": "Design consultant"}, token)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing name, got %d", recorder.Code)
	}

	var response ErrorResponse
	decodeBody(t, recorder, &response)
	if response.Error != "Name is required" {
		t.Errorf("Expected error %q, got %q", "Name is required", response.Error)
	}
}

func TestCollaborationUpdateAndDeleteRoundTrip(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/network/collaborations", map[string]any{
		"name":      "Nordic Startup Hub",
		"highlight": "2024 hackathon",
	}, token)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var created map[string]any
	decodeBody(t, recorder, &created)
	collaborationID, _ := created["id"].(string)
	if collaborationID == "" {
		t.Fatalf("Expected created collaboration to carry an id, got %v", created)
	}

	recorder = doJSON(t, router, http.MethodPut, "/api/network/collaborations/"+collaborationID,
		map[string]any{"link_url": "https://hub.example.com"}, token)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 on update, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var updated map[string]any
	decodeBody(t, recorder, &updated)
	if updated["link_url"] != "https://hub.example.com" {
		t.Errorf("Expected updated link, got %v", updated["link_url"])
	}
	if updated["highlight"] != "2024 hackathon" {
		t.Errorf("Expected untouched highlight preserved, got %v", updated["highlight"])
	}

	recorder = doJSON(t, router, http.MethodDelete, "/api/network/collaborations/"+collaborationID, nil, token)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 on delete, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/network/collaborations", nil, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}
	var collection CollaborationCollection
	decodeBody(t, recorder, &collection)
	if collection.Total != 0 {
		t.Errorf("Expected empty collaboration list after delete, got %d", collection.Total)
	}
}

func TestPartnerUpdateAndDeleteRoundTrip(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/network/partners", map[string]any{
		"name": "Ada Quist",
		"role": "Motion designer",
	}, token)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var created map[string]any
	decodeBody(t, recorder, &created)
	partnerID, _ := created["id"].(string)
	if partnerID == "" {
		t.Fatalf("Expected created partner to carry an id, got %v", created)
	}

	recorder = doJSON(t, router, http.MethodPut, "/api/network/partners/"+partnerID,
		map[string]any{"role": "Creative director"}, token)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 on update, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var updated map[string]any
	decodeBody(t, recorder, &updated)
	if updated["role"] != "Creative director" {
		t.Errorf("Expected updated role, got %v", updated["role"])
	}
	if updated["name"] != "Ada Quist" {
		t.Errorf("Expected untouched name preserved, got %v", updated["name"])
	}

	recorder = doJSON(t, router, http.MethodDelete, "/api/network/partners/"+partnerID, nil, token)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 on delete, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/network/partners/"+partnerID, nil, "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", recorder.Code)
	}
}
