package api

import (
	"net/http"
	"testing"
)

func TestCreateServiceRequiresTitle(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/services",
		map[string]any{"description": "We build things"}, token)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing title, got %d", recorder.Code)
	}

	var response ErrorResponse
	decodeBody(t, recorder, &response)
	if response.Error != "Title is required" {
		t.Errorf("Expected error %q, got %q", "Title is required", response.Error)
	}
}

func TestPublicServicesListActiveInSortOrder(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	services := []map[string]any{
		{"title": "Branding", "sort_order": 2},
		{"title": "Web Development", "sort_order": 1},
		{"title": "Print Design", "sort_order": 0, "is_active": false},
	}
	for _, service := range services {
		recorder := doJSON(t, router, http.MethodPost, "/api/services", service, token)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("Failed to create service: %d %s", recorder.Code, recorder.Body.String())
		}
	}

	recorder := doJSON(t, router, http.MethodGet, "/api/services", nil, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}

	var collection ServiceCollection
	decodeBody(t, recorder, &collection)
	if collection.Total != 2 {
		t.Fatalf("Expected inactive service hidden, got %d entries", collection.Total)
	}
	if collection.Services[0].Title != "Web Development" || collection.Services[1].Title != "Branding" {
		t.Errorf("Expected sort_order listing, got %s then %s",
			collection.Services[0].Title, collection.Services[1].Title)
	}
}

func TestServiceUpdateAndDeleteRoundTrip(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/services", map[string]any{
		"title":    "Web Development",
		"features": []string{"Responsive design", "CMS integration"},
	}, token)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var created map[string]any
	decodeBody(t, recorder, &created)
	serviceID, _ := created["id"].(string)
	if serviceID == "" {
		t.Fatalf("Expected created service to carry an id, got %v", created)
	}
	if created["is_active"] != true {
		t.Errorf("Expected new service to default active, got %v", created["is_active"])
	}

	recorder = doJSON(t, router, http.MethodPut, "/api/services/"+serviceID, map[string]any{
		"description": "Full-stack builds",
		"is_active":   false,
	}, token)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 on update, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var updated map[string]any
	decodeBody(t, recorder, &updated)
	if updated["description"] != "Full-stack builds" {
		t.Errorf("Expected updated description, got %v", updated["description"])
	}
	if updated["title"] != "Web Development" {
		t.Errorf("Expected untouched title preserved, got %v", updated["title"])
	}
	if updated["is_active"] != false {
		t.Errorf("Expected service deactivated, got %v", updated["is_active"])
	}

	recorder = doJSON(t, router, http.MethodDelete, "/api/services/"+serviceID, nil, token)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 on delete, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/services/"+serviceID, nil, "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", recorder.Code)
	}
}
