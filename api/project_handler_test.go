package api

import (
	"net/http"
	"testing"

	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/models"
)

func TestCreateProjectRequiresTitle(t *testing.T) {
	router := newDefaultTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/projects",
		map[string]any{"description": "no title"}, adminToken(t))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response ErrorResponse
	decodeBody(t, recorder, &response)
	if response.Error != "Title is required" {
		t.Errorf("Expected error %q, got %q", "Title is required", response.Error)
	}
}

func TestCreateProjectBucketsAndFlattensTechStack(t *testing.T) {
	router := newDefaultTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/projects", map[string]any{
		"title":      "Agency Site",
		"status":     "launched",
		"tech_stack": []string{"React", "Node.js", "PostgreSQL", "Docker"},
	}, adminToken(t))

	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var created map[string]any
	decodeBody(t, recorder, &created)

	// The stored bucketed object is served back flat, in bucket order
	stack, ok := created["tech_stack"].([]any)
	if !ok {
		t.Fatalf("Expected flat tech_stack array, got %v", created["tech_stack"])
	}
	expected := []string{"React", "Node.js", "PostgreSQL", "Docker"}
	if len(stack) != len(expected) {
		t.Fatalf("Expected %d entries, got %v", len(expected), stack)
	}
	for i, want := range expected {
		if stack[i] != want {
			t.Errorf("Expected tech_stack[%d]=%s, got %v", i, want, stack[i])
		}
	}

	// Unknown status values are coerced, never rejected
	if created["status"] != string(models.ProjectStatusActiveMaintenance) {
		t.Errorf("Expected coerced status, got %v", created["status"])
	}
}

func TestProjectListWrapsCollection(t *testing.T) {
	router := newDefaultTestRouter(t)

	for _, title := range []string{"First", "Second"} {
		recorder := doJSON(t, router, http.MethodPost, "/api/projects",
			map[string]any{"title": title}, adminToken(t))
		if recorder.Code != http.StatusCreated {
			t.Fatalf("Failed to create project: %d %s", recorder.Code, recorder.Body.String())
		}
	}

	recorder := doJSON(t, router, http.MethodGet, "/api/projects", nil, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var collection ProjectCollection
	decodeBody(t, recorder, &collection)
	if collection.Total != 2 || len(collection.Projects) != 2 {
		t.Errorf("Expected 2 projects, got total=%d len=%d", collection.Total, len(collection.Projects))
	}
}

func TestUpdateProjectMergesProvidedKeysOnly(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/projects", map[string]any{
		"title":       "Original",
		"description": "Keep me",
	}, token)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Failed to create project: %d %s", recorder.Code, recorder.Body.String())
	}

	var created models.Project
	decodeBody(t, recorder, &created)

	recorder = doJSON(t, router, http.MethodPut, "/api/projects/"+created.ID.String(),
		map[string]any{"title": "Renamed"}, token)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var updated models.Project
	decodeBody(t, recorder, &updated)
	if updated.Title != "Renamed" {
		t.Errorf("Expected title Renamed, got %s", updated.Title)
	}
	if updated.Description != "Keep me" {
		t.Errorf("Expected untouched description, got %q", updated.Description)
	}
}

func TestUpdateMissingProjectReturns404(t *testing.T) {
	router := newDefaultTestRouter(t)

	recorder := doJSON(t, router, http.MethodPut,
		"/api/projects/22222222-2222-2222-2222-222222222222",
		map[string]any{"title": "Ghost"}, adminToken(t))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestDeleteProjectReturns204(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/projects",
		map[string]any{"title": "Doomed"}, token)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Failed to create project: %d %s", recorder.Code, recorder.Body.String())
	}

	var created models.Project
	decodeBody(t, recorder, &created)

	recorder = doJSON(t, router, http.MethodDelete, "/api/projects/"+created.ID.String(), nil, token)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if recorder.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %s", recorder.Body.String())
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/projects/"+created.ID.String(), nil, "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", recorder.Code)
	}
}

func TestDatabaseBackedRoutesDegradeTo503(t *testing.T) {
	router := newTestRouter(
		database.New(nil),
		&stubStore{configured: true},
		&stubMailer{configured: true},
		&stubCompleter{configured: true},
	)

	recorder := doJSON(t, router, http.MethodGet, "/api/projects", nil, "")
	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response ErrorResponse
	decodeBody(t, recorder, &response)
	if response.Code != "DATABASE_NOT_CONFIGURED" {
		t.Errorf("Expected code DATABASE_NOT_CONFIGURED, got %q", response.Code)
	}
	if response.Success {
		t.Error("Expected success=false")
	}
}
