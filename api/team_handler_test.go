package api

import (
	"net/http"
	"testing"

	"github.com/brightforge/agency-site-backend/models"
)

func TestCreateMemberRequiresNameAndRole(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/team",
		map[string]any{"role": "Engineer"}, token)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing name, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPost, "/api/team",
		map[string]any{"name": "Jane Doe"}, token)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing role, got %d", recorder.Code)
	}
}

func TestCreateMemberRejectsDuplicateEmail(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/team", map[string]any{
		"name":  "Jane Doe",
		"role":  "Engineer",
		"email": "jane@agency.dev",
	}, token)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Failed to create member: %d %s", recorder.Code, recorder.Body.String())
	}

	recorder = doJSON(t, router, http.MethodPost, "/api/team", map[string]any{
		"name":  "Impostor",
		"role":  "Designer",
		"email": "jane@agency.dev",
	}, token)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for duplicate email, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response ErrorResponse
	decodeBody(t, recorder, &response)
	if response.Error != "A team member with this email already exists: Jane Doe" {
		t.Errorf("Expected error naming the existing member, got %q", response.Error)
	}
}

func TestCreateMemberAllowsManyEmptyEmails(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	// Empty emails are stored as NULL, so the unique index never collides
	for _, name := range []string{"First", "Second"} {
		recorder := doJSON(t, router, http.MethodPost, "/api/team", map[string]any{
			"name":  name,
			"role":  "Engineer",
			"email": "",
		}, token)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("Failed to create member %s: %d %s", name, recorder.Code, recorder.Body.String())
		}

		var created models.TeamMember
		decodeBody(t, recorder, &created)
		if created.Email != nil {
			t.Errorf("Expected empty email stored as null, got %q", *created.Email)
		}
	}
}

func TestUpdateMemberKeepsOwnEmail(t *testing.T) {
	router := newDefaultTestRouter(t)
	token := adminToken(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/team", map[string]any{
		"name":  "Jane Doe",
		"role":  "Engineer",
		"email": "jane@agency.dev",
	}, token)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Failed to create member: %d %s", recorder.Code, recorder.Body.String())
	}

	var created models.TeamMember
	decodeBody(t, recorder, &created)

	// Re-submitting the member's own email is not a conflict
	recorder = doJSON(t, router, http.MethodPut, "/api/team/"+created.ID.String(), map[string]any{
		"role":  "Lead Engineer",
		"email": "jane@agency.dev",
	}, token)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var updated models.TeamMember
	decodeBody(t, recorder, &updated)
	if updated.Role != "Lead Engineer" {
		t.Errorf("Expected updated role, got %s", updated.Role)
	}
	if updated.Name != "Jane Doe" {
		t.Errorf("Expected untouched name, got %s", updated.Name)
	}
}
