package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeProjectStatus(t *testing.T) {
	if got := NormalizeProjectStatus("Completed"); got != ProjectStatusCompleted {
		t.Errorf("Expected Completed preserved, got %s", got)
	}
	if got := NormalizeProjectStatus("In Progress"); got != ProjectStatusInProgress {
		t.Errorf("Expected In Progress preserved, got %s", got)
	}
	if got := NormalizeProjectStatus("bogus"); got != ProjectStatusActiveMaintenance {
		t.Errorf("Expected unknown status coerced to Active Maintenance, got %s", got)
	}
	if got := NormalizeProjectStatus(""); got != ProjectStatusActiveMaintenance {
		t.Errorf("Expected empty status coerced to Active Maintenance, got %s", got)
	}
}

func TestProjectStatusUnmarshalCoerces(t *testing.T) {
	var p Project
	if err := json.Unmarshal([]byte(`{"title":"Site","status":"launched"}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.Status != ProjectStatusActiveMaintenance {
		t.Errorf("Expected coerced status, got %s", p.Status)
	}
}

func TestScreenshotsAcceptsStringOrArray(t *testing.T) {
	var single Screenshots
	if err := json.Unmarshal([]byte(`"https://cdn.example.com/a.png"`), &single); err != nil {
		t.Fatalf("Unmarshal string failed: %v", err)
	}
	if !reflect.DeepEqual([]string(single), []string{"https://cdn.example.com/a.png"}) {
		t.Errorf("Expected one-element slice, got %v", single)
	}

	var many Screenshots
	if err := json.Unmarshal([]byte(`["a.png","b.png"]`), &many); err != nil {
		t.Fatalf("Unmarshal array failed: %v", err)
	}
	if len(many) != 2 {
		t.Errorf("Expected two elements, got %v", many)
	}
}

func TestScreenshotsAlwaysServesArray(t *testing.T) {
	var s Screenshots

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected empty array for nil screenshots, got %s", data)
	}
}

func TestScreenshotsScanLegacyStringRow(t *testing.T) {
	var s Screenshots
	if err := s.Scan([]byte(`"legacy.png"`)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(s) != 1 || s[0] != "legacy.png" {
		t.Errorf("Expected legacy string row wrapped in array, got %v", s)
	}
}
