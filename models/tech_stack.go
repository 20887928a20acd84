package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Keyword lists used to bucket free-text technology names. Matching is
// case-sensitive substring containment, first match wins in the order
// frontend, backend, database, other.
var (
	frontendKeywords = []string{
		"React", "Next.js", "Vue", "Angular", "Svelte",
		"Tailwind", "CSS", "HTML", "JavaScript", "TypeScript",
	}
	backendKeywords = []string{
		"Node.js", "Express", "Python", "Django", "FastAPI",
		"Go", "Rust", "Java", "Spring",
	}
	databaseKeywords = []string{
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "Supabase", "Firebase",
	}
)

// TechStack is the single shared definition of a project's technology list.
// It is stored as a bucketed JSON object and always serves clients a flat
// array in bucket order, whichever shape the row or the request carried.
type TechStack struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Database []string `json:"database"`
	Other    []string `json:"other"`
}

// Classify buckets a flat list of technology names. Each item lands in
// exactly one bucket: the first keyword list it matches, or other.
func Classify(items []string) TechStack {
	var ts TechStack
	for _, item := range items {
		switch {
		case matchesAny(item, frontendKeywords):
			ts.Frontend = append(ts.Frontend, item)
		case matchesAny(item, backendKeywords):
			ts.Backend = append(ts.Backend, item)
		case matchesAny(item, databaseKeywords):
			ts.Database = append(ts.Database, item)
		default:
			ts.Other = append(ts.Other, item)
		}
	}
	return ts
}

func matchesAny(item string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(item, kw) {
			return true
		}
	}
	return false
}

// Flatten concatenates the buckets in fixed order.
func (ts TechStack) Flatten() []string {
	flat := make([]string, 0, len(ts.Frontend)+len(ts.Backend)+len(ts.Database)+len(ts.Other))
	flat = append(flat, ts.Frontend...)
	flat = append(flat, ts.Backend...)
	flat = append(flat, ts.Database...)
	flat = append(flat, ts.Other...)
	return flat
}

func (ts TechStack) IsEmpty() bool {
	return len(ts.Frontend) == 0 && len(ts.Backend) == 0 && len(ts.Database) == 0 && len(ts.Other) == 0
}

// MarshalJSON serves the flat-array wire shape.
func (ts TechStack) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Flatten())
}

// UnmarshalJSON accepts either the flat array or the bucketed object.
func (ts *TechStack) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*ts = TechStack{}
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var flat []string
		if err := json.Unmarshal(data, &flat); err != nil {
			return err
		}
		*ts = Classify(flat)
		return nil
	}

	type buckets TechStack
	var b buckets
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*ts = TechStack(b)
	return nil
}

// Value stores the bucketed object, never the flat array.
func (ts TechStack) Value() (driver.Value, error) {
	type buckets TechStack
	return json.Marshal(buckets(ts))
}

// Scan reads either shape back from the database; older rows hold a flat
// array and get re-bucketed on the way out.
func (ts *TechStack) Scan(value any) error {
	if value == nil {
		*ts = TechStack{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported tech_stack column type")
	}

	if len(data) == 0 {
		*ts = TechStack{}
		return nil
	}

	return ts.UnmarshalJSON(data)
}

func (TechStack) GormDataType() string {
	return "json"
}

func (TechStack) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	default:
		return "JSON"
	}
}

var _ fmt.Stringer = TechStack{}

func (ts TechStack) String() string {
	return strings.Join(ts.Flatten(), ", ")
}
