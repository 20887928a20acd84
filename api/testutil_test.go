package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver, no CGO required

	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/models"
	"github.com/brightforge/agency-site-backend/services"
)

const testJWTSecret = "test-secret"

// newTestDatabase opens a throwaway SQLite database with the full schema.
func newTestDatabase(t *testing.T) database.Database {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	sqlDB, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_time_format=sqlite")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	gormDB, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to initialize GORM: %v", err)
	}

	err = gormDB.AutoMigrate(
		&models.Project{},
		&models.TeamMember{},
		&models.Event{},
		&models.Feedback{},
		&models.Package{},
		&models.Service{},
		&models.NetworkCollaboration{},
		&models.NetworkPartner{},
		&models.ProjectSubmission{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	return database.New(gormDB)
}

// stubStore is an in-memory ObjectStore. failAt marks 1-based upload call
// indexes that should fail.
type stubStore struct {
	configured bool
	calls      int
	failAt     map[int]bool
	keys       []string
}

func (s *stubStore) Configured() bool {
	return s.configured
}

func (s *stubStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	s.calls++
	if s.failAt[s.calls] {
		return "", fmt.Errorf("upstream rejected object")
	}
	s.keys = append(s.keys, key)
	return "https://cdn.test/" + key, nil
}

type sentEmail struct {
	recipients []string
	subject    string
	body       string
}

type stubMailer struct {
	configured bool
	err        error
	sent       []sentEmail
}

func (m *stubMailer) Configured() bool {
	return m.configured
}

func (m *stubMailer) Send(recipients []string, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{recipients, subject, body})
	return nil
}

type stubCompleter struct {
	configured bool
	reply      string
	err        error
}

func (c *stubCompleter) Configured() bool {
	return c.configured
}

func (c *stubCompleter) Complete(ctx context.Context, message string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

// newTestRouter wires the full route table over the given database and
// service stubs, with admin auth backed by testJWTSecret.
func newTestRouter(db database.Database, store services.ObjectStore, mailer services.Mailer, completer services.Completer) http.Handler {
	r := chi.NewRouter()
	c := map[string]string{"EMAIL_TO": "inbox@test.local"}
	handlers := initializeHandlers(db, c, store, mailer, completer, time.Now())
	setupRoutes(r, handlers, newAuthMiddleware(testJWTSecret), db)
	return r
}

func newDefaultTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouter(
		newTestDatabase(t),
		&stubStore{configured: true},
		&stubMailer{configured: true},
		&stubCompleter{configured: true, reply: "hello"},
	)
}

// adminToken signs an HS256 token carrying the admin role claim.
func adminToken(t *testing.T) string {
	t.Helper()
	return signedToken(t, jwt.MapClaims{
		"sub":  "11111111-1111-1111-1111-111111111111",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, handler http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

// decodeBody unmarshals a recorded JSON response.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("Failed to decode response %q: %v", recorder.Body.String(), err)
	}
}
