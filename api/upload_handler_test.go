package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// multipartRequest builds a multipart POST with the given field name and
// one part per filename.
func multipartRequest(t *testing.T, path, field string, filenames []string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range filenames {
		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("Failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func doUpload(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestUploadSingleStoresUnderUploadsPrefix(t *testing.T) {
	store := &stubStore{configured: true}
	router := newTestRouter(newTestDatabase(t), store, &stubMailer{}, &stubCompleter{})

	req := multipartRequest(t, "/api/upload", "file", []string{"Hero Shot.PNG"})
	recorder := doUpload(t, router, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response map[string]any
	decodeBody(t, recorder, &response)
	url, _ := response["url"].(string)
	if !strings.Contains(url, "/uploads/") {
		t.Errorf("Expected url containing /uploads/, got %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("Expected lowercased extension, got %q", url)
	}

	if len(store.keys) != 1 || !strings.HasPrefix(store.keys[0], "uploads/") {
		t.Errorf("Expected one key under uploads/, got %v", store.keys)
	}
}

func TestUploadSingleWithoutStorageReturns503(t *testing.T) {
	router := newTestRouter(newTestDatabase(t), &stubStore{}, &stubMailer{}, &stubCompleter{})

	req := multipartRequest(t, "/api/upload", "file", []string{"a.png"})
	recorder := doUpload(t, router, req)

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response ErrorResponse
	decodeBody(t, recorder, &response)
	if response.Code != "STORAGE_NOT_CONFIGURED" {
		t.Errorf("Expected code STORAGE_NOT_CONFIGURED, got %q", response.Code)
	}
}

func TestUploadMultipleCollectsPartialFailures(t *testing.T) {
	store := &stubStore{configured: true, failAt: map[int]bool{2: true}}
	router := newTestRouter(newTestDatabase(t), store, &stubMailer{}, &stubCompleter{})

	req := multipartRequest(t, "/api/upload/multiple", "files", []string{"a.png", "b.png", "c.png"})
	recorder := doUpload(t, router, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 on partial success, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response MultiUploadResponse
	decodeBody(t, recorder, &response)
	if !response.Success {
		t.Error("Expected success=true on partial failure")
	}
	if response.Count != 2 || len(response.Files) != 2 {
		t.Errorf("Expected 2 stored files, got count=%d files=%d", response.Count, len(response.Files))
	}
	if len(response.Errors) != 1 || response.Errors[0].OriginalName != "b.png" {
		t.Errorf("Expected one failure for b.png, got %v", response.Errors)
	}
}

func TestUploadMultipleAllFailingReturns500(t *testing.T) {
	store := &stubStore{configured: true, failAt: map[int]bool{1: true, 2: true}}
	router := newTestRouter(newTestDatabase(t), store, &stubMailer{}, &stubCompleter{})

	req := multipartRequest(t, "/api/upload/multiple", "files", []string{"a.png", "b.png"})
	recorder := doUpload(t, router, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 when every upload fails, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response MultiUploadResponse
	decodeBody(t, recorder, &response)
	if response.Success || response.Count != 0 || len(response.Errors) != 2 {
		t.Errorf("Expected all-failed response, got %+v", response)
	}
}

func TestUploadMultipleRejectsTooManyFiles(t *testing.T) {
	store := &stubStore{configured: true}
	router := newTestRouter(newTestDatabase(t), store, &stubMailer{}, &stubCompleter{})

	names := make([]string, 11)
	for i := range names {
		names[i] = "file.png"
	}
	req := multipartRequest(t, "/api/upload/multiple", "files", names)
	recorder := doUpload(t, router, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for 11 files, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if store.calls != 0 {
		t.Errorf("Expected no uploads attempted, got %d", store.calls)
	}
}
