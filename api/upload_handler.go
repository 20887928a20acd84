package api

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightforge/agency-site-backend/errs"
	"github.com/brightforge/agency-site-backend/services"
)

const (
	maxFileSize  = 5 * 1024 * 1024 // 5MB per file
	maxFileCount = 10
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     services.ObjectStore
}

func newUploadHandler(store services.ObjectStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// UploadedFile describes one stored object
type UploadedFile struct {
	OriginalName string `json:"original_name"`
	Key          string `json:"key"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
}

// UploadFailure describes one file that could not be stored
type UploadFailure struct {
	OriginalName string `json:"original_name"`
	Error        string `json:"error"`
}

// MultiUploadResponse is the partial-success response for multiple uploads
type MultiUploadResponse struct {
	Success bool            `json:"success"`
	Files   []UploadedFile  `json:"files"`
	Count   int             `json:"count"`
	Errors  []UploadFailure `json:"errors"`
}

// uploader names the admin behind the request for the audit log
func (h uploadHandler) uploader(r *http.Request) string {
	userID, err := ctxGetUserID(r.Context())
	if err != nil {
		return "unknown"
	}
	return userID
}

func (h uploadHandler) storeOne(r *http.Request, fileHeader *multipart.FileHeader) (UploadedFile, error) {
	if fileHeader.Size > maxFileSize {
		return UploadedFile{}, fmt.Errorf("file exceeds the 5MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return UploadedFile{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	key := services.UploadKey(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.store.Upload(r.Context(), key, contentType, file)
	if err != nil {
		return UploadedFile{}, err
	}

	return UploadedFile{
		OriginalName: fileHeader.Filename,
		Key:          key,
		URL:          url,
		Size:         fileHeader.Size,
	}, nil
}

// uploadSingle stores one multipart file (field "file") in the media bucket
func (h uploadHandler) uploadSingle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.store.Configured() {
			h.responder.WriteError(w, errs.NewServiceUnavailableError(
				"Object storage is not configured", "STORAGE_NOT_CONFIGURED"))
			return
		}

		if err := r.ParseMultipartForm(maxFileSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to parse multipart form"))
			return
		}

		file, fileHeader, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("No file provided"))
			return
		}
		file.Close()

		uploaded, err := h.storeOne(r, fileHeader)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Upload failed")
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		h.logger.Info().
			Str("uploadedBy", h.uploader(r)).
			Str("key", uploaded.Key).
			Msg("Stored file")

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"file":    uploaded,
			"url":     uploaded.URL,
		})
	}
}

// uploadMultiple stores up to 10 files (field "files") sequentially. A
// per-file failure doesn't stop the loop; the response carries both the
// stored files and the failures, and only an empty success list is a 500.
func (h uploadHandler) uploadMultiple() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.store.Configured() {
			h.responder.WriteError(w, errs.NewServiceUnavailableError(
				"Object storage is not configured", "STORAGE_NOT_CONFIGURED"))
			return
		}

		if err := r.ParseMultipartForm(maxFileCount * maxFileSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to parse multipart form"))
			return
		}

		if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("No files provided"))
			return
		}

		fileHeaders := r.MultipartForm.File["files"]
		if len(fileHeaders) > maxFileCount {
			h.responder.WriteError(w, errs.NewBadRequestError(
				fmt.Sprintf("Too many files: maximum is %d", maxFileCount)))
			return
		}

		files := []UploadedFile{}
		failures := []UploadFailure{}
		for _, fileHeader := range fileHeaders {
			uploaded, err := h.storeOne(r, fileHeader)
			if err != nil {
				h.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Upload failed")
				failures = append(failures, UploadFailure{
					OriginalName: fileHeader.Filename,
					Error:        err.Error(),
				})
				continue
			}
			files = append(files, uploaded)
		}

		h.logger.Info().
			Str("uploadedBy", h.uploader(r)).
			Int("stored", len(files)).
			Int("failed", len(failures)).
			Msg("Processed file batch")

		if len(files) == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			h.responder.WriteJSON(w, MultiUploadResponse{
				Success: false,
				Files:   files,
				Count:   0,
				Errors:  failures,
			})
			return
		}

		h.responder.WriteJSON(w, MultiUploadResponse{
			Success: true,
			Files:   files,
			Count:   len(files),
			Errors:  failures,
		})
	}
}
