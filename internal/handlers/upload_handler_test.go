package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newUploadApp(storage *stubStorage, proc *stubProcessor, maxSize int64) *fiber.App {
	app := fiber.New()
	app.Post("/upload", NewUploadHandler(storage, proc, maxSize, zap.NewNop()).HandleUpload)
	return app
}

func TestHandleUpload(t *testing.T) {
	storage := &stubStorage{}
	proc := &stubProcessor{doc: &models.ProcessedDocument{Title: "SRE", Description: "Keep things up."}}
	app := newUploadApp(storage, proc, 1024)

	resp, err := app.Test(multipartRequest(t, "file", "sre.txt", []byte("Site reliability engineer")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body models.UploadResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &body))
	assert.Equal(t, "SRE", body.Document.Title)
	assert.Regexp(t, `^\d+-sre\.txt$`, body.StorageKey)

	require.Len(t, storage.keys, 1)
	assert.Equal(t, body.StorageKey, storage.keys[0])
	assert.Equal(t, []byte("Site reliability engineer"), storage.data[0])
	assert.Equal(t, []string{body.StorageKey}, proc.paths)
}

func TestHandleUploadBadRequests(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		filename string
		content  []byte
	}{
		{name: "wrong field", field: "document", filename: "a.pdf", content: []byte("x")},
		{name: "too large", field: "file", filename: "a.pdf", content: bytes.Repeat([]byte("x"), 64)},
		{name: "unsupported type", field: "file", filename: "a.png", content: []byte("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &stubStorage{}
			app := newUploadApp(storage, &stubProcessor{}, 32)

			resp, err := app.Test(multipartRequest(t, tt.field, tt.filename, tt.content))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, storage.keys)
		})
	}
}

func TestHandleUploadProcessingFailures(t *testing.T) {
	t.Run("storage error", func(t *testing.T) {
		proc := &stubProcessor{}
		app := newUploadApp(&stubStorage{err: errors.New("bucket missing")}, proc, 1024)

		resp, err := app.Test(multipartRequest(t, "file", "a.pdf", []byte("x")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "failed to upload file")
		assert.Empty(t, proc.paths)
	})

	t.Run("missing description", func(t *testing.T) {
		proc := &stubProcessor{doc: &models.ProcessedDocument{Title: "No description"}}
		app := newUploadApp(&stubStorage{}, proc, 1024)

		resp, err := app.Test(multipartRequest(t, "file", "a.pdf", []byte("x")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Len(t, proc.paths, 1)
	})
}
