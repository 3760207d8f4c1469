package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/candidate-screening/internal/models"
	"alfredoptarigan/candidate-screening/internal/repositories"
)

func getApplication(t *testing.T, repo *stubApplicationRepo, id string) (int, models.ApplicationResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/applications/:id", NewApplicationHandler(repo).HandleGetApplication)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/applications/"+id, nil))
	require.NoError(t, err)

	var body models.ApplicationResponse
	_ = json.Unmarshal([]byte(readBody(t, resp)), &body)
	return resp.StatusCode, body
}

func TestHandleGetApplication(t *testing.T) {
	transcript := "I like Go."
	analysis := `{"motivation":"m","experience_summary":"e","communication_score":9,"key_strengths":["focus"]}`
	id := uuid.New()

	status, body := getApplication(t, &stubApplicationRepo{app: &models.Application{
		ID:            id,
		CandidateName: "Ari",
		JobTitle:      "Backend Engineer",
		Transcript:    &transcript,
		VideoAnalysis: &analysis,
		Status:        models.StatusVideoAnalyzed,
	}}, id.String())

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "video_analyzed", body.Status)
	require.NotNil(t, body.Transcript)
	assert.Equal(t, transcript, *body.Transcript)
	require.NotNil(t, body.Analysis)
	assert.Equal(t, []string{"focus"}, body.Analysis.KeyStrengths)
	assert.Nil(t, body.RawAnalysis)
}

func TestHandleGetApplicationRawAnalysis(t *testing.T) {
	raw := "free text analysis"
	id := uuid.New()

	status, body := getApplication(t, &stubApplicationRepo{app: &models.Application{
		ID:            id,
		VideoAnalysis: &raw,
		Status:        models.StatusVideoAnalyzed,
	}}, id.String())

	assert.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, body.Analysis)
	require.NotNil(t, body.RawAnalysis)
	assert.Equal(t, raw, *body.RawAnalysis)
}

func TestHandleGetApplicationErrors(t *testing.T) {
	status, _ := getApplication(t, &stubApplicationRepo{}, "not-a-uuid")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = getApplication(t, &stubApplicationRepo{err: repositories.ErrApplicationNotFound}, uuid.NewString())
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = getApplication(t, &stubApplicationRepo{err: errors.New("connection reset")}, uuid.NewString())
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
