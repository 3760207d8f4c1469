package handlers

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/candidate-screening/internal/models"
)

type stubVideoService struct {
	result *models.VideoAnalysisResult
	err    error
	calls  int
	gotID  uuid.UUID
	gotKey string
}

func (s *stubVideoService) AnalyzeVideo(ctx context.Context, applicationID uuid.UUID, videoPath string) (*models.VideoAnalysisResult, error) {
	s.calls++
	s.gotID = applicationID
	s.gotKey = videoPath
	return s.result, s.err
}

type stubProcessor struct {
	doc   *models.ProcessedDocument
	err   error
	paths []string
}

func (s *stubProcessor) ProcessDocument(ctx context.Context, filePath string) (*models.ProcessedDocument, error) {
	s.paths = append(s.paths, filePath)
	return s.doc, s.err
}

type stubStorage struct {
	keys []string
	data [][]byte
	err  error
}

func (s *stubStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	s.keys = append(s.keys, key)
	s.data = append(s.data, data)
	return s.err
}

type stubApplicationRepo struct {
	app *models.Application
	err error
}

func (s *stubApplicationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return s.app, s.err
}

func (s *stubApplicationRepo) UpdateVideoAnalysis(ctx context.Context, id uuid.UUID, transcript, analysis string) error {
	return nil
}

func (s *stubApplicationRepo) ListAnalyzed(ctx context.Context) ([]models.Application, error) {
	return nil, nil
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
