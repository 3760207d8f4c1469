package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/candidate-screening/internal/models"
)

type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	err       error
	downloads []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Download(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downloads = append(f.downloads, key)
	if f.err != nil {
		return nil, f.err
	}
	return f.objects[key], nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

type fakeTranscriber struct {
	text  string
	err   error
	calls []Media
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, media Media) (string, error) {
	f.calls = append(f.calls, media)
	return f.text, f.err
}

type chatCall struct {
	system string
	user   string
}

type fakeChat struct {
	response string
	err      error
	calls    []chatCall
}

func (f *fakeChat) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	f.calls = append(f.calls, chatCall{system: systemPrompt, user: userContent})
	return f.response, f.err
}

type analysisUpdate struct {
	id         uuid.UUID
	transcript string
	analysis   string
}

type fakeApplicationRepo struct {
	updates []analysisUpdate
	err     error
}

func (f *fakeApplicationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeApplicationRepo) UpdateVideoAnalysis(ctx context.Context, id uuid.UUID, transcript, analysis string) error {
	f.updates = append(f.updates, analysisUpdate{id: id, transcript: transcript, analysis: analysis})
	return f.err
}

func (f *fakeApplicationRepo) ListAnalyzed(ctx context.Context) ([]models.Application, error) {
	return nil, nil
}

type fakeIndexer struct {
	calls int
	err   error
}

func (f *fakeIndexer) IndexTranscript(ctx context.Context, applicationID uuid.UUID, transcript string) error {
	f.calls++
	return f.err
}
