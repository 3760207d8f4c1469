package uploader

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
)

type recordingStorage struct {
	mu    sync.Mutex
	keys  []string
	types []string
	err   error
}

func (s *recordingStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	s.types = append(s.types, contentType)
	return s.err
}

type recordingInvoker struct {
	mu      sync.Mutex
	paths   []string
	doc     *models.ProcessedDocument
	err     error
	release chan struct{}
}

func (i *recordingInvoker) ProcessDocument(ctx context.Context, filePath string) (*models.ProcessedDocument, error) {
	i.mu.Lock()
	i.paths = append(i.paths, filePath)
	i.mu.Unlock()
	if i.release != nil {
		<-i.release
	}
	return i.doc, i.err
}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []Notification
}

func (n *recordingNotifier) Notify(note Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note)
}

type busyRecorder struct {
	mu     sync.Mutex
	states []bool
}

func (b *busyRecorder) record(busy bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states = append(b.states, busy)
}

type harness struct {
	storage  *recordingStorage
	invoker  *recordingInvoker
	notifier *recordingNotifier
	busy     *busyRecorder
	uploader *Uploader
}

var fixedNow = time.UnixMilli(1700000000000)

func newHarness() *harness {
	h := &harness{
		storage: &recordingStorage{},
		invoker: &recordingInvoker{doc: &models.ProcessedDocument{
			Title:       "Backend Engineer",
			Description: "Build the screening platform.",
		}},
		notifier: &recordingNotifier{},
		busy:     &busyRecorder{},
	}
	h.uploader = New(h.storage, h.invoker, h.notifier, zap.NewNop(),
		WithClock(func() time.Time { return fixedNow }),
		WithBusyListener(h.busy.record),
	)
	return h
}

func TestUploadSuccess(t *testing.T) {
	h := newHarness()

	var got []models.ProcessedDocument
	key, err := h.uploader.Upload(context.Background(), File{Name: "role.pdf", Data: []byte("%PDF")}, func(doc models.ProcessedDocument) {
		got = append(got, doc)
	})
	require.NoError(t, err)

	assert.Equal(t, "1700000000000-role.pdf", key)
	assert.Equal(t, []string{key}, h.storage.keys)
	assert.Equal(t, []string{"application/pdf"}, h.storage.types)
	assert.Equal(t, []string{key}, h.invoker.paths)

	require.Len(t, got, 1)
	assert.Equal(t, "Backend Engineer", got[0].Title)

	require.Len(t, h.notifier.notes, 1)
	assert.Equal(t, LevelSuccess, h.notifier.notes[0].Level)

	assert.Equal(t, []bool{true, false}, h.busy.states)
	assert.False(t, h.uploader.Busy())
}

func TestUploadStorageFailureSkipsInvoke(t *testing.T) {
	h := newHarness()
	h.storage.err = errors.New("bucket not found")

	called := false
	_, err := h.uploader.Upload(context.Background(), File{Name: "role.txt", Data: []byte("x")}, func(models.ProcessedDocument) {
		called = true
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload file")

	assert.Len(t, h.storage.keys, 1)
	assert.Empty(t, h.invoker.paths)
	assert.False(t, called)
	require.Len(t, h.notifier.notes, 1)
	assert.Equal(t, LevelError, h.notifier.notes[0].Level)
	assert.Equal(t, []bool{true, false}, h.busy.states)
}

func TestUploadInvokeFailure(t *testing.T) {
	h := newHarness()
	h.invoker.err = errors.New("function returned 500")

	called := false
	key, err := h.uploader.Upload(context.Background(), File{Name: "role.docx", Data: []byte("x")}, func(models.ProcessedDocument) {
		called = true
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process document")
	assert.NotEmpty(t, key)
	assert.False(t, called)
	assert.Len(t, h.invoker.paths, 1)
	assert.Equal(t, []bool{true, false}, h.busy.states)
}

func TestUploadMissingDescription(t *testing.T) {
	for _, doc := range []*models.ProcessedDocument{nil, {Title: "Only a title"}, {Title: "t", Description: "   "}} {
		h := newHarness()
		h.invoker.doc = doc

		called := false
		_, err := h.uploader.Upload(context.Background(), File{Name: "role.pdf", Data: []byte("x")}, func(models.ProcessedDocument) {
			called = true
		})
		assert.ErrorIs(t, err, ErrMissingDescription)
		assert.False(t, called)
		require.Len(t, h.notifier.notes, 1)
		assert.Equal(t, LevelError, h.notifier.notes[0].Level)
		assert.Equal(t, []bool{true, false}, h.busy.states)
	}
}

func TestUploadRejectsUnsupportedFile(t *testing.T) {
	h := newHarness()

	_, err := h.uploader.Upload(context.Background(), File{Name: "photo.png", Data: []byte("x")}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Empty(t, h.storage.keys)
	assert.Empty(t, h.busy.states)
	require.Len(t, h.notifier.notes, 1)
}

func TestUploadRejectsWhileBusy(t *testing.T) {
	h := newHarness()
	h.invoker.release = make(chan struct{})

	started := make(chan struct{})
	h.uploader.onBusy = func(busy bool) {
		h.busy.record(busy)
		if busy {
			close(started)
		}
	}

	done := make(chan error, 1)
	go func() {
		_, err := h.uploader.Upload(context.Background(), File{Name: "a.pdf", Data: []byte("x")}, nil)
		done <- err
	}()

	<-started
	assert.True(t, h.uploader.Busy())

	_, err := h.uploader.Upload(context.Background(), File{Name: "b.pdf", Data: []byte("y")}, nil)
	assert.ErrorIs(t, err, ErrBusy)

	close(h.invoker.release)
	require.NoError(t, <-done)

	assert.Len(t, h.storage.keys, 1)
	assert.Equal(t, []bool{true, false}, h.busy.states)
	assert.False(t, h.uploader.Busy())
}
