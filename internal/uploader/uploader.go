package uploader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
)

var (
	ErrBusy               = errors.New("an upload is already in progress")
	ErrUnsupportedFile    = errors.New("unsupported file type, expected .pdf, .docx or .txt")
	ErrMissingDescription = errors.New("processed document has no description")
)

// Storage is the subset of object storage the uploader writes to.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// Invoker runs document processing on an uploaded file, either remotely or in
// process.
type Invoker interface {
	ProcessDocument(ctx context.Context, filePath string) (*models.ProcessedDocument, error)
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Option func(*Uploader)

// WithClock replaces time.Now when building storage keys.
func WithClock(now func() time.Time) Option {
	return func(u *Uploader) { u.now = now }
}

// WithBusyListener is called every time the busy flag changes.
func WithBusyListener(fn func(busy bool)) Option {
	return func(u *Uploader) { u.onBusy = fn }
}

// Uploader stores a job document and extracts posting fields from it. Only
// one upload runs at a time.
type Uploader struct {
	storage  Storage
	invoker  Invoker
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
	onBusy   func(bool)
	busy     atomic.Bool
}

func New(storage Storage, invoker Invoker, notifier Notifier, log *zap.Logger, opts ...Option) *Uploader {
	u := &Uploader{
		storage:  storage,
		invoker:  invoker,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Uploader) Busy() bool {
	return u.busy.Load()
}

// Upload stores file under a fresh key, processes it and hands the result to
// onComplete. The key is returned whenever the file was stored, even if a
// later step failed. onComplete is only called on success.
func (u *Uploader) Upload(ctx context.Context, file File, onComplete func(models.ProcessedDocument)) (string, error) {
	if !IsAcceptedFile(file.Name) {
		u.fail(ErrUnsupportedFile)
		return "", ErrUnsupportedFile
	}

	if !u.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	u.notifyBusy(true)
	defer func() {
		u.busy.Store(false)
		u.notifyBusy(false)
	}()

	key := BuildStorageKey(u.now(), file.Name)
	log := u.log.With(zap.String("storage_key", key))

	contentType := file.ContentType
	if contentType == "" {
		contentType = contentTypeFor(file.Name)
	}

	log.Info("📤 Uploading document", zap.Int("bytes", len(file.Data)))
	if err := u.storage.Upload(ctx, key, file.Data, contentType); err != nil {
		err = fmt.Errorf("failed to upload file: %w", err)
		u.fail(err)
		return "", err
	}

	log.Info("⚙️ Processing document")
	doc, err := u.invoker.ProcessDocument(ctx, key)
	if err != nil {
		err = fmt.Errorf("failed to process document: %w", err)
		u.fail(err)
		return key, err
	}
	if doc == nil || strings.TrimSpace(doc.Description) == "" {
		u.fail(ErrMissingDescription)
		return key, ErrMissingDescription
	}

	if onComplete != nil {
		onComplete(*doc)
	}

	u.notifier.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Document processed",
		Message: fmt.Sprintf("Job details extracted from %s", file.Name),
	})
	log.Info("✅ Document processed", zap.String("title", doc.Title))
	return key, nil
}

func (u *Uploader) fail(err error) {
	u.log.Error("❌ Document upload failed", zap.Error(err))
	u.notifier.Notify(Notification{
		Level:   LevelError,
		Title:   "Upload failed",
		Message: err.Error(),
	})
}

func (u *Uploader) notifyBusy(busy bool) {
	if u.onBusy != nil {
		u.onBusy(busy)
	}
}
