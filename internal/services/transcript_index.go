package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const docTypeVideoTranscript = "video_transcript"

// TranscriptIndexer stores embedded transcript chunks so applications can be
// retrieved by what candidates said.
type TranscriptIndexer interface {
	IndexTranscript(ctx context.Context, applicationID uuid.UUID, transcript string) error
}

type transcriptIndexer struct {
	embedder Embedder
	store    VectorStore
	chunker  TextChunker
	log      *zap.Logger
}

func NewTranscriptIndexer(embedder Embedder, store VectorStore, log *zap.Logger) TranscriptIndexer {
	return &transcriptIndexer{
		embedder: embedder,
		store:    store,
		chunker:  NewTextChunker(),
		log:      log,
	}
}

// IndexTranscript replaces every point previously stored for the application.
func (ti *transcriptIndexer) IndexTranscript(ctx context.Context, applicationID uuid.UUID, transcript string) error {
	docID := applicationID.String()
	chunks := ti.chunker.ChunkText(transcript, 1000, 200)

	points := make([]VectorPoint, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := ti.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}

		points = append(points, VectorPoint{
			DocID:     docID,
			DocType:   docTypeVideoTranscript,
			Chunk:     i,
			Text:      chunk,
			Embedding: embedding,
		})
	}

	if err := ti.store.DeleteDocument(ctx, docID); err != nil {
		return fmt.Errorf("failed to clear previous transcript: %w", err)
	}

	if err := ti.store.UpsertPoints(ctx, points); err != nil {
		return err
	}

	ti.log.Info("transcript indexed",
		zap.String("application_id", docID),
		zap.Int("chunks", len(points)),
	)
	return nil
}
