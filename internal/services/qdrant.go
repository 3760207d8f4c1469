package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// VectorPoint is one embedded chunk of a source document.
type VectorPoint struct {
	DocID     string
	DocType   string
	Chunk     int
	Text      string
	Embedding []float32
}

type VectorStore interface {
	InitCollection(ctx context.Context) error
	UpsertPoints(ctx context.Context, points []VectorPoint) error
	DeleteDocument(ctx context.Context, docID string) error
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	log            *zap.Logger
}

func NewQdrantService(urlStr, apiKey, collectionName string, log *zap.Logger) (VectorStore, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// The Go client speaks gRPC, which listens on 6334 unless told otherwise.
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004
		log:            log,
	}, nil
}

// InitCollection implements VectorStore.
func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("✅ Qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// UpsertPoints implements VectorStore.
func (q *qdrantService) UpsertPoints(ctx context.Context, points []VectorPoint) error {
	if len(points) == 0 {
		return nil
	}

	structs := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		structs = append(structs, &qdrant.PointStruct{
			Id:      qdrant.NewID(uuid.NewString()),
			Vectors: qdrant.NewVectors(p.Embedding...),
			Payload: qdrant.NewValueMap(map[string]any{
				"doc_id":   p.DocID,
				"doc_type": p.DocType,
				"chunk":    p.Chunk,
				"text":     p.Text,
			}),
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         structs,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	return nil
}

// DeleteDocument implements VectorStore.
func (q *qdrantService) DeleteDocument(ctx context.Context, docID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("doc_id", docID),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}
