package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
)

// DocumentProcessor turns an uploaded job document into posting fields.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, filePath string) (*models.ProcessedDocument, error)
}

type documentProcessor struct {
	documents Storage
	parser    DocumentParser
	chat      ChatModel
	log       *zap.Logger
}

func NewDocumentProcessor(documents Storage, parser DocumentParser, chat ChatModel, log *zap.Logger) DocumentProcessor {
	return &documentProcessor{
		documents: documents,
		parser:    parser,
		chat:      chat,
		log:       log,
	}
}

func (p *documentProcessor) ProcessDocument(ctx context.Context, filePath string) (*models.ProcessedDocument, error) {
	log := p.log.With(zap.String("file_path", filePath))

	data, err := p.documents.Download(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to download document: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("document %s is empty", filePath)
	}

	text, err := p.parser.ExtractText(filePath, data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}
	log.Info("📄 Document text extracted", zap.Int("chars", len(text)))

	response, err := p.chat.Complete(ctx, JobDocumentSystemPrompt, BuildDocumentUserPrompt(path.Base(filePath), text))
	if err != nil {
		return nil, fmt.Errorf("failed to extract job fields: %w", err)
	}

	var result models.ProcessedDocument
	if err := json.Unmarshal([]byte(ExtractJSON(response)), &result); err != nil {
		log.Error("❌ Failed to parse document response", zap.String("response", response), zap.Error(err))
		return nil, fmt.Errorf("failed to parse job fields: %w", err)
	}

	log.Info("✅ Document processed", zap.String("title", result.Title))
	return &result, nil
}
