package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/candidate-screening/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	UpdateVideoAnalysis(ctx context.Context, id uuid.UUID, transcript, analysis string) error
	ListAnalyzed(ctx context.Context) ([]models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// UpdateVideoAnalysis writes the transcript and analysis into an existing
// application and marks it analyzed. Calling it again overwrites the previous
// values.
func (r *applicationRepository) UpdateVideoAnalysis(ctx context.Context, id uuid.UUID, transcript, analysis string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"transcript":     transcript,
			"video_analysis": analysis,
			"status":         models.StatusVideoAnalyzed,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update video analysis: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// ListAnalyzed returns every application that has a transcript, oldest first.
func (r *applicationRepository) ListAnalyzed(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("status = ? AND transcript IS NOT NULL", models.StatusVideoAnalyzed).
		Order("created_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list analyzed applications: %w", err)
	}
	return apps, nil
}
