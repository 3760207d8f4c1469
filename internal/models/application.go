package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusSubmitted     ApplicationStatus = "submitted"
	StatusVideoAnalyzed ApplicationStatus = "video_analyzed"
)

// Application is a candidate's application to a job posting. Rows are created
// by the application form; the analysis function only fills in the video fields.
type Application struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateName string            `gorm:"type:text" json:"candidate_name"`
	JobTitle      string            `gorm:"type:text" json:"job_title"`
	VideoPath     string            `gorm:"type:text" json:"video_path"`
	Transcript    *string           `gorm:"type:text" json:"transcript,omitempty"`
	VideoAnalysis *string           `gorm:"type:text" json:"video_analysis,omitempty"`
	Status        ApplicationStatus `gorm:"not null;default:'submitted'" json:"status"`
	CreatedAt     time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}
