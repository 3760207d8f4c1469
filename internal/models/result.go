package models

// VideoAnalysis is the structure the language model is asked to return for an
// application video.
type VideoAnalysis struct {
	Motivation         string   `json:"motivation"`
	ExperienceSummary  string   `json:"experience_summary"`
	CommunicationScore float64  `json:"communication_score"`
	KeyStrengths       []string `json:"key_strengths"`
}

type VideoAnalysisResult struct {
	Transcript string `json:"transcript"`
	Analysis   string `json:"analysis"`
}

type AnalyzeVideoRequest struct {
	ApplicationID string `json:"applicationId" validate:"required,uuid"`
	VideoPath     string `json:"videoPath" validate:"required"`
}

type ProcessDocumentRequest struct {
	FilePath string `json:"filePath" validate:"required"`
}

type FunctionErrorResponse struct {
	Error string `json:"error"`
}

type UploadResponse struct {
	Message    string            `json:"message"`
	StorageKey string            `json:"storage_key"`
	Document   ProcessedDocument `json:"document"`
}

type ApplicationResponse struct {
	ID            string         `json:"id"`
	CandidateName string         `json:"candidate_name"`
	JobTitle      string         `json:"job_title"`
	Status        string         `json:"status"`
	Transcript    *string        `json:"transcript,omitempty"`
	Analysis      *VideoAnalysis `json:"analysis,omitempty"`
	RawAnalysis   *string        `json:"raw_analysis,omitempty"`
}
