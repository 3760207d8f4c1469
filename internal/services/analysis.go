package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"alfredoptarigan/candidate-screening/internal/models"
)

var ErrInvalidAnalysis = errors.New("analysis does not match the expected structure")

const videoAnalysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["motivation", "experience_summary", "communication_score", "key_strengths"],
  "properties": {
    "motivation": {"type": "string"},
    "experience_summary": {"type": "string"},
    "communication_score": {"type": "number", "minimum": 0, "maximum": 10},
    "key_strengths": {"type": "array", "items": {"type": "string"}}
  }
}`

var compiledAnalysisSchema = jsonschema.MustCompileString("video_analysis.json", videoAnalysisSchema)

// ValidateVideoAnalysis normalises the model output and checks it against the
// analysis schema. It returns the normalised JSON text.
func ValidateVideoAnalysis(raw string) (string, *models.VideoAnalysis, error) {
	jsonStr := ExtractJSON(raw)

	var doc interface{}
	if err := json.Unmarshal([]byte(jsonStr), &doc); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}

	if err := compiledAnalysisSchema.Validate(doc); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}

	var analysis models.VideoAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}

	return jsonStr, &analysis, nil
}

// ParseVideoAnalysis decodes a stored analysis, returning nil when it is not
// valid JSON of the expected shape.
func ParseVideoAnalysis(stored string) *models.VideoAnalysis {
	_, analysis, err := ValidateVideoAnalysis(stored)
	if err != nil {
		return nil
	}
	return analysis
}

// ExtractJSON tries to extract JSON from text that might contain markdown or other formatting
func ExtractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return strings.TrimSpace(text)
}
