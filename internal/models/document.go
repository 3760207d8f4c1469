package models

// ProcessedDocument holds the fields extracted from an uploaded job document.
type ProcessedDocument struct {
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	GoodCandidateAttributes string   `json:"good_candidate_attributes,omitempty"`
	BadCandidateAttributes  string   `json:"bad_candidate_attributes,omitempty"`
	EssentialAttributes     []string `json:"essential_attributes,omitempty"`
}
