package services

import (
	"fmt"
	"strings"
)

// VideoAnalysisSystemPrompt asks the model to turn an application video
// transcript into the structure stored with the application.
const VideoAnalysisSystemPrompt = `You are an expert HR recruiter reviewing the transcript of a video a candidate recorded for a job application.

Extract the following from the transcript:
1. motivation - why the candidate wants this role, in 1-3 sentences
2. experience_summary - a concise summary of the experience the candidate describes
3. communication_score - a number from 1 to 10 rating how clearly and confidently the candidate communicates
4. key_strengths - a list of the candidate's key strengths, each a short phrase

Return ONLY a JSON object in the following format, no markdown:
{
  "motivation": "<text>",
  "experience_summary": "<text>",
  "communication_score": <1-10>,
  "key_strengths": ["<strength>", "<strength>"]
}

Base every field on what the candidate actually says. Do not invent experience that is not in the transcript.`

// JobDocumentSystemPrompt asks the model to pull the posting fields out of an
// uploaded job document.
const JobDocumentSystemPrompt = `You are an expert recruiter preparing a job posting from a document a hiring manager uploaded.

Read the document and extract:
1. title - the job title
2. description - a clear job description of 3-6 sentences suitable for a job board
3. good_candidate_attributes - a short paragraph describing what makes a candidate a good fit
4. bad_candidate_attributes - a short paragraph describing what makes a candidate a poor fit
5. essential_attributes - a list of must-have qualifications, each a short phrase

Return ONLY a JSON object in the following format, no markdown:
{
  "title": "<text>",
  "description": "<text>",
  "good_candidate_attributes": "<text>",
  "bad_candidate_attributes": "<text>",
  "essential_attributes": ["<attribute>", "<attribute>"]
}

If the document does not describe a job, return an empty description.`

// maxDocumentPromptChars bounds the document text sent to the model.
const maxDocumentPromptChars = 30000

// BuildDocumentUserPrompt wraps extracted document text for the model.
func BuildDocumentUserPrompt(filename, text string) string {
	text = strings.TrimSpace(text)
	if len(text) > maxDocumentPromptChars {
		text = text[:maxDocumentPromptChars]
	}

	return fmt.Sprintf("DOCUMENT NAME: %s\n\nDOCUMENT TEXT:\n%s", filename, text)
}
