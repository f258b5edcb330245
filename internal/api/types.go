// Package api defines the JSON payload types exchanged with the AI
// microservices backend.
package api

import "encoding/json"

// Envelope is the standard response wrapper returned by every endpoint.
// On success the payload lives in Data; on failure Success is false and
// Error carries the backend message.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// HealthData is the payload of GET /health.
type HealthData struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// SummarizeOptions tunes POST /api/summarize.
// Style is one of "concise", "detailed", "bullet", "executive".
type SummarizeOptions struct {
	MaxLength int    `json:"maxLength"`
	Style     string `json:"style"`
	Language  string `json:"language"`
}

// DefaultSummarizeOptions mirrors the backend defaults.
func DefaultSummarizeOptions() SummarizeOptions {
	return SummarizeOptions{MaxLength: 500, Style: "concise", Language: "english"}
}

// SummarizeRequest is the body of POST /api/summarize.
type SummarizeRequest struct {
	Text    string           `json:"text"`
	Options SummarizeOptions `json:"options"`
}

// SummarizeResult is the payload of a successful summarization.
type SummarizeResult struct {
	Summary          string  `json:"summary"`
	OriginalLength   int     `json:"originalLength"`
	SummaryLength    int     `json:"summaryLength"`
	CompressionRatio string  `json:"compressionRatio,omitempty"`
	ProcessingTime   float64 `json:"processingTime,omitempty"`
	Style            string  `json:"style,omitempty"`
	ChunksProcessed  int     `json:"chunksProcessed,omitempty"`
}

// BatchSummarizeRequest is the body of POST /api/summarize/batch.
// The backend accepts between 1 and 10 texts per batch.
type BatchSummarizeRequest struct {
	Texts   []string         `json:"texts"`
	Options SummarizeOptions `json:"options"`
}

// BatchSummarizeResult is the payload of a successful batch summarization.
type BatchSummarizeResult struct {
	Summaries           []SummarizeResult `json:"summaries"`
	TotalTexts          int               `json:"totalTexts"`
	AvgCompressionRatio string            `json:"avgCompressionRatio,omitempty"`
}

// UploadResult is the payload of POST /api/documents/upload.
type UploadResult struct {
	Message        string  `json:"message,omitempty"`
	FileName       string  `json:"fileName"`
	CollectionName string  `json:"collectionName"`
	ChunksCreated  int     `json:"chunksCreated"`
	ProcessingTime float64 `json:"processingTime,omitempty"`
}

// QuestionOptions tunes retrieval for POST /api/documents/ask.
type QuestionOptions struct {
	TopK            int  `json:"topK,omitempty"`
	IncludeMetadata bool `json:"includeMetadata,omitempty"`
}

// QuestionRequest is the body of POST /api/documents/ask.
type QuestionRequest struct {
	Question       string          `json:"question"`
	CollectionName string          `json:"collectionName"`
	Options        QuestionOptions `json:"options"`
}

// SourceMetadata locates a retrieved chunk in its source document.
type SourceMetadata struct {
	FileName   string `json:"fileName"`
	ChunkIndex int    `json:"chunkIndex"`
}

// Source is one retrieved document chunk backing an answer.
type Source struct {
	Content  string         `json:"content"`
	Score    float64        `json:"score"`
	Metadata SourceMetadata `json:"metadata"`
}

// AnswerResult is the payload of POST /api/documents/ask.
type AnswerResult struct {
	Question       string   `json:"question"`
	Answer         string   `json:"answer"`
	Confidence     string   `json:"confidence,omitempty"`
	CollectionName string   `json:"collectionName,omitempty"`
	Sources        []Source `json:"sources,omitempty"`
}

// SearchResult is the payload of GET /api/documents/search.
type SearchResult struct {
	Query          string   `json:"query"`
	Results        []Source `json:"results"`
	TotalResults   int      `json:"totalResults"`
	CollectionName string   `json:"collectionName"`
}

// CollectionInfo describes one document collection.
type CollectionInfo struct {
	Name          string `json:"name"`
	DocumentCount int    `json:"documentCount"`
}

// CollectionsData is the payload of GET /api/documents/collections.
type CollectionsData struct {
	Collections []CollectionInfo `json:"collections"`
}

// UserProfile is the body of POST /api/learning-path/generate.
// Experience is one of "beginner", "intermediate", "advanced";
// LearningStyle is one of "visual", "hands-on", "theoretical", "mixed".
type UserProfile struct {
	Goal           string   `json:"goal"`
	CurrentSkills  []string `json:"currentSkills"`
	Experience     string   `json:"experience"`
	TimeCommitment string   `json:"timeCommitment"`
	LearningStyle  string   `json:"learningStyle"`
	Interests      []string `json:"interests"`
}

// LearningPhase is one stage of a generated learning path.
type LearningPhase struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	EstimatedWeeks int      `json:"estimatedWeeks,omitempty"`
	Topics         []string `json:"topics"`
}

// LearningResource is a recommended study material.
type LearningResource struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Recommended bool   `json:"recommended"`
}

// LearningProject is a practice project suggestion.
type LearningProject struct {
	Title         string `json:"title"`
	Difficulty    string `json:"difficulty"`
	EstimatedTime string `json:"estimatedTime"`
}

// LearningMilestone is a dated checkpoint within a path.
type LearningMilestone struct {
	Title      string `json:"title"`
	TargetDate string `json:"targetDate"`
	Completed  bool   `json:"completed"`
}

// LearningPath is a full generated path.
type LearningPath struct {
	ID          string              `json:"id,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Phases      []LearningPhase     `json:"phases"`
	Resources   []LearningResource  `json:"resources,omitempty"`
	Projects    []LearningProject   `json:"projects,omitempty"`
	Milestones  []LearningMilestone `json:"milestones,omitempty"`
	CreatedAt   string              `json:"createdAt,omitempty"`
}

// EstimatedTime summarizes the expected effort for a path.
type EstimatedTime struct {
	TotalHours     int    `json:"totalHours"`
	EstimatedWeeks int    `json:"estimatedWeeks"`
	TimeCommitment string `json:"timeCommitment,omitempty"`
}

// LearningPathResult is the payload of POST /api/learning-path/generate.
type LearningPathResult struct {
	LearningPath            LearningPath  `json:"learningPath"`
	EstimatedCompletionTime EstimatedTime `json:"estimatedCompletionTime"`
	Recommendations         []string      `json:"recommendations,omitempty"`
}

// PopularPath is one entry of GET /api/learning-path/popular.
type PopularPath struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Difficulty    string `json:"difficulty"`
	EstimatedTime string `json:"estimatedTime"`
	Popularity    int    `json:"popularity"`
}

// PopularPathsData is the payload of GET /api/learning-path/popular.
type PopularPathsData struct {
	PopularPaths []PopularPath `json:"popularPaths"`
}

// ProgressUpdateRequest is the body of PUT /api/learning-path/progress.
type ProgressUpdateRequest struct {
	PathID      string `json:"pathId"`
	MilestoneID string `json:"milestoneId"`
	Completed   bool   `json:"completed"`
}

// ProgressUpdateResult is the payload of PUT /api/learning-path/progress.
type ProgressUpdateResult struct {
	PathID      string `json:"pathId"`
	MilestoneID string `json:"milestoneId"`
	Completed   bool   `json:"completed"`
	UpdatedAt   string `json:"updatedAt"`
	Message     string `json:"message,omitempty"`
}
