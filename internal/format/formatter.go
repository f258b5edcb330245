// Package format provides output formatting for CLI commands. Results
// can be rendered as human-readable text or as JSON for scripting.
package format

import (
	"io"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
)

// Formatter writes backend results to a writer.
type Formatter interface {
	Health(w io.Writer, data *api.HealthData) error
	Summary(w io.Writer, result *api.SummarizeResult) error
	BatchSummary(w io.Writer, result *api.BatchSummarizeResult) error
	Upload(w io.Writer, result *api.UploadResult) error
	Answer(w io.Writer, result *api.AnswerResult) error
	Search(w io.Writer, result *api.SearchResult) error
	Collections(w io.Writer, data *api.CollectionsData) error
	LearningPath(w io.Writer, result *api.LearningPathResult) error
	PopularPaths(w io.Writer, data *api.PopularPathsData) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeText renders results for reading in a terminal.
	FormatterTypeText FormatterType = "text"

	// FormatterTypeJSON renders results as indented JSON.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}
