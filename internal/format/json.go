package format

import (
	"encoding/json"
	"io"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
)

// JSONFormatter renders results as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *JSONFormatter) Health(w io.Writer, data *api.HealthData) error {
	return writeJSON(w, data)
}

func (f *JSONFormatter) Summary(w io.Writer, result *api.SummarizeResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) BatchSummary(w io.Writer, result *api.BatchSummarizeResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) Upload(w io.Writer, result *api.UploadResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) Answer(w io.Writer, result *api.AnswerResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) Search(w io.Writer, result *api.SearchResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) Collections(w io.Writer, data *api.CollectionsData) error {
	return writeJSON(w, data)
}

func (f *JSONFormatter) LearningPath(w io.Writer, result *api.LearningPathResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) PopularPaths(w io.Writer, data *api.PopularPathsData) error {
	return writeJSON(w, data)
}
