package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
)

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &TextFormatter{}, NewFormatter(FormatterTypeText))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatterTypeJSON))
	assert.IsType(t, &TextFormatter{}, NewFormatter("unknown"))
}

func TestTextSummaryIncludesCounts(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextFormatter().Summary(&buf, &api.SummarizeResult{
		Summary:          "A short summary.",
		OriginalLength:   400,
		SummaryLength:    16,
		CompressionRatio: "96%",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "A short summary.")
	assert.Contains(t, out, "Original: 400 chars")
	assert.Contains(t, out, "Summary: 16 chars")
	assert.Contains(t, out, "Compression: 96%")
}

func TestTextSummaryStripsEscapes(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextFormatter().Summary(&buf, &api.SummarizeResult{
		Summary: "clean \x1b[31mred\x1b[0m text",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "clean red text")
	assert.NotContains(t, buf.String(), "\x1b")
}

func TestTextAnswerListsSources(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextFormatter().Answer(&buf, &api.AnswerResult{
		Answer:     "Goroutines are lightweight threads.",
		Confidence: "high",
		Sources: []api.Source{
			{
				Content: "A goroutine is a lightweight thread managed by the Go runtime.",
				Score:   0.91,
				Metadata: api.SourceMetadata{
					FileName:   "go-book.pdf",
					ChunkIndex: 4,
				},
			},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Goroutines are lightweight threads.")
	assert.Contains(t, out, "Confidence: high")
	assert.Contains(t, out, "go-book.pdf (chunk 4, score 0.91)")
}

func TestTextCollections(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTextFormatter()

	require.NoError(t, formatter.Collections(&buf, &api.CollectionsData{}))
	assert.Contains(t, buf.String(), "No collections yet.")

	buf.Reset()
	require.NoError(t, formatter.Collections(&buf, &api.CollectionsData{
		Collections: []api.CollectionInfo{{Name: "default", DocumentCount: 2}},
	}))
	assert.Contains(t, buf.String(), "default")
	assert.Contains(t, buf.String(), "2 document(s)")
}

func TestTextLearningPath(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextFormatter().LearningPath(&buf, &api.LearningPathResult{
		LearningPath: api.LearningPath{
			Title: "Backend Engineering with Go",
			Phases: []api.LearningPhase{
				{Title: "Foundations", EstimatedWeeks: 3, Topics: []string{"syntax", "tooling"}},
				{Title: "Concurrency", Topics: []string{"goroutines"}},
			},
			Resources: []api.LearningResource{
				{Type: "book", Description: "The Go Programming Language", Recommended: true},
			},
			Projects: []api.LearningProject{
				{Title: "URL shortener", Difficulty: "beginner", EstimatedTime: "1 week"},
			},
			Milestones: []api.LearningMilestone{
				{Title: "First CLI shipped", Completed: true},
				{Title: "First service deployed"},
			},
		},
		EstimatedCompletionTime: api.EstimatedTime{TotalHours: 120, EstimatedWeeks: 12},
		Recommendations:         []string{"Practice daily"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Phase 1: Foundations (~3 weeks)")
	assert.Contains(t, out, "Phase 2: Concurrency")
	assert.Contains(t, out, "* book: The Go Programming Language")
	assert.Contains(t, out, "URL shortener (beginner, 1 week)")
	assert.Contains(t, out, "[x] First CLI shipped")
	assert.Contains(t, out, "[ ] First service deployed")
	assert.Contains(t, out, "12 weeks (~120 hours total)")
	assert.Contains(t, out, "Tip: Practice daily")
}

func TestTextPopularPathsTable(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextFormatter().PopularPaths(&buf, &api.PopularPathsData{
		PopularPaths: []api.PopularPath{
			{Title: "Machine Learning Basics", Difficulty: "beginner", EstimatedTime: "8 weeks", Popularity: 95},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Machine Learning Basics")
	assert.Contains(t, out, "beginner")
	assert.Contains(t, out, "95")
}

func TestTextBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextFormatter().BatchSummary(&buf, &api.BatchSummarizeResult{
		Summaries: []api.SummarizeResult{
			{Summary: "first", OriginalLength: 100, SummaryLength: 5},
			{Summary: "second", OriginalLength: 200, SummaryLength: 6},
		},
		TotalTexts:          2,
		AvgCompressionRatio: "95%",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "--- Text 1 of 2 ---")
	assert.Contains(t, out, "--- Text 2 of 2 ---")
	assert.Contains(t, out, "Average compression: 95%")
}

func TestJSONFormatterProducesValidJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSONFormatter().Summary(&buf, &api.SummarizeResult{
		Summary:        "json summary",
		OriginalLength: 50,
		SummaryLength:  12,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "json summary", decoded["summary"])
	assert.Equal(t, float64(50), decoded["originalLength"])
}

func TestTextHealth(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextFormatter().Health(&buf, &api.HealthData{
		Status:   "healthy",
		Version:  "1.0.0",
		Services: map[string]string{"summarizer": "up"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Status: healthy")
	assert.Contains(t, out, "summarizer: up")
}
