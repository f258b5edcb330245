package format

import (
	"fmt"
	"io"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/sanitize"
)

// TextFormatter renders results for reading in a terminal. Every string
// that came from the backend passes through sanitize before it reaches
// the writer.
type TextFormatter struct{}

// NewTextFormatter creates a text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (f *TextFormatter) Health(w io.Writer, data *api.HealthData) error {
	fmt.Fprintf(w, "Status: %s\n", sanitize.Line(data.Status))
	if data.Version != "" {
		fmt.Fprintf(w, "Version: %s\n", sanitize.Line(data.Version))
	}
	for name, status := range data.Services {
		fmt.Fprintf(w, "  %s: %s\n", sanitize.Line(name), sanitize.Line(status))
	}
	return nil
}

func (f *TextFormatter) Summary(w io.Writer, result *api.SummarizeResult) error {
	fmt.Fprintln(w, sanitize.Text(result.Summary))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Original: %d chars  Summary: %d chars", result.OriginalLength, result.SummaryLength)
	if result.CompressionRatio != "" {
		fmt.Fprintf(w, "  Compression: %s", sanitize.Line(result.CompressionRatio))
	}
	fmt.Fprintln(w)
	return nil
}

func (f *TextFormatter) BatchSummary(w io.Writer, result *api.BatchSummarizeResult) error {
	for i := range result.Summaries {
		fmt.Fprintf(w, "--- Text %d of %d ---\n", i+1, result.TotalTexts)
		if err := f.Summary(w, &result.Summaries[i]); err != nil {
			return err
		}
	}
	if result.AvgCompressionRatio != "" {
		fmt.Fprintf(w, "Average compression: %s\n", sanitize.Line(result.AvgCompressionRatio))
	}
	return nil
}

func (f *TextFormatter) Upload(w io.Writer, result *api.UploadResult) error {
	fmt.Fprintf(w, "Indexed %s into collection %q (%d chunks)\n",
		sanitize.Line(result.FileName),
		sanitize.Line(result.CollectionName),
		result.ChunksCreated,
	)
	return nil
}

func (f *TextFormatter) Answer(w io.Writer, result *api.AnswerResult) error {
	fmt.Fprintln(w, sanitize.Text(result.Answer))
	if result.Confidence != "" {
		fmt.Fprintf(w, "\nConfidence: %s\n", sanitize.Line(result.Confidence))
	}
	if len(result.Sources) > 0 {
		fmt.Fprintln(w, "\nSources:")
		for i, source := range result.Sources {
			fmt.Fprintf(w, "  %d. %s (chunk %d, score %.2f)\n",
				i+1,
				sanitize.Line(source.Metadata.FileName),
				source.Metadata.ChunkIndex,
				source.Score,
			)
			excerpt := sanitize.Truncate(sanitize.Line(source.Content), 120)
			if excerpt != "" {
				fmt.Fprintf(w, "     %s\n", excerpt)
			}
		}
	}
	return nil
}

func (f *TextFormatter) Search(w io.Writer, result *api.SearchResult) error {
	fmt.Fprintf(w, "%d result(s) for %q\n", result.TotalResults, sanitize.Line(result.Query))
	for i, hit := range result.Results {
		fmt.Fprintf(w, "  %d. %s (score %.2f)\n",
			i+1, sanitize.Line(hit.Metadata.FileName), hit.Score)
		excerpt := sanitize.Truncate(sanitize.Line(hit.Content), 120)
		if excerpt != "" {
			fmt.Fprintf(w, "     %s\n", excerpt)
		}
	}
	return nil
}

func (f *TextFormatter) Collections(w io.Writer, data *api.CollectionsData) error {
	if len(data.Collections) == 0 {
		fmt.Fprintln(w, "No collections yet.")
		return nil
	}
	for _, collection := range data.Collections {
		fmt.Fprintf(w, "%-30s %d document(s)\n",
			sanitize.Line(collection.Name), collection.DocumentCount)
	}
	return nil
}

func (f *TextFormatter) LearningPath(w io.Writer, result *api.LearningPathResult) error {
	path := result.LearningPath
	if path.Title != "" {
		fmt.Fprintf(w, "%s\n\n", sanitize.Line(path.Title))
	}
	for i, phase := range path.Phases {
		fmt.Fprintf(w, "Phase %d: %s", i+1, sanitize.Line(phase.Title))
		if phase.EstimatedWeeks > 0 {
			fmt.Fprintf(w, " (~%d weeks)", phase.EstimatedWeeks)
		}
		fmt.Fprintln(w)
		if phase.Description != "" {
			fmt.Fprintf(w, "  %s\n", sanitize.Line(phase.Description))
		}
		for _, topic := range phase.Topics {
			fmt.Fprintf(w, "  - %s\n", sanitize.Line(topic))
		}
	}
	if len(path.Resources) > 0 {
		fmt.Fprintln(w, "\nResources:")
		for _, resource := range path.Resources {
			marker := " "
			if resource.Recommended {
				marker = "*"
			}
			fmt.Fprintf(w, "  %s %s: %s\n", marker,
				sanitize.Line(resource.Type), sanitize.Line(resource.Description))
		}
	}
	if len(path.Projects) > 0 {
		fmt.Fprintln(w, "\nProjects:")
		for _, project := range path.Projects {
			fmt.Fprintf(w, "  - %s (%s, %s)\n",
				sanitize.Line(project.Title),
				sanitize.Line(project.Difficulty),
				sanitize.Line(project.EstimatedTime))
		}
	}
	if len(path.Milestones) > 0 {
		fmt.Fprintln(w, "\nMilestones:")
		for _, milestone := range path.Milestones {
			marker := "[ ]"
			if milestone.Completed {
				marker = "[x]"
			}
			fmt.Fprintf(w, "  %s %s\n", marker, sanitize.Line(milestone.Title))
		}
	}
	if estimate := result.EstimatedCompletionTime; estimate.EstimatedWeeks > 0 || estimate.TotalHours > 0 {
		fmt.Fprintf(w, "\nEstimated completion: %d weeks (~%d hours total)\n",
			estimate.EstimatedWeeks, estimate.TotalHours)
	}
	for _, recommendation := range result.Recommendations {
		fmt.Fprintf(w, "Tip: %s\n", sanitize.Line(recommendation))
	}
	return nil
}

func (f *TextFormatter) PopularPaths(w io.Writer, data *api.PopularPathsData) error {
	if len(data.PopularPaths) == 0 {
		fmt.Fprintln(w, "No popular paths yet.")
		return nil
	}
	fmt.Fprintf(w, "%-35s %-14s %-12s %s\n", "TITLE", "DIFFICULTY", "TIME", "POPULARITY")
	for _, path := range data.PopularPaths {
		fmt.Fprintf(w, "%-35s %-14s %-12s %d\n",
			sanitize.Truncate(sanitize.Line(path.Title), 35),
			sanitize.Line(path.Difficulty),
			sanitize.Line(path.EstimatedTime),
			path.Popularity,
		)
	}
	return nil
}

// compile-time interface checks
var (
	_ Formatter = (*TextFormatter)(nil)
	_ Formatter = (*JSONFormatter)(nil)
)
