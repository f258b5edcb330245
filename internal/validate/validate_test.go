package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldReturnsFirstFailingRule(t *testing.T) {
	v := New().
		AddRule("text", "required", Required("text")).
		AddRule("text", "min-length", MinLength("text", 10))

	err := v.Field("text", "   ")
	require.Error(t, err)
	assert.Equal(t, "text is required", err.Error())

	err = v.Field("text", "short")
	require.Error(t, err)
	assert.Equal(t, "text must be at least 10 characters", err.Error())

	assert.NoError(t, v.Field("text", "long enough input"))
}

func TestFieldWithoutRulesPasses(t *testing.T) {
	assert.NoError(t, New().Field("anything", ""))
}

func TestFormCollectsAllFailures(t *testing.T) {
	v := New().
		AddRule("goal", "required", Required("goal")).
		AddRule("experience", "enum", OneOf("experience", "beginner", "advanced"))

	problems := v.Form(map[string]string{
		"goal":       "",
		"experience": "wizard",
	})

	require.Len(t, problems, 2, "a failing field must not stop later fields")
	assert.Equal(t, "goal is required", problems["goal"].Error())
	assert.Contains(t, problems["experience"].Error(), "must be one of")
}

func TestFormEmptyOnValidInput(t *testing.T) {
	v := Summarizer()

	problems := v.Form(map[string]string{
		"text":      "a sufficiently long input text",
		"maxLength": "500",
		"style":     "concise",
	})
	assert.Empty(t, problems)
}

func TestSummarizerRejectsShortText(t *testing.T) {
	problems := Summarizer().Form(map[string]string{
		"text":  "too short",
		"style": "concise",
	})
	require.Contains(t, problems, "text")
	assert.Equal(t, "text must be at least 10 characters", problems["text"].Error())
}

func TestSummarizerRejectsMaxLengthOutOfRange(t *testing.T) {
	err := Summarizer().Field("maxLength", "49")
	require.Error(t, err)
	assert.Equal(t, "max length must be between 50 and 2000", err.Error())

	assert.NoError(t, Summarizer().Field("maxLength", "2000"))
	assert.NoError(t, Summarizer().Field("maxLength", ""), "empty defers to the backend default")
}

func TestQuestionValidator(t *testing.T) {
	problems := Question().Form(map[string]string{
		"question":       "hi",
		"collectionName": "default",
	})
	require.Contains(t, problems, "question")
	assert.Equal(t, "question must be at least 3 characters", problems["question"].Error())

	problems = Question().Form(map[string]string{
		"question":       "what is a goroutine?",
		"collectionName": "default",
	})
	assert.Empty(t, problems)
}

func TestLearningPathValidator(t *testing.T) {
	problems := LearningPath().Form(map[string]string{
		"goal":           "brief",
		"experience":     "expert",
		"timeCommitment": "",
		"learningStyle":  "visual",
	})
	assert.NotContains(t, problems, "goal", "five characters meets the minimum")
	assert.Contains(t, problems, "experience")
	assert.Contains(t, problems, "timeCommitment")
	assert.NotContains(t, problems, "learningStyle")
}

func TestIntBetweenRejectsNonNumbers(t *testing.T) {
	err := IntBetween("max length", 50, 2000)("plenty")
	require.Error(t, err)
	assert.Equal(t, "max length must be a number", err.Error())
}

func TestMinLengthCountsRunes(t *testing.T) {
	assert.NoError(t, MinLength("text", 5)("héllo"))
}

func TestFileRejectsDisallowedExtension(t *testing.T) {
	limits := FileLimits{
		AllowedExtensions: []string{".pdf", ".docx", ".txt", ".md"},
		MaxBytes:          10 * 1024 * 1024,
	}

	err := File("malware.exe", 100, limits)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".exe")
	assert.Contains(t, err.Error(), ".pdf, .docx, .txt, .md")
}

func TestFileExtensionIsCaseInsensitive(t *testing.T) {
	limits := FileLimits{AllowedExtensions: []string{".pdf"}, MaxBytes: 1024}
	assert.NoError(t, File("Report.PDF", 100, limits))
}

func TestFileRejectsMissingExtension(t *testing.T) {
	limits := FileLimits{AllowedExtensions: []string{".pdf"}, MaxBytes: 1024}
	err := File("README", 100, limits)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extension")
}

func TestFileRejectsOversize(t *testing.T) {
	limits := FileLimits{AllowedExtensions: []string{".pdf"}, MaxBytes: 10 * 1024 * 1024}
	err := File("big.pdf", 11*1024*1024, limits)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit is 10 MB")
}

func TestFileExtensionCheckedBeforeSize(t *testing.T) {
	limits := FileLimits{AllowedExtensions: []string{".pdf"}, MaxBytes: 1024}
	err := File("huge.exe", 1<<30, limits)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".exe", "extension problem must win over size")
}

func TestRuleFuncComposition(t *testing.T) {
	custom := func(value string) error {
		if value == "forbidden" {
			return errors.New("value is forbidden")
		}
		return nil
	}
	v := New().AddRule("field", "custom", custom)
	assert.NoError(t, v.Field("field", "ok"))
	assert.Error(t, v.Field("field", "forbidden"))
}
