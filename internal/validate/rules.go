package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Required fails on values that are empty after trimming whitespace.
func Required(label string) RuleFunc {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// MinLength fails on values shorter than min runes after trimming.
func MinLength(label string, min int) RuleFunc {
	return func(value string) error {
		if len([]rune(strings.TrimSpace(value))) < min {
			return fmt.Errorf("%s must be at least %d characters", label, min)
		}
		return nil
	}
}

// MaxLength fails on values longer than max runes.
func MaxLength(label string, max int) RuleFunc {
	return func(value string) error {
		if len([]rune(value)) > max {
			return fmt.Errorf("%s must be at most %d characters", label, max)
		}
		return nil
	}
}

// IntBetween fails on values that are not integers in [min, max].
// Empty values pass so the rule composes with Required.
func IntBetween(label string, min, max int) RuleFunc {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s must be a number", label)
		}
		if n < min || n > max {
			return fmt.Errorf("%s must be between %d and %d", label, min, max)
		}
		return nil
	}
}

// OneOf fails on values outside the allowed set. Empty values pass so
// the rule composes with Required.
func OneOf(label string, allowed ...string) RuleFunc {
	return func(value string) error {
		if value == "" {
			return nil
		}
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("%s must be one of: %s", label, strings.Join(allowed, ", "))
	}
}

// Backend field constraints. These mirror the request schemas the
// services enforce server-side so problems surface before the network.
const (
	MinTextLength     = 10
	MinQuestionLength = 3
	MinGoalLength     = 5
	SummaryMinLength  = 50
	SummaryMaxLength  = 2000
	MaxBatchTexts     = 10
)

// SummarizeStyles are the accepted summary styles.
var SummarizeStyles = []string{"concise", "detailed", "bullet", "executive"}

// ExperienceLevels are the accepted learner experience levels.
var ExperienceLevels = []string{"beginner", "intermediate", "advanced"}

// LearningStyles are the accepted learning style preferences.
var LearningStyles = []string{"visual", "hands-on", "theoretical", "mixed"}

// Summarizer returns the validator for the summarization form.
func Summarizer() *Validator {
	return New().
		AddRule("text", "required", Required("text")).
		AddRule("text", "min-length", MinLength("text", MinTextLength)).
		AddRule("maxLength", "range", IntBetween("max length", SummaryMinLength, SummaryMaxLength)).
		AddRule("style", "enum", OneOf("style", SummarizeStyles...))
}

// Question returns the validator for the document question form.
func Question() *Validator {
	return New().
		AddRule("question", "required", Required("question")).
		AddRule("question", "min-length", MinLength("question", MinQuestionLength)).
		AddRule("collectionName", "required", Required("collection name"))
}

// LearningPath returns the validator for the learning path form.
func LearningPath() *Validator {
	return New().
		AddRule("goal", "required", Required("goal")).
		AddRule("goal", "min-length", MinLength("goal", MinGoalLength)).
		AddRule("experience", "enum", OneOf("experience", ExperienceLevels...)).
		AddRule("timeCommitment", "required", Required("time commitment")).
		AddRule("learningStyle", "enum", OneOf("learning style", LearningStyles...))
}

// Search returns the validator for the document search form.
func Search() *Validator {
	return New().
		AddRule("query", "required", Required("query"))
}
