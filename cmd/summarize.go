/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/validate"
)

var (
	summarizeMaxLength int
	summarizeStyle     string
	summarizeLanguage  string
	summarizeFiles     []string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text]",
	Short: "Summarize text from an argument, files, or stdin",
	Long: `aidash summarize - Summarize text

Reads the text from the argument, from --file (repeatable; more than one
file uses the batch endpoint), or from stdin when neither is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		options := api.DefaultSummarizeOptions()
		if summarizeMaxLength > 0 {
			options.MaxLength = summarizeMaxLength
		}
		if summarizeStyle != "" {
			options.Style = summarizeStyle
		}
		if summarizeLanguage != "" {
			options.Language = summarizeLanguage
		}

		texts, err := collectSummarizeInputs(cmd, args)
		if err != nil {
			return err
		}
		if err := validateSummarizeInputs(texts, options); err != nil {
			return err
		}

		backend := newBackendClient()
		if len(texts) == 1 {
			result, err := backend.Summarize(cmd.Context(), api.SummarizeRequest{
				Text:    texts[0],
				Options: options,
			})
			if err != nil {
				return err
			}
			return newFormatter().Summary(cmd.OutOrStdout(), result)
		}

		result, err := backend.SummarizeBatch(cmd.Context(), api.BatchSummarizeRequest{
			Texts:   texts,
			Options: options,
		})
		if err != nil {
			return err
		}
		return newFormatter().BatchSummary(cmd.OutOrStdout(), result)
	},
}

func collectSummarizeInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(summarizeFiles) > 0 {
		if len(summarizeFiles) > validate.MaxBatchTexts {
			return nil, fmt.Errorf("at most %d files per batch", validate.MaxBatchTexts)
		}
		texts := make([]string, 0, len(summarizeFiles))
		for _, path := range summarizeFiles {
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			texts = append(texts, string(content))
		}
		return texts, nil
	}
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []string{string(content)}, nil
}

func validateSummarizeInputs(texts []string, options api.SummarizeOptions) error {
	validator := validate.Summarizer()
	for _, text := range texts {
		if err := validator.Field("text", text); err != nil {
			return err
		}
	}
	if err := validator.Field("style", options.Style); err != nil {
		return err
	}
	return validator.Field("maxLength", strconv.Itoa(options.MaxLength))
}

func init() {
	summarizeCmd.Flags().IntVar(&summarizeMaxLength, "max-length", 0, "summary length in characters (50-2000)")
	summarizeCmd.Flags().StringVar(&summarizeStyle, "style", "", "summary style: concise, detailed, bullet, executive")
	summarizeCmd.Flags().StringVar(&summarizeLanguage, "language", "", "summary language")
	summarizeCmd.Flags().StringArrayVar(&summarizeFiles, "file", nil, "read text from file (repeatable; >1 uses the batch endpoint)")
	rootCmd.AddCommand(summarizeCmd)
}
