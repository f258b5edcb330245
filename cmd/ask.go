/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/validate"
)

var (
	askCollection string
	askTopK       int
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about your uploaded documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		collection := askCollection
		if collection == "" {
			collection = config.Get("default_collection", "default")
		}

		validator := validate.Question()
		problems := validator.Form(map[string]string{
			"question":       question,
			"collectionName": collection,
		})
		for _, field := range validator.Fields() {
			if err, found := problems[field]; found {
				return err
			}
		}

		result, err := newBackendClient().AskQuestion(cmd.Context(), api.QuestionRequest{
			Question:       question,
			CollectionName: collection,
			Options:        api.QuestionOptions{TopK: askTopK, IncludeMetadata: true},
		})
		if err != nil {
			return err
		}
		return newFormatter().Answer(cmd.OutOrStdout(), result)
	},
}

func init() {
	askCmd.Flags().StringVarP(&askCollection, "collection", "c", "", "collection to search (default from config)")
	askCmd.Flags().IntVar(&askTopK, "top-k", 3, "number of source chunks to retrieve")
	rootCmd.AddCommand(askCmd)
}
