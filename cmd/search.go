/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/validate"
)

var (
	searchCollection string
	searchLimit      int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search document content without generating an answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		if err := validate.Search().Field("query", query); err != nil {
			return err
		}

		result, err := newBackendClient().SearchDocuments(cmd.Context(), query, searchCollection, searchLimit)
		if err != nil {
			return err
		}
		return newFormatter().Search(cmd.OutOrStdout(), result)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchCollection, "collection", "c", "", "restrict the search to one collection")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 5, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
