/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/validate"
)

var uploadCollection string

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload and index a document for question answering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		info, err := osStat(path)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", path, err)
		}
		if err := validate.File(info.Name(), info.Size(), validate.DefaultFileLimits()); err != nil {
			return err
		}

		collection := uploadCollection
		if collection == "" {
			collection = config.Get("default_collection", "default")
		}

		file, err := osOpen(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer file.Close()

		result, err := newBackendClient().UploadDocument(cmd.Context(), filepath.Base(path), file, collection)
		if err != nil {
			return err
		}
		return newFormatter().Upload(cmd.OutOrStdout(), result)
	},
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadCollection, "collection", "c", "", "collection to index into (default from config)")
	rootCmd.AddCommand(uploadCmd)
}
