/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the backend is reachable and healthy",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := newBackendClient()
		data, err := backend.Health(cmd.Context())
		if err != nil {
			return err
		}
		if !jsonOutput {
			feedback.Success("backend is reachable")
		}
		return newFormatter().Health(cmd.OutOrStdout(), data)
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
