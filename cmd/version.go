/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/version"
)

// Version is the binary version shown by --version and help output.
var Version = version.String()

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the aidash version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aidash v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
