/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List document collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := newBackendClient().ListCollections(cmd.Context())
		if err != nil {
			return err
		}
		return newFormatter().Collections(cmd.OutOrStdout(), data)
	},
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a collection and every document in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !deleteYes {
			fmt.Fprintf(cmd.OutOrStdout(), "Delete collection %q and every document in it? [y/N] ", name)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				feedback.Info("aborted")
				return nil
			}
		}
		if err := newBackendClient().DeleteCollection(cmd.Context(), name); err != nil {
			return err
		}
		feedback.Success("deleted collection " + name)
		return nil
	},
}

func init() {
	collectionsDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	collectionsCmd.AddCommand(collectionsDeleteCmd)
	rootCmd.AddCommand(collectionsCmd)
}
