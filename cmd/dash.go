/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/autosave"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/settings"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/tui/state"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := settings.Load()
		if err != nil {
			feedback.Warning("could not load settings, using defaults: " + err.Error())
			prefs = settings.DefaultSettings()
		}

		drafts, err := autosave.NewStore(autosave.DefaultPath())
		if err != nil {
			feedback.Warning("autosave disabled: " + err.Error())
			drafts = nil
		}

		model := state.NewModel(newBackendClient(), prefs, drafts)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("dashboard crashed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashCmd)
}
