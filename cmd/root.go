/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/client"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/colors"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/errors"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/format"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/logging"
)

var jsonOutput bool

// feedback is the user-feedback surface for CLI commands.
var feedback errors.ErrorHandler = errors.NewDefaultCLIHandler()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aidash",
	Short: "Terminal dashboard for the AI microservices backend",
	Long: `aidash - Terminal dashboard for the AI microservices backend

Summarize text, index and query documents, and generate personalized
learning paths, either interactively (aidash dash) or from the command
line. The backend URL is read from the config file or AIDASH_BACKEND_URL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		colors.SetDebug(config.GetBool("debug", false))
		colors.SetQuiet(config.GetBool("quiet", false))
		if err := logging.InitGlobal(); err != nil {
			feedback.Warning("file logging disabled: " + err.Error())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	defer func() { _ = logging.ShutdownGlobal() }()
	err := rootCmd.Execute()
	if err != nil {
		feedback.Error(err.Error())
	}
	return err
}

func init() {
	rootCmd.Version = Version
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

// newBackendClient builds the API client from configuration.
func newBackendClient() *client.Client {
	return client.New()
}

// newFormatter picks the output formatter from the --json flag.
func newFormatter() format.Formatter {
	if jsonOutput {
		return format.NewFormatter(format.FormatterTypeJSON)
	}
	return format.NewFormatter(format.FormatterTypeText)
}
