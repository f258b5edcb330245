/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/validate"
)

var (
	pathGoal           string
	pathSkills         []string
	pathExperience     string
	pathTimeCommitment string
	pathLearningStyle  string
	pathInterests      []string

	progressPathID      string
	progressMilestoneID string
	progressIncomplete  bool
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Generate and browse learning paths",
}

var pathGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a personalized learning path",
	RunE: func(cmd *cobra.Command, args []string) error {
		validator := validate.LearningPath()
		problems := validator.Form(map[string]string{
			"goal":           pathGoal,
			"experience":     pathExperience,
			"timeCommitment": pathTimeCommitment,
			"learningStyle":  pathLearningStyle,
		})
		for _, field := range validator.Fields() {
			if err, found := problems[field]; found {
				return err
			}
		}

		result, err := newBackendClient().GenerateLearningPath(cmd.Context(), api.UserProfile{
			Goal:           pathGoal,
			CurrentSkills:  pathSkills,
			Experience:     pathExperience,
			TimeCommitment: pathTimeCommitment,
			LearningStyle:  pathLearningStyle,
			Interests:      pathInterests,
		})
		if err != nil {
			return err
		}
		return newFormatter().LearningPath(cmd.OutOrStdout(), result)
	},
}

var pathPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List trending learning paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := newBackendClient().PopularPaths(cmd.Context())
		if err != nil {
			return err
		}
		return newFormatter().PopularPaths(cmd.OutOrStdout(), data)
	},
}

var pathProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Mark a learning path milestone complete or incomplete",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newBackendClient().UpdateProgress(cmd.Context(), api.ProgressUpdateRequest{
			PathID:      progressPathID,
			MilestoneID: progressMilestoneID,
			Completed:   !progressIncomplete,
		})
		if err != nil {
			return err
		}
		if result.Completed {
			feedback.Success("milestone " + result.MilestoneID + " completed")
		} else {
			feedback.Info("milestone " + result.MilestoneID + " reopened")
		}
		return nil
	},
}

func init() {
	pathGenerateCmd.Flags().StringVar(&pathGoal, "goal", "", "learning goal (required, at least 5 characters)")
	pathGenerateCmd.Flags().StringSliceVar(&pathSkills, "skill", nil, "current skill (repeatable)")
	pathGenerateCmd.Flags().StringVar(&pathExperience, "experience", "beginner", "beginner, intermediate, or advanced")
	pathGenerateCmd.Flags().StringVar(&pathTimeCommitment, "time", "10 hours/week", "weekly time commitment")
	pathGenerateCmd.Flags().StringVar(&pathLearningStyle, "learning-style", "mixed", "visual, hands-on, theoretical, or mixed")
	pathGenerateCmd.Flags().StringSliceVar(&pathInterests, "interest", nil, "topic of interest (repeatable)")
	_ = pathGenerateCmd.MarkFlagRequired("goal")

	pathProgressCmd.Flags().StringVar(&progressPathID, "path-id", "", "learning path ID")
	pathProgressCmd.Flags().StringVar(&progressMilestoneID, "milestone-id", "", "milestone ID")
	pathProgressCmd.Flags().BoolVar(&progressIncomplete, "undo", false, "mark the milestone incomplete instead")
	_ = pathProgressCmd.MarkFlagRequired("path-id")
	_ = pathProgressCmd.MarkFlagRequired("milestone-id")

	pathCmd.AddCommand(pathGenerateCmd)
	pathCmd.AddCommand(pathPopularCmd)
	pathCmd.AddCommand(pathProgressCmd)
	rootCmd.AddCommand(pathCmd)
}
