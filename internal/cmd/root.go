package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates the root command for health-advisor
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health-advisor",
		Short: "Health checkup package recommendation engine",
		Long: `health-advisor walks a questionnaire about lifestyle, symptoms and
family history, scores the answers and recommends one of six checkup
packages with a short localized justification.

Run "serve" for the HTTP API, "recommend" to score an answers file and
"validate" to check a catalog before deploying it.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewRecommendCommand())

	return cmd
}
