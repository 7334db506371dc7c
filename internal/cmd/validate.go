package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"health-advisor/internal/decision"
)

// NewValidateCommand creates the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [catalog.yaml]",
		Short: "Validate a question catalog",
		Long: `Parse a catalog and run every startup check against it:
  - question ids and option values are unique
  - visibility rules only reference earlier questions and known options
  - exactly six packages with unique slugs
  - the scoring table and decision rules only name known entries

Without an argument the embedded catalog is checked.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return validateCatalog(path, cmd.OutOrStdout())
		},
	}

	return cmd
}

func validateCatalog(path string, out io.Writer) error {
	name := path
	if name == "" {
		name = "embedded catalog"
	}
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	c, err := loadCatalog(path)
	if err == nil {
		_, err = decision.NewDefaultResolver(c)
	}
	if err != nil {
		issues := strings.Split(err.Error(), "\n")
		red.Fprintf(out, "✗ %s: %d issue(s)\n", name, len(issues))
		for _, line := range issues {
			fmt.Fprintf(out, "  - %s\n", line)
		}
		return errors.New("catalog validation failed")
	}

	green.Fprintf(out, "✓ %s is valid\n", name)
	fmt.Fprintf(out, "  %d questions, %d packages, %d reasons\n", len(c.Questions), len(c.Packages), len(c.Reasons))
	return nil
}
