package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"health-advisor/internal/catalog"
	"health-advisor/internal/decision"
	"health-advisor/internal/flow"
	"health-advisor/internal/model"
)

type recommendOptions struct {
	catalogPath string
	lang        string
	jsonOutput  bool
}

// NewRecommendCommand creates the recommend subcommand
func NewRecommendCommand() *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend <answers-file>",
		Short: "Recommend a package for a file of answers",
		Long: `Read answers from a YAML or JSON file mapping question ids to a value
(single-select) or a list of values (multi-select), and print the
recommended package, its price, the reasons and the risk scores.

Example answers.yaml:
  gender: male
  age: 50to59
  maleProstate: elevated_psa
  digestiveSymptoms: [none]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "catalog file (default: embedded)")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "language of names and reasons")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")

	return cmd
}

// readAnswers decodes an answers file and checks it against c.
func readAnswers(c *catalog.Catalog, path string) (model.AnswerMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	answers := model.AnswerMap{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &answers)
	default:
		err = yaml.Unmarshal(data, &answers)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse answers %s: %w", path, err)
	}
	if err := flow.CheckAnswers(c, answers); err != nil {
		return nil, fmt.Errorf("answers file %s does not fit the catalog: %w", path, err)
	}
	return answers, nil
}

func runRecommend(path string, opts *recommendOptions, out io.Writer) error {
	c, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}
	answers, err := readAnswers(c, path)
	if err != nil {
		return err
	}

	r, err := decision.NewDefaultResolver(c)
	if err != nil {
		return err
	}
	stale := flow.NewController(c, r).Stale(model.SessionState{Answers: answers})
	res := r.Resolve(answers)

	if opts.jsonOutput {
		body, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(body))
		return nil
	}

	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	bold.Fprintf(out, "%s\n", text(res.PackageName, opts.lang))
	fmt.Fprintf(out, "  package: %s\n", res.PackageSlug)
	fmt.Fprintf(out, "  price:   %d\n", res.Price)
	cyan.Fprintf(out, "  reason:  %s\n", text(res.Reason, opts.lang))

	sc := res.Scores
	fmt.Fprintf(out, "  scores:  overall=%d cancer=%d cardio=%d digestive=%d metabolic=%d brain=%d liver=%d\n",
		sc.Overall, sc.Cancer, sc.Cardio, sc.Digestive, sc.Metabolic, sc.Brain, sc.Liver)

	if len(stale) > 0 {
		yellow.Fprintf(out, "  note: answers for hidden questions still count: %s\n", strings.Join(stale, ", "))
	}
	return nil
}

// text picks lang, falling back to English.
func text(t model.LocalizedText, lang string) string {
	if v, ok := t[lang]; ok {
		return v
	}
	return t["en"]
}
