package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Bibendus83/period/pkg/metrics"
	"github.com/Bibendus83/period/pkg/period"
)

var analyzeFile string

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Intervals file (YAML or JSON)")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a collection of intervals",
	Long: `Reads intervals from a YAML or JSON file and prints their covering
span, the gaps between them, their pairwise intersections and their unions.

File format:
  intervals:
    - start: 2015-01-01T00:00:00Z
      end: 2015-01-10T00:00:00Z
      boundary: "[)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := readSequence(analyzeFile)
		if err != nil {
			return err
		}
		defer metrics.Time("analyze", time.Now())
		printAnalysis(seq)
		return nil
	},
}

type intervalsFile struct {
	Intervals []period.Interval `json:"intervals"`
}

func readSequence(path string) (*period.Sequence, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	var f intervalsFile
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s", path)
	}
	log.Debug().Int("intervals", len(f.Intervals)).Str("file", path).Msg("Loaded intervals")
	return period.NewSequence(f.Intervals...), nil
}

func printAnalysis(seq *period.Sequence) {
	if span, ok := seq.Interval(); ok {
		fmt.Printf("span: %s\n", span)
	} else {
		fmt.Println("span: none (empty sequence)")
	}
	printSequence("gaps", seq.Gaps())
	printSequence("unions", seq.Unions())
	printSequence("intersections", seq.Intersections())
}

func printSequence(title string, seq *period.Sequence) {
	fmt.Printf("%s (%d):\n", title, seq.Len())
	seq.Each(func(_ int, interval period.Interval) bool {
		fmt.Printf("  %s\n", interval)
		return true
	})
}
