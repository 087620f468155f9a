// Copyright 2025 Juan Mato
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package check

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juanmato/cfe-converter/cmd/flags"
	"github.com/juanmato/cfe-converter/lib/cfe"
	"github.com/juanmato/cfe-converter/lib/rules"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a CFE spreadsheet without writing postings",
		Long: `Check runs the conversion rules over a CFE export and reports, per
record, the postings it would produce and any classification problems. No
file is written.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runner struct {
	chart flags.ChartFlag
}

func (r *runner) setupFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(&r.chart, "config", "c", "chart of accounts configuration file")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	c, err := r.chart.Value()
	if err != nil {
		return err
	}
	batch, err := cfe.ReadFile(args[0])
	if err != nil {
		return err
	}
	for _, warn := range batch.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warn)
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()
	if len(batch.Records) == 0 {
		return fmt.Errorf("no CFE records found in %s", args[0])
	}
	g := rules.Generator{Chart: c}
	results := g.GenerateAll(batch.Records, 1, nil)
	for _, res := range results {
		rec := batch.Records[res.Row-1]
		fmt.Fprintf(w, "row %d: %s %s %s: %d postings\n",
			res.Row, rec.Type, rec.Series, rec.Number, len(res.Entries))
		if res.Skipped != nil {
			fmt.Fprintf(w, "  error: %s\n", res.Skipped)
		}
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", warn)
		}
	}
	s := rules.Summarize(results)
	fmt.Fprintf(w, "%d CFEs read, %d postings, %d records without postings\n",
		s.Records, s.Postings, s.Failed)
	if s.Postings == 0 {
		return fmt.Errorf("no postings generated from %d records", s.Records)
	}
	return nil
}
