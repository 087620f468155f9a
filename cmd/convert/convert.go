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

package convert

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/juanmato/cfe-converter/cmd/flags"
	"github.com/juanmato/cfe-converter/lib/cfe"
	"github.com/juanmato/cfe-converter/lib/memory"
	"github.com/juanmato/cfe-converter/lib/rules"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a CFE spreadsheet to a Memory TXT file",
		Long: `Convert reads electronic fiscal receipts (CFE) from a .csv or .xlsx
export and writes their double-entry postings in the Memory import format.
Without --output, the postings are printed to standard output.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runner struct {
	chart  flags.ChartFlag
	output string
	name   string
	jobs   int
}

func (r *runner) setupFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(&r.chart, "config", "c", "chart of accounts configuration file")
	cmd.Flags().StringVarP(&r.output, "output", "o", "", "directory for the generated TXT file")
	cmd.Flags().StringVarP(&r.name, "name", "n", "", "base name of the output file (default: input file name)")
	cmd.Flags().IntVarP(&r.jobs, "jobs", "j", 1, "number of concurrent workers")
}

var (
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

func (r *runner) run(cmd *cobra.Command, args []string) error {
	c, err := r.chart.Value()
	if err != nil {
		return err
	}
	batch, err := cfe.ReadFile(args[0])
	if err != nil {
		return err
	}
	diag := cmd.ErrOrStderr()
	for _, w := range batch.Warnings {
		warnColor.Fprintf(diag, "warning: %s\n", w)
	}
	if len(batch.Records) == 0 {
		return fmt.Errorf("no CFE records found in %s", args[0])
	}
	g := rules.Generator{Chart: c}
	var (
		bar    *pb.ProgressBar
		onDone func()
	)
	if r.output != "" {
		bar = pb.New(len(batch.Records)).SetWriter(diag).Start()
		onDone = func() { bar.Increment() }
	}
	results := g.GenerateAll(batch.Records, r.jobs, onDone)
	if bar != nil {
		bar.Finish()
	}
	entries := collect(diag, results)
	summary := rules.Summarize(results)
	if len(entries) == 0 {
		// Partial failure is tolerated, a batch where nothing converted
		// is not: the input was unusable, write no file.
		return fmt.Errorf("no postings generated from %d records", summary.Records)
	}
	if r.output == "" {
		w := bufio.NewWriter(cmd.OutOrStdout())
		if _, err := memory.NewPrinter().PrintEntries(w, entries); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
		printSummary(diag, summary, "")
		return nil
	}
	target := filepath.Join(r.output, r.baseName(args[0])+".txt")
	if err := memory.Write(entries, target); err != nil {
		return err
	}
	printSummary(diag, summary, target)
	return nil
}

func (r *runner) baseName(input string) string {
	if r.name != "" {
		return r.name
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// collect prints per-record diagnostics and concatenates the generated
// entries in input order.
func collect(diag io.Writer, results []rules.Result) []memory.Entry {
	var entries []memory.Entry
	for _, res := range results {
		if res.Skipped != nil {
			errColor.Fprintf(diag, "row %d: %s, skipped\n", res.Row, res.Skipped)
		}
		for _, w := range res.Warnings {
			warnColor.Fprintf(diag, "row %d: %s\n", res.Row, w)
		}
		entries = append(entries, res.Entries...)
	}
	return entries
}

func printSummary(diag io.Writer, s rules.Summary, target string) {
	fmt.Fprintf(diag, "%d CFEs read, %d postings generated", s.Records, s.Postings)
	if s.Failed > 0 {
		fmt.Fprintf(diag, ", %d records without postings", s.Failed)
	}
	fmt.Fprintln(diag)
	if target != "" {
		fmt.Fprintf(diag, "wrote %s\n", target)
	}
}
