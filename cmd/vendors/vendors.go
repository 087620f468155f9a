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

package vendors

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/juanmato/cfe-converter/cmd/flags"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Print the vendor directory",
		Long: `Vendors prints the effective vendor directory: each RUT with its
display name and default debit account, including any configured overrides.`,

		Args: cobra.NoArgs,

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
	ruts := make([]string, 0, len(c.Vendors))
	for rut := range c.Vendors {
		ruts = append(ruts, rut)
	}
	sort.Strings(ruts)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUT\tDebe\tNombre")
	for _, rut := range ruts {
		v := c.Vendors[rut]
		fmt.Fprintf(w, "%s\t%d\t%s\n", rut, v.Debit, v.Name)
	}
	return w.Flush()
}
