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

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juanmato/cfe-converter/cmd/check"
	"github.com/juanmato/cfe-converter/cmd/convert"
	"github.com/juanmato/cfe-converter/cmd/vendors"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cfeconv",
	Short: "cfeconv converts CFE spreadsheets to Memory postings",
	Long: `cfeconv reads electronic fiscal receipts (CFE) from the spreadsheet
exports of the tax authority and writes double-entry accounting postings in
the Memory bookkeeping format.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(convert.CreateCmd())
	rootCmd.AddCommand(check.CreateCmd())
	rootCmd.AddCommand(vendors.CreateCmd())
}
