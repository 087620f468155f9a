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
	"io"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"

	"github.com/juanmato/cfe-converter/cmd/cmdtest"
)

func TestGolden(t *testing.T) {
	tests := []string{
		"marzo",
		"usd",
	}
	for _, test := range tests {
		test := test
		t.Run(test, func(t *testing.T) {
			t.Parallel()

			got := cmdtest.Run(t, CreateCmd(), []string{path.Join("testdata", test+".csv")})

			goldie.New(t).Assert(t, test, got)
		})
	}
}

func TestWritesFile(t *testing.T) {
	dir := t.TempDir()
	cmd := CreateCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"-o", dir, "-n", "salida", "-j", "4", filepath.Join("testdata", "marzo.csv")})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "salida.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", "marzo.golden"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("unexpected diff (-want/+got):\n%s", diff)
	}
}

func TestAllRecordsFail(t *testing.T) {
	cmd := CreateCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{filepath.Join("testdata", "unusable.csv")})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() = nil, want error for a batch without postings")
	}
}
