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
	"bytes"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/juanmato/cfe-converter/cmd/cmdtest"
)

func TestGolden(t *testing.T) {
	tests := []string{
		"mixed",
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

func TestIngestionWarningsGoToStderr(t *testing.T) {
	input := strings.Join([]string{
		"Fecha Comprobante,Tipo CFE,Serie,Número,RUT Emisor,Moneda,Monto Neto,IVA Ventas,Monto Total",
		"sin fecha,e-Factura,A,100,080128330013,UYU,100.00,22.00,122.00",
		"05/03/2026,e-Factura,A,101,080128330013,UYU,100.00,22.00,122.00",
	}, "\n")
	file := filepath.Join(t.TempDir(), "recibidos.csv")
	if err := os.WriteFile(file, []byte(input), 0644); err != nil {
		t.Fatal(err)
	}
	var out, diag bytes.Buffer
	cmd := CreateCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&diag)
	cmd.SetArgs([]string{file})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(diag.String(), "row 2: invalid date, skipped") {
		t.Errorf("stderr = %q, want the ingestion warning", diag.String())
	}
	if strings.Contains(out.String(), "invalid date") {
		t.Errorf("stdout = %q, the report must not carry ingestion warnings", out.String())
	}
}
