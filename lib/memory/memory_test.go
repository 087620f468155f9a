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

package memory

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "0", want: "0.00"},
		{input: "57373.61", want: "57373.61"},
		{input: "61990", want: "61990.00"},
		{input: "-5", want: "-5.00"},
		{input: "-122.5", want: "-122.50"},
		{input: "0.1", want: "0.10"},
		{input: "1234567.895", want: "1234567.90"},
	}
	for _, test := range tests {
		if got := FormatAmount(decimal.RequireFromString(test.input)); got != test.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestPrintEntries(t *testing.T) {
	entries := []Entry{
		{Day: 5, Debit: 11411, Concept: " e-F A 0012345", RUC: "080128330013", Amount: "57373.61", VAT: "0.00", Book: "C"},
		{Day: 5, Debit: 11338, Concept: " e-F A 0012345", RUC: "080128330013", Amount: "0.00", VAT: "4616.39", Book: "C"},
		{Day: 5, Credit: 21111, Concept: " e-F A 0012345", RUC: "080128330013", Amount: "61990.00", VAT: "0.00", Book: "C"},
	}
	want := strings.Join([]string{
		"Dia,Debe,Haber,Concepto,RUC,Moneda,Total,CodigoIVA,IVA,Cotizacion,Libro,Regimen,SDocumento,NDocumento",
		"5,11411,, e-F A 0012345,080128330013,0,57373.61,0,0.00,0,C,,,0",
		"5,11338,, e-F A 0012345,080128330013,0,0.00,0,4616.39,0,C,,,0",
		"5,,21111, e-F A 0012345,080128330013,0,61990.00,0,0.00,0,C,,,0",
		"",
	}, "\n")

	var sb strings.Builder
	n, err := NewPrinter().PrintEntries(&sb, entries)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(want) {
		t.Errorf("PrintEntries() wrote %d bytes, want %d", n, len(want))
	}
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("PrintEntries(), unexpected diff (-want/+got):\n%s", diff)
	}
}
