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

package cfe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{"Reporte CFE recibidos"},
		{},
		{"Fecha Comprobante", "Tipo CFE", "Serie", "Número", "RUT Emisor", "Moneda", "Monto Neto", "IVA Ventas", "Monto Total", "Monto Ret/Per", "Monto Cred. Fiscal"},
		{"05/03/2026", "e-Factura", "A", "0012345", "080128330013", "UYU", "57373.61", "4616.39", "61990.00", "", "-"},
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"12/03/2026", "e-Factura", "A", "12399.0", "080128330013", "UYU", "0", "0", "36255,00", "0", "0"},
		{"/  /", "e-Factura", "A", "12400", "080128330013", "UYU", "1", "0", "1", "0", "0"},
		{"18/03/2026", "", "A", "12401", "080128330013", "UYU", "1", "0", "1", "0", "0"},
	}

	batch, err := FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}

	want := []Record{
		{
			Date:      time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			Type:      "e-Factura",
			Series:    "A",
			Number:    "0012345",
			RUT:       "080128330013",
			Currency:  "UYU",
			Net:       decimal.RequireFromString("57373.61"),
			VAT:       decimal.RequireFromString("4616.39"),
			Total:     decimal.RequireFromString("61990.00"),
			Withheld:  decimal.Zero,
			TaxCredit: decimal.Zero,
		},
		{
			Date:      time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
			Type:      "e-Factura",
			Series:    "A",
			Number:    "12399",
			RUT:       "080128330013",
			Currency:  "UYU",
			Net:       decimal.Zero,
			VAT:       decimal.Zero,
			Total:     decimal.RequireFromString("36255.00"),
			Withheld:  decimal.Zero,
			TaxCredit: decimal.Zero,
		},
	}
	if diff := cmp.Diff(want, batch.Records); diff != "" {
		t.Errorf("FromRows() records, unexpected diff (-want/+got):\n%s", diff)
	}
	// The blank-date row is reported, the blank-type row silently dropped.
	if len(batch.Warnings) != 1 || !strings.Contains(batch.Warnings[0], "row 7") {
		t.Errorf("FromRows() warnings = %v, want one warning for row 7", batch.Warnings)
	}
}

func TestFromRowsNoHeader(t *testing.T) {
	rows := [][]string{
		{"Reporte CFE recibidos"},
		{"Fecha", "Serie"},
	}
	if _, err := FromRows(rows); err != ErrNoHeader {
		t.Errorf("FromRows() error = %v, want ErrNoHeader", err)
	}
}

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Fecha Comprobante,Tipo CFE,Serie,Numero,RUT Emisor,Moneda,Monto Neto,IVA Ventas,Monto Total",
		"05/03/2026,e-Factura,A,100,080128330013,UYU,100.00,22.00,122.00",
		"6/3/26,e-Resguardo,B,101,210465260012,UYU,,,",
	}, "\n")

	batch, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(batch.Records) != 2 {
		t.Fatalf("ReadCSV() returned %d records, want 2", len(batch.Records))
	}
	if got, want := batch.Records[1].Date, time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("records[1].Date = %v, want %v", got, want)
	}
	// Missing amount columns default to zero.
	if !batch.Records[1].Withheld.IsZero() {
		t.Errorf("records[1].Withheld = %s, want 0", batch.Records[1].Withheld)
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	// The records sit on the third sheet, behind an empty default sheet and
	// a summary sheet without a header row.
	if _, err := f.NewSheet("Resumen"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Resumen", "A1", "Reporte de CFE recibidos"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewSheet("Datos"); err != nil {
		t.Fatal(err)
	}
	rows := [][]interface{}{
		{"Reporte de CFE recibidos"},
		{"Fecha Comprobante", "Tipo CFE", "Serie", "Número", "RUT Emisor", "Moneda", "Monto Neto", "IVA Ventas", "Monto Total"},
		{"05/03/2026", "e-Factura", "A", "0012345", "080128330013", "UYU", "100,00", "22,00", "122,00"},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Datos", cell, &rows[i]); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "marzo.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	batch, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("ReadFile() returned %d records, want 1", len(batch.Records))
	}
	want := Record{
		Date:      time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		Type:      "e-Factura",
		Series:    "A",
		Number:    "0012345",
		RUT:       "080128330013",
		Currency:  "UYU",
		Net:       decimal.RequireFromString("100"),
		VAT:       decimal.RequireFromString("22"),
		Total:     decimal.RequireFromString("122"),
		Withheld:  decimal.Zero,
		TaxCredit: decimal.Zero,
	}
	if diff := cmp.Diff(want, batch.Records[0]); diff != "" {
		t.Errorf("ReadFile() record, unexpected diff (-want/+got):\n%s", diff)
	}
}

func TestReadFileXLS(t *testing.T) {
	// A corrupt workbook must fail inside the BIFF reader, not at the
	// extension dispatch.
	path := filepath.Join(t.TempDir(), "legacy.xls")
	if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("ReadFile() error = nil, want a reader error")
	}
	if strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("ReadFile() error = %v, want a reader error", err)
	}
}

func TestReadFileUnsupported(t *testing.T) {
	_, err := ReadFile("recibidos.ods")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("ReadFile() error = %v, want unsupported format", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input  string
		want   time.Time
		wantOK bool
	}{
		{input: "05/03/2026", want: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "5/3/26", want: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "2026-03-05", want: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "46086", want: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), wantOK: true},
		{input: "/  /", wantOK: false},
		{input: "", wantOK: false},
		{input: "mañana", wantOK: false},
	}
	for _, test := range tests {
		got, ok := parseDate(test.input)
		if ok != test.wantOK {
			t.Errorf("parseDate(%q) ok = %t, want %t", test.input, ok, test.wantOK)
			continue
		}
		if ok && !got.Equal(test.want) {
			t.Errorf("parseDate(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "57373.61", want: "57373.61"},
		{input: "36255,00", want: "36255"},
		{input: "-122.50", want: "-122.5"},
		{input: "", want: "0"},
		{input: "-", want: "0"},
		{input: "n/a", want: "0"},
	}
	for _, test := range tests {
		want := decimal.RequireFromString(test.want)
		if got := parseAmount(test.input); !got.Equal(want) {
			t.Errorf("parseAmount(%q) = %s, want %s", test.input, got, want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "0012345", want: "0012345"},
		{input: "12345.0", want: "12345"},
		{input: " A123 ", want: "A123"},
		{input: "12.5", want: "12.5"},
	}
	for _, test := range tests {
		if got := parseNumber(test.input); got != test.want {
			t.Errorf("parseNumber(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
