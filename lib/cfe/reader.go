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
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/extrame/xls"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Batch is the outcome of reading one CFE export. Warnings carry row-level
// anomalies (rows skipped for an unparseable date); they do not stop a run.
type Batch struct {
	Records  []Record
	Warnings []string
}

// columnAliases maps each record field to the header spellings the tax
// authority exports have been observed to use. Comparison is normalized
// (trimmed, lowercased, diacritics folded), so accented variants need no
// separate entry.
var columnAliases = map[string][]string{
	"date":       {"fecha comprobante", "fecha_comprobante", "fecha"},
	"type":       {"tipo cfe", "tipo_cfe", "tipo"},
	"series":     {"serie"},
	"number":     {"numero", "nro", "n°", "nº"},
	"rut":        {"rut emisor", "rut_emisor", "rut"},
	"currency":   {"moneda"},
	"net":        {"monto neto", "monto_neto", "neto", "suma de monto neto"},
	"vat":        {"iva ventas", "iva_ventas", "iva", "suma de iva ventas"},
	"total":      {"monto total", "monto_total", "total", "suma de monto total"},
	"withheld":   {"monto ret/per", "monto_ret_per", "ret/per", "retencion", "suma de monto ret/per"},
	"tax_credit": {"monto cred. fiscal", "monto_cred_fiscal", "cred. fiscal", "credito fiscal", "suma de monto cred. fiscal"},
}

// requiredColumns must all be present for a row to qualify as the header.
var requiredColumns = []string{"date", "type", "series", "number", "rut", "currency"}

// ReadFile reads CFE records from a spreadsheet export. The format is
// chosen by extension: .csv, .xlsx or legacy .xls.
func ReadFile(path string) (*Batch, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readCSVFile(path)
	case ".xlsx":
		return ReadXLSX(path)
	case ".xls":
		return readXLS(path)
	default:
		return nil, fmt.Errorf("unsupported format %q, want .csv, .xlsx or .xls", ext)
	}
}

func readCSVFile(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(bufio.NewReader(f))
}

// ReadCSV reads CFE records from a CSV export.
func ReadCSV(r io.Reader) (*Batch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return FromRows(rows)
}

// ReadXLSX reads CFE records from an Excel export. Sheets are scanned in
// workbook order until one yields records; pivot exports place the data on
// a sheet that is not necessarily the first.
func ReadXLSX(path string) (*Batch, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var last *Batch
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, err
		}
		batch, err := FromRows(rows)
		if err != nil {
			continue
		}
		if len(batch.Records) > 0 {
			return batch, nil
		}
		last = batch
	}
	if last != nil {
		return last, nil
	}
	return nil, ErrNoHeader
}

// readXLS reads CFE records from a legacy BIFF Excel export, as produced by
// the tax authority portal before the XLSX switch. The reader concatenates
// the cells of every sheet, so the header row is found regardless of which
// sheet carries the data.
func readXLS(path string) (*Batch, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	return FromRows(wb.ReadAllCells(math.MaxInt32))
}

// ErrNoHeader signals an export without a recognizable CFE header row.
var ErrNoHeader = fmt.Errorf("no CFE header row found")

// FromRows extracts CFE records from raw spreadsheet rows: it locates the
// header row by its column names and parses every data row below it.
func FromRows(rows [][]string) (*Batch, error) {
	headerIdx, columns := findHeader(rows)
	if columns == nil {
		return nil, ErrNoHeader
	}
	batch := new(Batch)
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if blankRow(row) {
			continue
		}
		if strings.TrimSpace(field(row, columns, "type")) == "" {
			continue
		}
		date, ok := parseDate(field(row, columns, "date"))
		if !ok {
			batch.Warnings = append(batch.Warnings, fmt.Sprintf("row %d: invalid date, skipped", i+1))
			continue
		}
		batch.Records = append(batch.Records, Record{
			Date:      date,
			Type:      strings.TrimSpace(field(row, columns, "type")),
			Series:    strings.TrimSpace(field(row, columns, "series")),
			Number:    parseNumber(field(row, columns, "number")),
			RUT:       strings.TrimSpace(field(row, columns, "rut")),
			Currency:  strings.TrimSpace(field(row, columns, "currency")),
			Net:       parseAmount(field(row, columns, "net")),
			VAT:       parseAmount(field(row, columns, "vat")),
			Total:     parseAmount(field(row, columns, "total")),
			Withheld:  parseAmount(field(row, columns, "withheld")),
			TaxCredit: parseAmount(field(row, columns, "tax_credit")),
		})
	}
	return batch, nil
}

// findHeader scans for the first row containing all required columns and
// returns its index and the column mapping.
func findHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		columns := matchColumns(row)
		ok := true
		for _, key := range requiredColumns {
			if _, present := columns[key]; !present {
				ok = false
				break
			}
		}
		if ok {
			return i, columns
		}
	}
	return 0, nil
}

// matchColumns maps record fields to column indices by flexible header
// comparison.
func matchColumns(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalize(h)
	}
	columns := make(map[string]int)
	for key, aliases := range columnAliases {
		for _, alias := range aliases {
			for i, h := range normalized {
				if h == alias {
					columns[key] = i
					break
				}
			}
			if _, ok := columns[key]; ok {
				break
			}
		}
	}
	return columns
}

func field(row []string, columns map[string]int, key string) string {
	i, ok := columns[key]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// excelSerialEpoch is day zero of the 1900 date system used by Excel.
var excelSerialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// parseDate parses the document date. XLSX cells may surface dates as
// serial numbers depending on cell styling, so those are accepted too.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "/  /" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2/1/2006", "2/1/06", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		return excelSerialEpoch.AddDate(0, 0, int(serial)), true
	}
	return time.Time{}, false
}

// parseAmount parses a monetary cell. Blank, "-" and unparseable cells are
// zero; a comma decimal separator is accepted.
func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" || s == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseNumber cleans a document number. Numbers rendered as floats by the
// spreadsheet ("1234.0") lose the spurious fraction; anything else is kept
// verbatim, preserving leading zeros.
func parseNumber(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return s
}

// normalize prepares a header cell for comparison.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
