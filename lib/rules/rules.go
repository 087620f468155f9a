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

// Package rules turns CFE records into double-entry Memory postings.
//
// The generator is stateless per record and never fails past its boundary:
// every abnormal condition degrades to fewer or zero postings, classified
// in the returned Result. Aggregation and reporting are the caller's job.
package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/juanmato/cfe-converter/lib/cfe"
	"github.com/juanmato/cfe-converter/lib/chart"
	"github.com/juanmato/cfe-converter/lib/memory"
)

// Generator generates Memory postings from CFE records. The chart is read
// only, so one Generator may be used from multiple goroutines.
type Generator struct {
	Chart *chart.Chart
}

// Result is the outcome of generating postings for one record.
//
// Skipped is set when the record could not be classified and produced no
// entries. Warnings carry non-fatal conditions (unknown vendor, empty
// withholding document); the record may still have produced entries.
type Result struct {
	Row      int
	Entries  []memory.Entry
	Skipped  error
	Warnings []error
}

// Generate produces the postings for one record. row is the 1-based input
// row, used for diagnostics only.
func (g *Generator) Generate(rec cfe.Record, row int) Result {
	res := Result{Row: row}
	docType, err := ParseDocType(rec.Type)
	if err != nil {
		res.Skipped = err
		return res
	}
	cur, err := ParseCurrency(rec.Currency)
	if err != nil {
		res.Skipped = err
		return res
	}
	// All postings of a group share day and concept text; groups are
	// reconciled downstream by their common concept.
	b := groupBuilder{
		day:     rec.Date.Day(),
		concept: fmt.Sprintf(" %s %s %s", docType.Prefix(), rec.Series, rec.Number),
		ruc:     rec.RUT,
		cur:     cur,
	}
	switch docType {
	case Withholding:
		g.withholding(&res, &b, rec)
	default:
		g.invoice(&res, &b, rec)
	}
	return res
}

// invoice covers e-Factura and credit notes thereof.
func (g *Generator) invoice(res *Result, b *groupBuilder, rec cfe.Record) {
	if rec.Net.IsZero() {
		// A document without taxable net value: its total moves between
		// the two banking accounts of the currency.
		res.Entries = append(res.Entries,
			b.entry(g.Chart.Accounts.BankingDebit.For(b.cur.Code()), 0, rec.Total, decimal.Zero, "C"),
			b.entry(0, g.Chart.Accounts.BankingCredit.For(b.cur.Code()), rec.Total, decimal.Zero, "C"),
		)
		return
	}
	vendor, ok := g.Chart.Vendor(rec.RUT)
	if !ok {
		res.Warnings = append(res.Warnings, UnknownVendorError{RUT: rec.RUT, Fallback: vendor.Debit})
	}
	book := Book(vendor.Debit)
	res.Entries = append(res.Entries,
		b.entry(vendor.Debit, 0, rec.Net, decimal.Zero, book))
	if !rec.VAT.IsZero() {
		// The VAT posting carries its value in the VAT column, not the
		// amount column; Memory reports VAT separately.
		res.Entries = append(res.Entries,
			b.entry(VATAccount(g.Chart, rec.Net, rec.VAT), 0, decimal.Zero, rec.VAT, book))
	}
	res.Entries = append(res.Entries,
		b.entry(0, g.Chart.Accounts.Closing.For(b.cur.Code()), rec.Total, decimal.Zero, book))
}

// withholding covers e-Resguardo documents: one posting per positive
// amount among the withholding and the tax credit.
func (g *Generator) withholding(res *Result, b *groupBuilder, rec cfe.Record) {
	credit := g.Chart.Accounts.WithholdingCredit.For(b.cur.Code())
	if rec.Withheld.IsPositive() {
		res.Entries = append(res.Entries,
			b.entry(g.Chart.Accounts.WithholdingDebit, credit, rec.Withheld, decimal.Zero, "C"))
	}
	if rec.TaxCredit.IsPositive() {
		res.Entries = append(res.Entries,
			b.entry(g.Chart.Accounts.TaxCreditDebit, credit, rec.TaxCredit, decimal.Zero, "C"))
	}
	if len(res.Entries) == 0 {
		res.Warnings = append(res.Warnings, EmptyWithholdingError{})
	}
}

// groupBuilder carries the fields shared by every posting of one record.
type groupBuilder struct {
	day     int
	concept string
	ruc     string
	cur     Currency
}

func (b *groupBuilder) entry(debit, credit int, amount, vat decimal.Decimal, book string) memory.Entry {
	return memory.Entry{
		Day:      b.day,
		Debit:    debit,
		Credit:   credit,
		Concept:  b.concept,
		RUC:      b.ruc,
		Currency: b.cur.Code(),
		Amount:   memory.FormatAmount(amount),
		VAT:      memory.FormatAmount(vat),
		Book:     book,
	}
}
