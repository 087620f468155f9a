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

// Package memory renders accounting postings in the fixed-column text
// format consumed by the Memory bookkeeping product.
package memory

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// Header is the first line of every Memory import file. Field order and
// spelling are an integration contract with the external product.
const Header = "Dia,Debe,Haber,Concepto,RUC,Moneda,Total,CodigoIVA,IVA,Cotizacion,Libro,Regimen,SDocumento,NDocumento"

// Entry is one line of a Memory import file: a single movement against an
// account. Either Debit or Credit is populated in practice, but this is a
// convention of the rule set, not an invariant of the format.
//
// VATCode, Quotation, Regime, SDocument and NDocument are fixed defaults
// reserved by the external format. They are carried explicitly because the
// file layout requires their columns, even though nothing here varies them.
type Entry struct {
	Day       int
	Debit     int // account number, 0 when the debit side is unused
	Credit    int // account number, 0 when the credit side is unused
	Concept   string
	RUC       string
	Currency  int // 0 local currency, 1 foreign
	Amount    string
	VATCode   int
	VAT       string
	Quotation int
	Book      string
	Regime    string
	SDocument string
	NDocument int
}

// FormatAmount renders a monetary value with exactly two decimal digits,
// decimal point, no thousands separator and no explicit plus sign.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Printer prints Memory entries.
type Printer struct{}

// NewPrinter creates a new Printer.
func NewPrinter() *Printer {
	return new(Printer)
}

// PrintEntries prints the header line followed by one line per entry.
func (p *Printer) PrintEntries(w io.Writer, entries []Entry) (n int, err error) {
	c, err := fmt.Fprintln(w, Header)
	n += c
	if err != nil {
		return n, err
	}
	for _, e := range entries {
		c, err := p.printEntry(w, e)
		n += c
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (p *Printer) printEntry(w io.Writer, e Entry) (int, error) {
	return fmt.Fprintf(w, "%d,%s,%s,%s,%s,%d,%s,%d,%s,%d,%s,%s,%s,%d\n",
		e.Day,
		account(e.Debit),
		account(e.Credit),
		e.Concept,
		e.RUC,
		e.Currency,
		e.Amount,
		e.VATCode,
		e.VAT,
		e.Quotation,
		e.Book,
		e.Regime,
		e.SDocument,
		e.NDocument,
	)
}

// account renders an account number, with 0 meaning "side not used".
func account(a int) string {
	if a == 0 {
		return ""
	}
	return strconv.Itoa(a)
}
