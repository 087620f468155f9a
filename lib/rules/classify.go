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

package rules

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Currency is the Memory currency code of a document.
type Currency int

const (
	// Local is the local currency (UYU).
	Local Currency = 0
	// Foreign is any foreign currency (USD).
	Foreign Currency = 1
)

// Code returns the numeric code written to the Memory file.
func (c Currency) Code() int {
	return int(c)
}

// ParseCurrency maps a free-text currency label to its code.
func ParseCurrency(label string) (Currency, error) {
	switch fold(strings.ToUpper(strings.TrimSpace(label))) {
	case "UYU", "$U", "PESOS", "PESO URUGUAYO":
		return Local, nil
	case "USD", "US$", "DOLAR":
		return Foreign, nil
	}
	return 0, UnrecognizedCurrencyError{Label: label}
}

// DocType is the kind of CFE document.
type DocType int

const (
	// Invoice is an e-Factura.
	Invoice DocType = iota
	// CreditNote is a credit note against an e-Factura.
	CreditNote
	// Withholding is an e-Resguardo.
	Withholding
)

func (t DocType) String() string {
	switch t {
	case Invoice:
		return "e-Factura"
	case CreditNote:
		return "Nota de Crédito de e-Factura"
	case Withholding:
		return "e-Resguardo"
	}
	return "unknown"
}

// Prefix returns the short tag identifying the document type in the
// concept text of its postings.
func (t DocType) Prefix() string {
	switch t {
	case Invoice:
		return "e-F"
	case CreditNote:
		return "NC"
	case Withholding:
		return "e-R"
	}
	return ""
}

// ParseDocType maps a free-text CFE type label to its document type.
// Accented and unaccented spellings are equivalent.
func ParseDocType(label string) (DocType, error) {
	switch fold(strings.ToLower(strings.TrimSpace(label))) {
	case "e-factura":
		return Invoice, nil
	case "nota de credito de e-factura":
		return CreditNote, nil
	case "e-resguardo":
		return Withholding, nil
	}
	return 0, UnrecognizedDocTypeError{Label: label}
}

// Book classifies an account into its ledger book by leading digit:
// 1 is the balance-sheet book "C", 5 the expense book "E". Anything else
// falls into "C". The digit convention is fixed by the target chart of
// accounts.
func Book(account int) string {
	s := strconv.Itoa(account)
	if strings.HasPrefix(s, "5") {
		return "E"
	}
	return "C"
}

// fold strips diacritical marks, so that "crédito" and "credito" compare
// equal. A new transformer chain is built per call: chained transformers
// carry state and must not be shared across goroutines.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
