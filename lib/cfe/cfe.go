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

// Package cfe models electronic fiscal receipts (CFE) and reads them from
// the spreadsheet exports published by the tax authority.
package cfe

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one normalized CFE as extracted from a spreadsheet export.
// Labels (Type, Currency) are kept as free text; classification happens in
// the posting rules. A record is never mutated after construction.
type Record struct {
	Date      time.Time
	Type      string
	Series    string
	Number    string
	RUT       string
	Currency  string
	Net       decimal.Decimal
	VAT       decimal.Decimal
	Total     decimal.Decimal
	Withheld  decimal.Decimal
	TaxCredit decimal.Decimal
}
