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
	"github.com/shopspring/decimal"

	"github.com/juanmato/cfe-converter/lib/chart"
)

// VATAccount resolves the VAT account from the observed VAT/net ratio.
// A zero net amount leaves the rate undetermined and resolves to the
// generic account. Bands are checked in the order configured on the chart.
func VATAccount(c *chart.Chart, net, vat decimal.Decimal) int {
	if net.IsZero() {
		return c.VAT.Other
	}
	rate := vat.Div(net).Abs()
	for _, band := range c.VAT.Bands {
		if rate.Sub(band.Rate).Abs().LessThanOrEqual(c.VAT.Tolerance) {
			return band.Account
		}
	}
	return c.VAT.Other
}
