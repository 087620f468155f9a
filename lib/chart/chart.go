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

// Package chart holds the chart-of-accounts configuration of the posting
// rules: fixed account numbers, VAT rate bands and the vendor directory.
// A chart is loaded once and never mutated afterwards, so it is safe to
// share across concurrent posting generation.
package chart

import (
	"github.com/shopspring/decimal"
)

// Vendor is one entry of the vendor directory.
type Vendor struct {
	Name  string
	Debit int
}

// CurrencyAccounts is a pair of account numbers selected by currency code.
type CurrencyAccounts struct {
	Local   int
	Foreign int
}

// For returns the account for the given currency code (0 local, 1 foreign).
func (c CurrencyAccounts) For(code int) int {
	if code == 0 {
		return c.Local
	}
	return c.Foreign
}

// VATBand associates a statutory VAT rate with its input-VAT account.
type VATBand struct {
	Rate    decimal.Decimal
	Account int
}

// VAT configures VAT account resolution. Bands are checked in order; a
// VAT/net ratio within Tolerance of a band's rate resolves to that band's
// account, anything else falls back to Other.
type VAT struct {
	Bands     []VATBand
	Other     int
	Tolerance decimal.Decimal
}

// Accounts holds the fixed account numbers referenced by the posting rules.
type Accounts struct {
	// Closing is credited with the document total on every non-zero-net
	// invoice posting group.
	Closing CurrencyAccounts
	// BankingDebit and BankingCredit carry the total of zero-net documents.
	BankingDebit  CurrencyAccounts
	BankingCredit CurrencyAccounts
	// WithholdingCredit is the clearing account credited on e-Resguardo
	// postings. WithholdingDebit and TaxCreditDebit are its fixed
	// counterparts for the two amounts such a document may carry.
	WithholdingCredit CurrencyAccounts
	WithholdingDebit  int
	TaxCreditDebit    int
}

// Chart is the full configuration consumed by the posting generator.
type Chart struct {
	// DefaultAccount is debited for documents of vendors missing from the
	// directory. It starts with digit 9, so such postings land in book "C".
	DefaultAccount int
	VAT            VAT
	Accounts       Accounts
	Vendors        map[string]Vendor
}

// Vendor looks up a vendor by RUT. On a miss it returns a vendor carrying
// the default debit account and false; unknown vendors are corrected
// manually downstream, they do not stop a conversion.
func (c *Chart) Vendor(rut string) (Vendor, bool) {
	v, ok := c.Vendors[rut]
	if !ok {
		return Vendor{Debit: c.DefaultAccount}, false
	}
	return v, true
}

// Default returns the built-in chart of accounts.
func Default() *Chart {
	return &Chart{
		DefaultAccount: 99999,
		VAT: VAT{
			Bands: []VATBand{
				{Rate: decimal.RequireFromString("0.22"), Account: 11331},
				{Rate: decimal.RequireFromString("0.10"), Account: 11332},
			},
			Other:     11338,
			Tolerance: decimal.RequireFromString("0.015"),
		},
		Accounts: Accounts{
			Closing:           CurrencyAccounts{Local: 21111, Foreign: 21112},
			BankingDebit:      CurrencyAccounts{Local: 21111, Foreign: 21112},
			BankingCredit:     CurrencyAccounts{Local: 11121, Foreign: 11122},
			WithholdingCredit: CurrencyAccounts{Local: 11111, Foreign: 11112},
			WithholdingDebit:  11337,
			TaxCreditDebit:    11336,
		},
		Vendors: map[string]Vendor{
			"080128330013": {Name: "FAUSTINO CARLOS", Debit: 11411},
			"090259200013": {Name: "FATE SISTEMAS", Debit: 5109},
			"100004430014": {Name: "POLAKOF Y CIA", Debit: 5117},
			"100182590018": {Name: "ADALBERTO CABRERA", Debit: 11411},
			"100866340013": {Name: "FMC SAS", Debit: 5117},
			"110166210017": {Name: "FERNANDO MIRANDA", Debit: 5117},
			"150015190016": {Name: "SUC. ROCCA", Debit: 5105},
			"150044260019": {Name: "GARA GARDO", Debit: 11411},
			"150051690015": {Name: "VET. EL GAUCHO", Debit: 5117},
			"150082360017": {Name: "GUSTAVO ACOSTA", Debit: 11411},
			"150092900014": {Name: "LUIFER", Debit: 5117},
			"150105270019": {Name: "SERGIO MARTIN VEIGA LOPEZ", Debit: 11411},
			"150107120014": {Name: "ANFERAL", Debit: 5105},
			"150131850019": {Name: "DON DETODO", Debit: 11411},
			"150147400018": {Name: "ROCHA TABACOS", Debit: 11411},
			"150160400018": {Name: "XIMENA SRL", Debit: 11411},
			"150161640012": {Name: "JULIO BAEZ", Debit: 11411},
			"150164530013": {Name: "SERVIMA", Debit: 11411},
			"150213670014": {Name: "PABLO MARCELO GABITO DIANESSI", Debit: 5117},
			"150220680011": {Name: "ROBINSON MOLINA", Debit: 11411},
			"150278160010": {Name: "TORNILLERIA DOS MIL", Debit: 5117},
			"150282390017": {Name: "JUAN BONARDI", Debit: 11411},
			"150285660015": {Name: "DIST. LARZABAL", Debit: 11411},
			"150299700014": {Name: "NOGUES NICOLAS, NAVARRO ANDRES Y OTROS", Debit: 5117},
			"150306120014": {Name: "MARIA GOMEZ", Debit: 11411},
			"150309040011": {Name: "ALEXANDER SOSA", Debit: 11411},
			"150341240012": {Name: "BERNADET MOREIRA", Debit: 11411},
			"150386160018": {Name: "FERNANDO DECUADRA", Debit: 5117},
			"150442450012": {Name: "MATIAS SILVA DE LA CRUZ", Debit: 11411},
			"150449150014": {Name: "BARBOZA DARIO Y RUIZ SEBASTIAN", Debit: 11411},
			"150754450018": {Name: "ESTUDIO LEZAMA", Debit: 5109},
			"150933960010": {Name: "DIST. LA LICEAL", Debit: 11411},
			"151052960014": {Name: "AMERICO MATO S.R.L", Debit: 11411},
			"210065430018": {Name: "INTERAGROVIAL S.A", Debit: 5107},
			"210166270016": {Name: "IND. BAHIA", Debit: 11411},
			"210182980014": {Name: "PONTYN S.A", Debit: 11411},
			"210232930015": {Name: "ALTAMA S.A", Debit: 11411},
			"210250140012": {Name: "DARCY S.A", Debit: 11411},
			"210465050018": {Name: "BSE", Debit: 5109},
			"210465260012": {Name: "BANCO REPÚBLICA", Debit: 5117},
			"210591790017": {Name: "CROMIN S.A", Debit: 5116},
			"210778720012": {Name: "UTE", Debit: 5110},
			"211542300018": {Name: "FIRST DATA", Debit: 5301},
			"212170220016": {Name: "FAMA LTDA", Debit: 5117},
			"212364760016": {Name: "ALVARO DE LEÓN", Debit: 5109},
			"212612270013": {Name: "FERAL S.A", Debit: 11411},
			"212661610019": {Name: "POHENIX", Debit: 5117},
			"212971630018": {Name: "VAMOS QUE VAMOS", Debit: 11411},
			"213590730015": {Name: "GIFAL S A", Debit: 11411},
			"213596650013": {Name: "VISA", Debit: 5301},
			"213731140014": {Name: "BEKMAR", Debit: 11411},
			"215500380016": {Name: "RESONANCE", Debit: 5109},
			"217291190011": {Name: "FLEXIS S.A", Debit: 11411},
			"217795000011": {Name: "EMILUPE", Debit: 11411},
			"218048550014": {Name: "ROCIO VALETINA RODRIGUEZ", Debit: 11411},
			"218093120015": {Name: "DIST. RAMIREZ", Debit: 11411},
			"218304270011": {Name: "SANTANDER SOLUTIONS", Debit: 5301},
			"218502340016": {Name: "GETNET URUGUAY S.A", Debit: 5301},
			"220452750013": {Name: "CEDONA SAS", Debit: 11411},
			"220476050011": {Name: "MAR REPUESTOS SAS", Debit: 5107},
			"220530290011": {Name: "FERRETERIA Y BARRACA MARCELO SAS", Debit: 5117},
		},
	}
}
