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

package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// file is the YAML representation of chart overrides. Only the sections
// present in the file replace the built-in configuration; vendor entries
// merge over the built-in directory.
type file struct {
	DefaultAccount int      `yaml:"default_account"`
	VAT            *vatFile `yaml:"vat"`
	Accounts       *struct {
		Closing           *currencyFile `yaml:"closing"`
		BankingDebit      *currencyFile `yaml:"banking_debit"`
		BankingCredit     *currencyFile `yaml:"banking_credit"`
		WithholdingCredit *currencyFile `yaml:"withholding_credit"`
		WithholdingDebit  int           `yaml:"withholding_debit"`
		TaxCreditDebit    int           `yaml:"tax_credit_debit"`
	} `yaml:"accounts"`
	Vendors map[string]vendorFile `yaml:"vendors"`
}

type vatFile struct {
	Bands []struct {
		Rate    float64 `yaml:"rate"`
		Account int     `yaml:"account"`
	} `yaml:"bands"`
	Other     int     `yaml:"other"`
	Tolerance float64 `yaml:"tolerance"`
}

type currencyFile struct {
	Local   int `yaml:"local"`
	Foreign int `yaml:"foreign"`
}

type vendorFile struct {
	Name  string `yaml:"name"`
	Debit int    `yaml:"debit"`
}

// Load reads chart overrides from a YAML file and applies them over the
// built-in chart.
func Load(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("invalid chart file %s: %w", path, err)
	}
	return c, nil
}

// Read reads chart overrides in YAML format and applies them over the
// built-in chart.
func Read(r io.Reader) (*Chart, error) {
	var overrides file
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&overrides); err != nil && err != io.EOF {
		return nil, err
	}
	c := Default()
	if overrides.DefaultAccount != 0 {
		c.DefaultAccount = overrides.DefaultAccount
	}
	if v := overrides.VAT; v != nil {
		if len(v.Bands) > 0 {
			c.VAT.Bands = nil
			for _, b := range v.Bands {
				c.VAT.Bands = append(c.VAT.Bands, VATBand{
					Rate:    decimal.NewFromFloat(b.Rate),
					Account: b.Account,
				})
			}
		}
		if v.Other != 0 {
			c.VAT.Other = v.Other
		}
		if v.Tolerance != 0 {
			c.VAT.Tolerance = decimal.NewFromFloat(v.Tolerance)
		}
	}
	if a := overrides.Accounts; a != nil {
		applyCurrency(&c.Accounts.Closing, a.Closing)
		applyCurrency(&c.Accounts.BankingDebit, a.BankingDebit)
		applyCurrency(&c.Accounts.BankingCredit, a.BankingCredit)
		applyCurrency(&c.Accounts.WithholdingCredit, a.WithholdingCredit)
		if a.WithholdingDebit != 0 {
			c.Accounts.WithholdingDebit = a.WithholdingDebit
		}
		if a.TaxCreditDebit != 0 {
			c.Accounts.TaxCreditDebit = a.TaxCreditDebit
		}
	}
	for rut, v := range overrides.Vendors {
		c.Vendors[rut] = Vendor{Name: v.Name, Debit: v.Debit}
	}
	return c, nil
}

func applyCurrency(dst *CurrencyAccounts, src *currencyFile) {
	if src == nil {
		return
	}
	*dst = CurrencyAccounts{Local: src.Local, Foreign: src.Foreign}
}
