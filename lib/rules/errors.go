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

import "fmt"

// UnrecognizedDocTypeError signals a CFE type label missing from the type
// table. The record is skipped.
type UnrecognizedDocTypeError struct {
	Label string
}

func (e UnrecognizedDocTypeError) Error() string {
	return fmt.Sprintf("unrecognized CFE type %q", e.Label)
}

// UnrecognizedCurrencyError signals a currency label that is neither a
// local nor a foreign currency spelling. The record is skipped.
type UnrecognizedCurrencyError struct {
	Label string
}

func (e UnrecognizedCurrencyError) Error() string {
	return fmt.Sprintf("unrecognized currency %q", e.Label)
}

// UnknownVendorError signals a RUT missing from the vendor directory. The
// record still produces postings against the fallback account.
type UnknownVendorError struct {
	RUT      string
	Fallback int
}

func (e UnknownVendorError) Error() string {
	return fmt.Sprintf("RUT %s not in the vendor directory, using default account %d", e.RUT, e.Fallback)
}

// EmptyWithholdingError signals an e-Resguardo carrying neither a positive
// withholding nor a positive tax credit amount. Such a document is a data
// anomaly and produces no postings.
type EmptyWithholdingError struct{}

func (e EmptyWithholdingError) Error() string {
	return "e-Resguardo without positive withholding or tax credit amounts"
}
