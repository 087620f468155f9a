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

package flags

import (
	"github.com/spf13/pflag"

	"github.com/juanmato/cfe-converter/lib/chart"
)

// ChartFlag manages a flag selecting the chart-of-accounts configuration.
type ChartFlag struct {
	path string
}

var _ pflag.Value = (*ChartFlag)(nil)

// Set implements pflag.Value.
func (cf *ChartFlag) Set(v string) error {
	cf.path = v
	return nil
}

// Type implements pflag.Value.
func (cf ChartFlag) Type() string {
	return "<file>"
}

func (cf ChartFlag) String() string {
	return cf.path
}

// Value loads the configured chart. Without a configured path, the
// built-in chart is returned.
func (cf ChartFlag) Value() (*chart.Chart, error) {
	if cf.path == "" {
		return chart.Default(), nil
	}
	return chart.Load(cf.path)
}
