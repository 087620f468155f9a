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
	"golang.org/x/sync/errgroup"

	"github.com/juanmato/cfe-converter/lib/cfe"
)

// GenerateAll generates postings for a whole batch, preserving input
// order. Records are independent, so generation runs on up to jobs
// goroutines. onDone, if non-nil, is called once per finished record.
func (g *Generator) GenerateAll(records []cfe.Record, jobs int, onDone func()) []Result {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]Result, len(records))
	eg := new(errgroup.Group)
	eg.SetLimit(jobs)
	for i, rec := range records {
		i, rec := i, rec
		eg.Go(func() error {
			results[i] = g.Generate(rec, i+1)
			if onDone != nil {
				onDone()
			}
			return nil
		})
	}
	// Generate never fails, the group is used for bounded concurrency only.
	_ = eg.Wait()
	return results
}

// Summary aggregates a batch of results.
type Summary struct {
	// Records is the number of input records.
	Records int
	// Postings is the total number of generated entries.
	Postings int
	// Failed counts the records that produced no entries, whether skipped
	// or emptied by a warning condition.
	Failed int
}

// Summarize computes the batch summary.
func Summarize(results []Result) Summary {
	s := Summary{Records: len(results)}
	for _, res := range results {
		if len(res.Entries) == 0 {
			s.Failed++
			continue
		}
		s.Postings += len(res.Entries)
	}
	return s
}
