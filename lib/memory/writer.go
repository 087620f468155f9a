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

package memory

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"
)

// Write writes the entries to a Memory import file at the given path,
// creating missing parent directories. The file is replaced atomically, so
// a failed run never leaves a truncated import file behind.
func Write(entries []Entry, target string) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmpFile, err := os.CreateTemp(dir, "memory-")
	if err != nil {
		return err
	}
	w := bufio.NewWriter(tmpFile)
	_, err = NewPrinter().PrintEntries(w, entries)
	err = multierr.Combine(err, w.Flush(), tmpFile.Close())
	if err != nil {
		return multierr.Append(err, os.Remove(tmpFile.Name()))
	}
	return atomic.ReplaceFile(tmpFile.Name(), target)
}
