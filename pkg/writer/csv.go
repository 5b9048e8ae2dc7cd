/*
Copyright 2023.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package writer

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pivotscan/pivotscan/pkg/record"
)

// RowWriter accepts one ordered sequence of text fields per output row.
type RowWriter interface {
	Write(fields []string) error
	Close() error
}

// CSVWriter serializes rows to a delimited file.
type CSVWriter struct {
	file *os.File
	csvw *csv.Writer
}

func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("NewCSVWriter: %w: %v", record.ErrSinkUnavailable, err)
	}
	return &CSVWriter{file: f, csvw: csv.NewWriter(f)}, nil
}

func (w *CSVWriter) Write(fields []string) error {
	if err := w.csvw.Write(fields); err != nil {
		return fmt.Errorf("Write: %w: %v", record.ErrSinkUnavailable, err)
	}
	return nil
}

func (w *CSVWriter) Close() error {
	w.csvw.Flush()
	flushErr := w.csvw.Error()
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("Close: %w: %v", record.ErrSinkUnavailable, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("Close: %w: %v", record.ErrSinkUnavailable, closeErr)
	}
	return nil
}
