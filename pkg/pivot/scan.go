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

package pivot

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pivotscan/pivotscan/pkg/reader"
	"github.com/pivotscan/pivotscan/pkg/record"
	"github.com/pivotscan/pivotscan/pkg/writer"
	log "github.com/sirupsen/logrus"
)

// ScanOptions configures one scan pass.
type ScanOptions struct {
	ValueFields []string
	GroupFields []string

	// RowLimit bounds how many rows are considered. -1 scans the whole
	// source; 0 considers none. Rows beyond the bound are never read.
	RowLimit int64

	Include Filter
	Exclude Filter

	// Output, when non-nil, receives the header row and one row per
	// finalized group. The caller owns the writer.
	Output writer.RowWriter
}

// Result is a finalized aggregation table plus scan metadata.
type Result struct {
	GroupLabel  string
	ValueFields []string
	Entries     []Entry
	RowsScanned int64
	Elapsed     time.Duration
}

// Scan drives one forward pass over the record source: each row within
// the limit is filtered, keyed and folded into the aggregation table.
// Memory held is bounded by the number of distinct group keys, not the
// input row count, which is what lets this process files much larger
// than RAM.
func Scan(src reader.RecordSource, opts ScanOptions) (*Result, error) {
	if len(opts.ValueFields) == 0 {
		return nil, fmt.Errorf("Scan: no value fields configured")
	}
	if len(opts.GroupFields) == 0 {
		return nil, fmt.Errorf("Scan: no group fields configured")
	}

	start := time.Now()
	table := NewTable(opts.ValueFields)
	var scanned int64

	for {
		if opts.RowLimit >= 0 && scanned >= opts.RowLimit {
			break
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		scanned++

		if err := foldRow(table, row, opts.GroupFields, opts.Include, opts.Exclude); err != nil {
			return nil, fmt.Errorf("Scan: row %d: %w", scanned, err)
		}
	}

	res := &Result{
		GroupLabel:  GroupLabel(opts.GroupFields),
		ValueFields: opts.ValueFields,
		Entries:     table.Finalize(),
		RowsScanned: scanned,
		Elapsed:     time.Since(start),
	}

	if opts.Output != nil {
		if err := res.WriteTo(opts.Output); err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
	}

	log.Infof("Scan: finished processing the %s-row dataset in %v, %d groups",
		humanize.Comma(scanned), res.Elapsed, len(res.Entries))
	return res, nil
}

// foldRow applies filter -> key -> accumulate for a single row. Rows
// rejected by the filters are skipped without error.
func foldRow(table *Table, row record.Row, groupFields []string,
	include Filter, exclude Filter) error {

	ok, err := Passes(row, include, exclude)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	key, err := BuildGroupKey(row, groupFields)
	if err != nil {
		return err
	}

	vals := make([]float64, len(table.valueFields))
	for i, field := range table.valueFields {
		vals[i], err = row.GetFloat(field)
		if err != nil {
			return err
		}
	}
	return table.Update(key, vals)
}

// WriteTo emits the result as delimited rows: a header, then one row
// per group in ascending key order.
func (r *Result) WriteTo(out writer.RowWriter) error {
	if err := out.Write(HeaderRow(r.GroupLabel, r.ValueFields)); err != nil {
		return err
	}
	for _, entry := range r.Entries {
		if err := out.Write(entry.CSVRow()); err != nil {
			return err
		}
	}
	return nil
}
