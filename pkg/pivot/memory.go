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
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pivotscan/pivotscan/pkg/record"
	"github.com/pivotscan/pivotscan/pkg/writer"
	log "github.com/sirupsen/logrus"
)

// MemoryOptions configures an aggregation over an already-loaded row
// collection. The four filter maps are independent: a row must pass all
// of them to be aggregated.
type MemoryOptions struct {
	IndexFields []string
	ValueFields []string

	StringInclude  map[string][]string
	StringExclude  map[string][]string
	NumericInclude map[string][]float64
	NumericExclude map[string][]float64

	// SaveToCSV writes the same header/row format as Scan to Output.
	// The finalized table is returned either way, so callers can reuse
	// results without re-scanning.
	SaveToCSV bool
	Output    writer.RowWriter
}

// Pivot aggregates a pre-loaded row collection with the same semantics
// as Scan. Trades memory for speed: repeated pivots over the same rows
// need no further passes over the source.
func Pivot(rows []record.Row, opts MemoryOptions) (*Result, error) {
	if len(opts.ValueFields) == 0 {
		return nil, fmt.Errorf("Pivot: no value fields configured")
	}
	if len(opts.IndexFields) == 0 {
		return nil, fmt.Errorf("Pivot: no index fields configured")
	}
	if opts.SaveToCSV && opts.Output == nil {
		return nil, fmt.Errorf("Pivot: SaveToCSV is set but no output writer was given")
	}

	include := Filter{Strings: opts.StringInclude, Numbers: opts.NumericInclude}
	exclude := Filter{Strings: opts.StringExclude, Numbers: opts.NumericExclude}

	start := time.Now()
	table := NewTable(opts.ValueFields)
	for i, row := range rows {
		if err := foldRow(table, row, opts.IndexFields, include, exclude); err != nil {
			return nil, fmt.Errorf("Pivot: row %d: %w", i, err)
		}
	}

	res := &Result{
		GroupLabel:  GroupLabel(opts.IndexFields),
		ValueFields: opts.ValueFields,
		Entries:     table.Finalize(),
		RowsScanned: int64(len(rows)),
		Elapsed:     time.Since(start),
	}

	if opts.SaveToCSV {
		if err := res.WriteTo(opts.Output); err != nil {
			return nil, fmt.Errorf("Pivot: %w", err)
		}
	}

	log.Infof("Pivot: finished processing the %s-row dataset in %v, %d groups",
		humanize.Comma(res.RowsScanned), res.Elapsed, len(res.Entries))
	return res, nil
}
