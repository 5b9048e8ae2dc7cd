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
	"sort"
	"strconv"
)

// Accumulator holds the running statistics for one (group key, value
// field) pair. Mean is only populated by Finalize.
type Accumulator struct {
	Sum   float64
	Count int64
	Mean  float64
}

// Table maps group keys to one accumulator per value field, positionally
// aligned with the configured value-field list. Accumulators are created
// zero-initialized on the first row that reaches their key, so every
// accumulator that exists has Count >= 1 by finalization; empty groups
// never appear.
type Table struct {
	valueFields []string
	buckets     map[string][]Accumulator
}

func NewTable(valueFields []string) *Table {
	return &Table{
		valueFields: valueFields,
		buckets:     make(map[string][]Accumulator),
	}
}

// ValueFields returns the configured value-field names in caller order.
func (t *Table) ValueFields() []string {
	return t.valueFields
}

// Len returns the number of distinct group keys seen so far.
func (t *Table) Len() int {
	return len(t.buckets)
}

// Update folds one row's value-field values, aligned to the table's
// value-field list, into the accumulators for key.
func (t *Table) Update(key string, vals []float64) error {
	if len(vals) != len(t.valueFields) {
		return fmt.Errorf("Update: got %d values for %d value fields", len(vals), len(t.valueFields))
	}

	accums, ok := t.buckets[key]
	if !ok {
		accums = make([]Accumulator, len(t.valueFields))
		t.buckets[key] = accums
	}
	for i, v := range vals {
		accums[i].Sum += v
		accums[i].Count++
	}
	return nil
}

// Entry is one finalized group: its key and the accumulators for each
// value field, in the caller's value-field order.
type Entry struct {
	Key    string
	Accums []Accumulator
}

// Finalize computes the mean for every accumulator and returns the
// entries sorted in ascending lexicographic order of their keys. The
// ordered output is deliberate: it makes repeated runs diffable. Every
// accumulator reaching this point was created by a matching row, so
// Count >= 1 and the division is always defined.
func (t *Table) Finalize() []Entry {
	keys := make([]string, 0, len(t.buckets))
	for key := range t.buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		accums := t.buckets[key]
		for i := range accums {
			accums[i].Mean = accums[i].Sum / float64(accums[i].Count)
		}
		entries = append(entries, Entry{Key: key, Accums: accums})
	}
	return entries
}

// HeaderRow builds the output header: the group label, then Sum, Count
// and Mean columns for each value field.
func HeaderRow(groupLabel string, valueFields []string) []string {
	header := make([]string, 0, 1+3*len(valueFields))
	header = append(header, groupLabel)
	for _, field := range valueFields {
		header = append(header, field+"_Sum", field+"_Count", field+"_Mean")
	}
	return header
}

// CSVRow renders the entry positionally matching HeaderRow.
func (e Entry) CSVRow() []string {
	row := make([]string, 0, 1+3*len(e.Accums))
	row = append(row, e.Key)
	for _, acc := range e.Accums {
		row = append(row,
			strconv.FormatFloat(acc.Sum, 'f', -1, 64),
			strconv.FormatInt(acc.Count, 10),
			strconv.FormatFloat(acc.Mean, 'f', -1, 64))
	}
	return row
}
