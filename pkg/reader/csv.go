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

package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pivotscan/pivotscan/pkg/record"
	log "github.com/sirupsen/logrus"
)

// CSVSource streams rows out of a delimited text file. The first row
// names the fields. Column types are inferred from the first data row:
// a column whose first value parses as a float is numeric for the whole
// dataset, everything else stays text. Files ending in .gz or .zst are
// decompressed transparently.
type CSVSource struct {
	file   *os.File
	gz     *gzip.Reader
	zd     *zstd.Decoder
	csvr   *csv.Reader
	fields []string
	dtypes []record.Dtype

	// first data row, buffered during type inference
	pending []string
	done    bool
}

func NewCSVSource(path string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("NewCSVSource: %w: %v", record.ErrSourceUnavailable, err)
	}

	src := &CSVSource{file: f}
	var rdr io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		src.gz, err = gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("NewCSVSource: %w: %v", record.ErrSourceUnavailable, err)
		}
		rdr = src.gz
	case strings.HasSuffix(path, ".zst"):
		src.zd, err = zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("NewCSVSource: %w: %v", record.ErrSourceUnavailable, err)
		}
		rdr = src.zd
	}

	src.csvr = csv.NewReader(rdr)
	src.fields, err = src.csvr.Read()
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("NewCSVSource: failed to read header, %w: %v",
			record.ErrSourceUnavailable, err)
	}

	src.pending, err = src.csvr.Read()
	if err == io.EOF {
		src.done = true
		return src, nil
	} else if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("NewCSVSource: failed to read first row, %w: %v",
			record.ErrSourceUnavailable, err)
	}

	src.dtypes = make([]record.Dtype, len(src.fields))
	for i, raw := range src.pending {
		if _, perr := strconv.ParseFloat(raw, 64); perr == nil {
			src.dtypes[i] = record.DT_FLOAT
		} else {
			src.dtypes[i] = record.DT_STRING
		}
	}
	return src, nil
}

// Fields returns the field names from the header row.
func (src *CSVSource) Fields() []string {
	return src.fields
}

func (src *CSVSource) Next() (record.Row, error) {
	if src.done {
		return nil, io.EOF
	}

	var raw []string
	var err error
	if src.pending != nil {
		raw = src.pending
		src.pending = nil
	} else {
		raw, err = src.csvr.Read()
		if err == io.EOF {
			src.done = true
			return nil, io.EOF
		} else if err != nil {
			return nil, fmt.Errorf("Next: %w: %v", record.ErrSourceUnavailable, err)
		}
	}

	row := make(record.Row, len(src.fields))
	for i, field := range src.fields {
		if src.dtypes[i] == record.DT_FLOAT {
			fval, perr := strconv.ParseFloat(raw[i], 64)
			if perr != nil {
				log.Errorf("Next: field %v was inferred numeric but holds %q", field, raw[i])
				return nil, fmt.Errorf("Next: field %q: %w: %q is not numeric",
					field, record.ErrTypeMismatch, raw[i])
			}
			row[field] = record.FloatValue(fval)
		} else {
			row[field] = record.StringValue(raw[i])
		}
	}
	return row, nil
}

func (src *CSVSource) Close() error {
	var gzErr error
	if src.gz != nil {
		gzErr = src.gz.Close()
	}
	if src.zd != nil {
		src.zd.Close()
	}
	closeErr := src.file.Close()
	if gzErr != nil {
		return fmt.Errorf("Close: %w: %v", record.ErrSourceUnavailable, gzErr)
	}
	if closeErr != nil {
		return fmt.Errorf("Close: %w: %v", record.ErrSourceUnavailable, closeErr)
	}
	return nil
}
