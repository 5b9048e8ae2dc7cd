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
	"bufio"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pivotscan/pivotscan/pkg/record"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONLinesSource streams rows out of a newline-delimited JSON file.
// JSON strings become text values and JSON numbers become float values;
// any other JSON type is rendered as text. Blank lines are skipped.
type JSONLinesSource struct {
	file    *os.File
	scanner *bufio.Scanner
}

func NewJSONLinesSource(path string) (*JSONLinesSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("NewJSONLinesSource: %w: %v", record.ErrSourceUnavailable, err)
	}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &JSONLinesSource{file: f, scanner: scanner}, nil
}

func (src *JSONLinesSource) Next() (record.Row, error) {
	for src.scanner.Scan() {
		line := src.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var raw map[string]interface{}
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("Next: %w: %v", record.ErrSourceUnavailable, err)
		}

		row := make(record.Row, len(raw))
		for field, val := range raw {
			switch v := val.(type) {
			case string:
				row[field] = record.StringValue(v)
			case float64:
				row[field] = record.FloatValue(v)
			default:
				row[field] = record.StringValue(fmt.Sprint(v))
			}
		}
		return row, nil
	}
	if err := src.scanner.Err(); err != nil {
		return nil, fmt.Errorf("Next: %w: %v", record.ErrSourceUnavailable, err)
	}
	return nil, io.EOF
}

func (src *JSONLinesSource) Close() error {
	if err := src.file.Close(); err != nil {
		return fmt.Errorf("Close: %w: %v", record.ErrSourceUnavailable, err)
	}
	return nil
}
