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

package record

import "fmt"

// Row is one record, addressable by field name. Rows are read-only to
// the aggregation components; the record source or the in-memory
// collection owns them.
type Row map[string]FieldValue

// Get returns the value for field, or a MissingField error.
func (r Row) Get(field string) (FieldValue, error) {
	fv, ok := r[field]
	if !ok {
		return FieldValue{}, fmt.Errorf("Get: %w: %q", ErrMissingField, field)
	}
	return fv, nil
}

// GetString projects a named field as text.
func (r Row) GetString(field string) (string, error) {
	fv, err := r.Get(field)
	if err != nil {
		return "", err
	}
	s, err := fv.GetString()
	if err != nil {
		return "", fmt.Errorf("GetString: field %q: %w", field, err)
	}
	return s, nil
}

// GetFloat projects a named field as a number.
func (r Row) GetFloat(field string) (float64, error) {
	fv, err := r.Get(field)
	if err != nil {
		return 0, err
	}
	f, err := fv.GetFloat()
	if err != nil {
		return 0, fmt.Errorf("GetFloat: field %q: %w", field, err)
	}
	return f, nil
}
