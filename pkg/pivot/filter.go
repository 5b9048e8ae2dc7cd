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

import "github.com/pivotscan/pivotscan/pkg/record"

// Filter maps field names to the values that pass (include) or reject
// (exclude) a row. Text and numeric predicates can be mixed in one
// filter; a field absent from both maps is unconstrained. A field
// listed with a text predicate must hold a text value on every row it
// is checked against, and likewise for numeric predicates; anything
// else is a caller-configuration error, not a data error.
type Filter struct {
	Strings map[string][]string
	Numbers map[string][]float64
}

func (f Filter) IsEmpty() bool {
	return len(f.Strings) == 0 && len(f.Numbers) == 0
}

// Passes reports whether row satisfies every predicate of the include
// filter and none of the exclude filter. Evaluation stops at the first
// failing field.
func Passes(row record.Row, include Filter, exclude Filter) (bool, error) {
	for field, allowed := range include.Strings {
		sval, err := row.GetString(field)
		if err != nil {
			return false, err
		}
		if !containsString(allowed, sval) {
			return false, nil
		}
	}
	for field, allowed := range include.Numbers {
		fval, err := row.GetFloat(field)
		if err != nil {
			return false, err
		}
		if !containsFloat(allowed, fval) {
			return false, nil
		}
	}

	for field, forbidden := range exclude.Strings {
		sval, err := row.GetString(field)
		if err != nil {
			return false, err
		}
		if containsString(forbidden, sval) {
			return false, nil
		}
	}
	for field, forbidden := range exclude.Numbers {
		fval, err := row.GetFloat(field)
		if err != nil {
			return false, err
		}
		if containsFloat(forbidden, fval) {
			return false, nil
		}
	}

	return true, nil
}

func containsString(vals []string, target string) bool {
	for _, v := range vals {
		if v == target {
			return true
		}
	}
	return false
}

func containsFloat(vals []float64, target float64) bool {
	for _, v := range vals {
		if v == target {
			return true
		}
	}
	return false
}
