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

import (
	"fmt"
	"strconv"
)

// Dtype : one-byte tag that encodes the data type of a field value
type Dtype uint8

const (
	DT_INVALID Dtype = iota
	DT_STRING
	DT_FLOAT
)

func (d Dtype) String() string {
	switch d {
	case DT_STRING:
		return "string"
	case DT_FLOAT:
		return "float"
	default:
		return "invalid"
	}
}

// FieldValue is a tagged union of the value types a field can hold.
// Exactly one of StringVal/FloatVal is meaningful, selected by Dtype.
type FieldValue struct {
	Dtype     Dtype
	StringVal string
	FloatVal  float64
}

func StringValue(s string) FieldValue {
	return FieldValue{Dtype: DT_STRING, StringVal: s}
}

func FloatValue(f float64) FieldValue {
	return FieldValue{Dtype: DT_FLOAT, FloatVal: f}
}

// GetString returns the text value, or a TypeMismatch error if the
// value is not text-typed.
func (fv FieldValue) GetString() (string, error) {
	if fv.Dtype != DT_STRING {
		return "", fmt.Errorf("GetString: %w: have %v, want string", ErrTypeMismatch, fv.Dtype)
	}
	return fv.StringVal, nil
}

// GetFloat returns the numeric value, or a TypeMismatch error if the
// value is not numeric.
func (fv FieldValue) GetFloat() (float64, error) {
	if fv.Dtype != DT_FLOAT {
		return 0, fmt.Errorf("GetFloat: %w: have %v, want float", ErrTypeMismatch, fv.Dtype)
	}
	return fv.FloatVal, nil
}

// Render returns the textual form of the value regardless of its type.
func (fv FieldValue) Render() string {
	switch fv.Dtype {
	case DT_STRING:
		return fv.StringVal
	case DT_FLOAT:
		return strconv.FormatFloat(fv.FloatVal, 'f', -1, 64)
	default:
		return ""
	}
}
