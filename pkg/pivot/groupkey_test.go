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
	"testing"

	"github.com/pivotscan/pivotscan/pkg/record"
	"github.com/stretchr/testify/assert"
)

func Test_BuildGroupKey(t *testing.T) {
	row := testRow()

	key, err := BuildGroupKey(row, []string{"CARRIER", "ORIGIN"})
	assert.NoError(t, err)
	assert.Equal(t, "UA|JFK", key)

	// caller-specified order matters
	key, err = BuildGroupKey(row, []string{"ORIGIN", "CARRIER"})
	assert.NoError(t, err)
	assert.Equal(t, "JFK|UA", key)

	key, err = BuildGroupKey(row, []string{"CARRIER"})
	assert.NoError(t, err)
	assert.Equal(t, "UA", key)
}

func Test_BuildGroupKeyErrors(t *testing.T) {
	row := testRow()

	_, err := BuildGroupKey(row, []string{"CARRIER", "REGION"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, record.ErrMissingField))

	// numeric fields cannot be group fields
	_, err = BuildGroupKey(row, []string{"PASSENGERS"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, record.ErrTypeMismatch))

	_, err = BuildGroupKey(row, nil)
	assert.Error(t, err)
}

func Test_GroupLabel(t *testing.T) {
	assert.Equal(t, "CARRIER|ORIGIN", GroupLabel([]string{"CARRIER", "ORIGIN"}))
	assert.Equal(t, "CARRIER", GroupLabel([]string{"CARRIER"}))
}
