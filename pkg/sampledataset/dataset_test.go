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

package sampledataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GeneratorFields(t *testing.T) {
	gen := NewSegmentGenerator(7)
	require.NoError(t, gen.Init())

	rows, err := GetRows(gen, 50)
	require.NoError(t, err)
	require.Len(t, rows, 50)

	for _, row := range rows {
		for _, field := range SegmentFields {
			_, err := row.Get(field)
			assert.NoError(t, err)
		}
		seats, err := row.GetFloat("SEATS")
		require.NoError(t, err)
		pax, err := row.GetFloat("PASSENGERS")
		require.NoError(t, err)
		assert.LessOrEqual(t, pax, seats)

		region, err := row.GetString("REGION")
		require.NoError(t, err)
		country, err := row.GetString("DEST_COUNTRY")
		require.NoError(t, err)
		if country == "US" {
			assert.Equal(t, "D", region)
		} else {
			assert.NotEqual(t, "D", region)
		}
	}
}

func Test_GeneratorDeterministic(t *testing.T) {
	gen1 := NewSegmentGenerator(42)
	require.NoError(t, gen1.Init())
	gen2 := NewSegmentGenerator(42)
	require.NoError(t, gen2.Init())

	rows1, err := GetRows(gen1, 20)
	require.NoError(t, err)
	rows2, err := GetRows(gen2, 20)
	require.NoError(t, err)

	assert.Equal(t, rows1, rows2)
}

func Test_WriteDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, WriteDataset(path, 25, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, strings.Join(SegmentFields, ","), lines[0])
	for _, line := range lines[1:] {
		assert.Len(t, strings.Split(line, ","), len(SegmentFields))
	}
}
