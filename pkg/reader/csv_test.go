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
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pivotscan/pivotscan/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = "CARRIER,ORIGIN,PASSENGERS\nUA,JFK,100\nUA,JFK,50\nAA,LAX,30\n"

func writePlain(t *testing.T, name string, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func drain(t *testing.T, src RecordSource) []record.Row {
	t.Helper()
	var rows []record.Row
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
	return rows
}

func Test_CSVSource(t *testing.T) {
	src, err := NewCSVSource(writePlain(t, "data.csv", testCSV))
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"CARRIER", "ORIGIN", "PASSENGERS"}, src.Fields())

	rows := drain(t, src)
	require.Len(t, rows, 3)

	// text columns stay text, numeric columns are typed from the first row
	carrier, err := rows[0].GetString("CARRIER")
	assert.NoError(t, err)
	assert.Equal(t, "UA", carrier)

	pax, err := rows[0].GetFloat("PASSENGERS")
	assert.NoError(t, err)
	assert.Equal(t, float64(100), pax)

	pax, err = rows[2].GetFloat("PASSENGERS")
	assert.NoError(t, err)
	assert.Equal(t, float64(30), pax)

	// source is exhausted; further reads keep returning EOF
	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func Test_CSVSourceGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(testCSV))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	src, err := NewCSVSource(path)
	require.NoError(t, err)
	defer src.Close()

	rows := drain(t, src)
	assert.Len(t, rows, 3)
}

func Test_CSVSourceZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(testCSV))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	src, err := NewCSVSource(path)
	require.NoError(t, err)
	defer src.Close()

	rows := drain(t, src)
	assert.Len(t, rows, 3)
}

func Test_CSVSourceHeaderOnly(t *testing.T) {
	src, err := NewCSVSource(writePlain(t, "empty.csv", "CARRIER,ORIGIN\n"))
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func Test_CSVSourceMissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, record.ErrSourceUnavailable))
}

func Test_CSVSourceInconsistentColumn(t *testing.T) {
	// PASSENGERS is inferred numeric from the first row; a later
	// non-numeric value violates the dataset type invariant
	src, err := NewCSVSource(writePlain(t, "bad.csv",
		"CARRIER,PASSENGERS\nUA,100\nAA,n/a\n"))
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	require.NoError(t, err)

	_, err = src.Next()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, record.ErrTypeMismatch))
}
