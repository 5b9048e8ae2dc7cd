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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExtractConfigData(t *testing.T) {
	testYaml := `
dataFile: ./t100_segments.csv
log:
  logPrefix: ./logs/
jobs:
  - name: by-carrier-origin
    valueFields: [PASSENGERS, SEATS, DEPARTURES_PERFORMED]
    groupFields: [CARRIER, ORIGIN]
    output: ./pax_by_carrier_origin.csv
    include:
      CARRIER: [UA, AA, DL]
      ORIGIN: [JFK, LAX, ORD, MIA, ATL]
    exclude:
      DEST_COUNTRY: [US]
  - valueFields: [PASSENGERS]
    groupFields: [CARRIER]
    rowLimit: 1000
    numericExclude:
      PASSENGERS: [0]
`
	cfg, err := ExtractConfigData([]byte(testYaml))
	require.NoError(t, err)

	assert.Equal(t, "./t100_segments.csv", cfg.DataFile)
	assert.Equal(t, "./logs/", cfg.Log.LogPrefix)
	assert.Equal(t, 100, cfg.Log.LogFileRotationSizeMB)
	require.Len(t, cfg.Jobs, 2)

	job := cfg.Jobs[0]
	assert.Equal(t, "by-carrier-origin", job.Name)
	assert.Equal(t, []string{"PASSENGERS", "SEATS", "DEPARTURES_PERFORMED"}, job.ValueFields)
	assert.Equal(t, []string{"CARRIER", "ORIGIN"}, job.GroupFields)
	assert.Equal(t, int64(-1), job.Limit())
	assert.Equal(t, []string{"UA", "AA", "DL"}, job.IncludeFilter().Strings["CARRIER"])
	assert.Equal(t, []string{"US"}, job.ExcludeFilter().Strings["DEST_COUNTRY"])

	job = cfg.Jobs[1]
	assert.Equal(t, "job-2", job.Name)
	assert.Equal(t, int64(1000), job.Limit())
	assert.Equal(t, []float64{0}, job.ExcludeFilter().Numbers["PASSENGERS"])
}

func Test_ExtractConfigDataInvalid(t *testing.T) {
	_, err := ExtractConfigData([]byte("dataFile: ''\njobs: []\n"))
	assert.Error(t, err)

	_, err = ExtractConfigData([]byte("dataFile: ./data.csv\njobs: []\n"))
	assert.Error(t, err)

	_, err = ExtractConfigData([]byte(`
dataFile: ./data.csv
jobs:
  - groupFields: [CARRIER]
`))
	assert.Error(t, err)

	_, err = ExtractConfigData([]byte(`
dataFile: ./data.csv
jobs:
  - valueFields: [PASSENGERS]
`))
	assert.Error(t, err)

	_, err = ExtractConfigData([]byte("not: [valid"))
	assert.Error(t, err)
}
