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
	"github.com/brianvoe/gofakeit/v6"
	"github.com/pivotscan/pivotscan/pkg/record"
)

// SegmentFields is the header of the generated dataset, modeled on the
// BTS T-100 segment table.
var SegmentFields = []string{
	"CARRIER", "ORIGIN", "DEST", "REGION", "DEST_COUNTRY",
	"PASSENGERS", "SEATS", "DEPARTURES_PERFORMED", "DISTANCE",
}

type Generator interface {
	Init() error
	GetRow() (record.Row, error)
}

type airport struct {
	code    string
	country string
	region  string
}

var carriers = []string{"UA", "AA", "DL", "WN", "AS", "B6", "F9", "NK", "HA"}

var origins = []string{"JFK", "LAX", "ORD", "MIA", "ATL", "DEN", "SEA", "DFW", "SFO", "BOS"}

var dests = []airport{
	{"JFK", "US", "D"},
	{"LAX", "US", "D"},
	{"ORD", "US", "D"},
	{"MIA", "US", "D"},
	{"ATL", "US", "D"},
	{"DEN", "US", "D"},
	{"LHR", "GB", "A"},
	{"CDG", "FR", "A"},
	{"FRA", "DE", "A"},
	{"NRT", "JP", "P"},
	{"ICN", "KR", "P"},
	{"SYD", "AU", "P"},
	{"MEX", "MX", "L"},
	{"GRU", "BR", "L"},
	{"BOG", "CO", "L"},
}

// SegmentGenerator produces synthetic flight-segment rows. The same
// seed yields the same sequence of rows.
type SegmentGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

func NewSegmentGenerator(seed int64) *SegmentGenerator {
	return &SegmentGenerator{seed: seed}
}

func (g *SegmentGenerator) Init() error {
	g.faker = gofakeit.NewUnlocked(g.seed)
	return nil
}

func (g *SegmentGenerator) GetRow() (record.Row, error) {
	f := g.faker
	dest := dests[f.Number(0, len(dests)-1)]
	seats := f.Number(50, 400)
	passengers := f.Number(0, seats)

	return record.Row{
		"CARRIER":              record.StringValue(carriers[f.Number(0, len(carriers)-1)]),
		"ORIGIN":               record.StringValue(origins[f.Number(0, len(origins)-1)]),
		"DEST":                 record.StringValue(dest.code),
		"REGION":               record.StringValue(dest.region),
		"DEST_COUNTRY":         record.StringValue(dest.country),
		"PASSENGERS":           record.FloatValue(float64(passengers)),
		"SEATS":                record.FloatValue(float64(seats)),
		"DEPARTURES_PERFORMED": record.FloatValue(float64(f.Number(1, 30))),
		"DISTANCE":             record.FloatValue(float64(f.Number(100, 9000))),
	}, nil
}

// GetRows drains rows from the generator into a slice, for the
// in-memory pivot path and for tests.
func GetRows(gen Generator, recs int) ([]record.Row, error) {
	rows := make([]record.Row, 0, recs)
	for i := 0; i < recs; i++ {
		row, err := gen.GetRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
