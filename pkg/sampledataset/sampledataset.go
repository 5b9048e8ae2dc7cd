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
	"fmt"
	"os"
	"strings"

	"github.com/pivotscan/pivotscan/pkg/record"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/bytebufferpool"
)

const flushEveryRecs = 1000

// generateCSVBody appends recs generated rows to bb as delimited lines.
// Generated values contain no delimiters, so no quoting is needed.
func generateCSVBody(recs int, gen Generator, bb *bytebufferpool.ByteBuffer) error {
	for i := 0; i < recs; i++ {
		row, err := gen.GetRow()
		if err != nil {
			return err
		}
		line, err := csvLine(row)
		if err != nil {
			return err
		}
		_, _ = bb.WriteString(line)
		_, _ = bb.WriteString("\n")
	}
	return nil
}

func csvLine(row record.Row) (string, error) {
	vals := make([]string, 0, len(SegmentFields))
	for _, field := range SegmentFields {
		fv, err := row.Get(field)
		if err != nil {
			return "", err
		}
		vals = append(vals, fv.Render())
	}
	return strings.Join(vals, ","), nil
}

// WriteDataset generates recs synthetic flight-segment rows and writes
// them as a CSV file with a header row.
func WriteDataset(path string, recs int, seed int64) error {
	gen := NewSegmentGenerator(seed)
	if err := gen.Init(); err != nil {
		log.Errorf("WriteDataset: failed to init generator, err: %v", err)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteDataset: %w: %v", record.ErrSinkUnavailable, err)
	}
	defer f.Close()

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	_, _ = bb.WriteString(strings.Join(SegmentFields, ","))
	_, _ = bb.WriteString("\n")

	remaining := recs
	for remaining > 0 {
		batch := remaining
		if batch > flushEveryRecs {
			batch = flushEveryRecs
		}
		if err := generateCSVBody(batch, gen, bb); err != nil {
			return err
		}
		if _, err := f.Write(bb.Bytes()); err != nil {
			return fmt.Errorf("WriteDataset: %w: %v", record.ErrSinkUnavailable, err)
		}
		bb.Reset()
		remaining -= batch
	}

	log.Infof("WriteDataset: wrote %d synthetic rows to %s", recs, path)
	return nil
}
