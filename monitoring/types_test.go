// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"svan/rdb/results"
)

func TestLoadFromRecords(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	records := []results.JobLog{
		{WorkerID: "w1", Func: "analyzeSentence", Begin: t0.Add(20 * time.Second), End: t0.Add(22 * time.Second)},
		{WorkerID: "w2", Func: "analyzeSentence", Begin: t0.Add(10 * time.Second), End: t0.Add(11 * time.Second), Err: errors.New("failed")},
		{WorkerID: "w1", Func: "analyzeDocument", Begin: t0, End: t0.Add(4 * time.Second)},
	}
	load := LoadFromRecords(records)
	assert.Equal(t, 2, len(load))
	assert.Equal(t, 2, load["w1"].NumJobs)
	assert.Equal(t, 0, load["w1"].NumErrors)
	assert.InDelta(t, 6.0, load["w1"].TotalTimeSecs, 0.001)
	assert.Equal(t, t0, load["w1"].FirstUpdate)
	assert.Equal(t, t0.Add(22*time.Second), load["w1"].LastUpdate)
	assert.Equal(t, 1, load["w2"].NumJobs)
	assert.Equal(t, 1, load["w2"].NumErrors)
}

func TestLoadFromRecordsEmpty(t *testing.T) {
	load := LoadFromRecords([]results.JobLog{})
	assert.Equal(t, 0, len(load))
	total := load.SumLoad()
	assert.Equal(t, 0, total.NumJobs)
	assert.Equal(t, float64(0), total.AvgLoad())
}

func TestSumLoad(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	records := []results.JobLog{
		{WorkerID: "w1", Begin: t0, End: t0.Add(2 * time.Second)},
		{WorkerID: "w2", Begin: t0.Add(5 * time.Second), End: t0.Add(9 * time.Second), Err: errors.New("failed")},
	}
	total := LoadFromRecords(records).SumLoad()
	assert.Equal(t, 2, total.NumJobs)
	assert.Equal(t, 1, total.NumErrors)
	assert.Equal(t, 2, total.NumWorkers)
	assert.InDelta(t, 6.0, total.TotalTimeSecs, 0.001)
	assert.Equal(t, t0, total.FirstUpdate)
	assert.Equal(t, t0.Add(9*time.Second), total.LastUpdate)
}
