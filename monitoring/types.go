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
	"time"

	"github.com/bytedance/sonic"

	"svan/rdb/results"
)

// WorkerLoad aggregates job statistics over one worker or a group of
// workers.
type WorkerLoad struct {
	NumJobs       int
	TotalTimeSecs float64
	NumErrors     int
	FirstUpdate   time.Time
	LastUpdate    time.Time
	NumWorkers    int
}

// TotalSpan returns time span covered by the load info
func (wl WorkerLoad) TotalSpan() time.Duration {
	return wl.LastUpdate.Sub(wl.FirstUpdate)
}

func (wl WorkerLoad) AvgLoad() float64 {
	if wl.TotalTimeSecs == 0 || wl.NumWorkers == 0 {
		return 0
	}
	span := wl.TotalSpan().Seconds()
	if span == 0 {
		return 0
	}
	return wl.TotalTimeSecs / span / float64(wl.NumWorkers)
}

func (wl WorkerLoad) MarshalJSON() ([]byte, error) {
	var t0, t1 *time.Time
	if !wl.FirstUpdate.IsZero() {
		t0 = &wl.FirstUpdate
	}
	if !wl.LastUpdate.IsZero() {
		t1 = &wl.LastUpdate
	}
	return sonic.Marshal(
		struct {
			NumJobs       int        `json:"numJobs"`
			TotalTimeSecs float64    `json:"totalTimeSecs"`
			NumErrors     int        `json:"numErrors"`
			FirstUpdate   *time.Time `json:"firstUpdate,omitempty"`
			LastUpdate    *time.Time `json:"lastUpdate,omitempty"`
			AvgLoad       float64    `json:"avgLoad"`
		}{
			NumJobs:       wl.NumJobs,
			TotalTimeSecs: wl.TotalTimeSecs,
			NumErrors:     wl.NumErrors,
			FirstUpdate:   t0,
			LastUpdate:    t1,
			AvgLoad:       wl.AvgLoad(),
		},
	)
}

// WorkersLoad maps worker IDs to their load stats.
type WorkersLoad map[string]WorkerLoad

// LoadFromRecords aggregates job log records into per-worker load
// stats. Records are expected most recent first (the order Redis
// returns them in).
func LoadFromRecords(records []results.JobLog) WorkersLoad {
	ans := make(WorkersLoad)
	for _, rec := range records {
		entry, ok := ans[rec.WorkerID]
		if !ok {
			entry.NumWorkers = 1
			entry.FirstUpdate = rec.Begin
			entry.LastUpdate = rec.End
		}
		if rec.Begin.Before(entry.FirstUpdate) {
			entry.FirstUpdate = rec.Begin
		}
		if rec.End.After(entry.LastUpdate) {
			entry.LastUpdate = rec.End
		}
		entry.NumJobs++
		if rec.Err != nil {
			entry.NumErrors++
		}
		entry.TotalTimeSecs += rec.TimeSpent().Seconds()
		ans[rec.WorkerID] = entry
	}
	return ans
}

// SumLoad merges all per-worker entries into one aggregate.
func (wsl WorkersLoad) SumLoad() WorkerLoad {
	var ans WorkerLoad
	for _, v := range wsl {
		if ans.NumWorkers == 0 {
			ans.FirstUpdate = v.FirstUpdate
			ans.LastUpdate = v.LastUpdate
		}
		if v.FirstUpdate.Before(ans.FirstUpdate) {
			ans.FirstUpdate = v.FirstUpdate
		}
		if v.LastUpdate.After(ans.LastUpdate) {
			ans.LastUpdate = v.LastUpdate
		}
		ans.NumJobs += v.NumJobs
		ans.NumErrors += v.NumErrors
		ans.TotalTimeSecs += v.TotalTimeSecs
		ans.NumWorkers++
	}
	return ans
}
