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
	"context"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"

	"svan/rdb/results"
)

const (
	recentRecordsCap   = 500
	summaryInterval    = 5 * time.Minute
	summaryLookbackMax = time.Hour
)

// WorkerJobLogger collects finished job records on the worker side.
// Each record is passed to the configured StatusWriter and kept in a
// bounded in-memory buffer used for periodic load summaries.
type WorkerJobLogger struct {
	recent *collections.CircularList[results.JobLog]
	writer StatusWriter
	lock   sync.RWMutex
	ticker *time.Ticker
}

func (w *WorkerJobLogger) Log(rec results.JobLog) {
	w.lock.Lock()
	w.recent.Append(rec)
	w.lock.Unlock()
	w.writer.Write(rec)
}

func (w *WorkerJobLogger) recentLoad() WorkerLoad {
	w.lock.RLock()
	defer w.lock.RUnlock()
	limit := time.Now().Add(-summaryLookbackMax)
	var recs []results.JobLog
	w.recent.ForEach(func(i int, item results.JobLog) bool {
		if item.End.After(limit) {
			recs = append(recs, item)
		}
		return true
	})
	return LoadFromRecords(recs).SumLoad()
}

func (w *WorkerJobLogger) Start(ctx context.Context) {
	w.ticker = time.NewTicker(summaryInterval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.ticker.C:
				load := w.recentLoad()
				log.Info().
					Int("numJobs", load.NumJobs).
					Int("numErrors", load.NumErrors).
					Float64("totalTimeSecs", load.TotalTimeSecs).
					Float64("avgLoad", load.AvgLoad()).
					Msg("worker load for the recent period")
			}
		}
	}()
}

func (w *WorkerJobLogger) Stop(ctx context.Context) error {
	log.Warn().Msg("stopping worker job logger")
	if w.ticker != nil {
		w.ticker.Stop()
	}
	return nil
}

func NewWorkerJobLogger(writer StatusWriter) *WorkerJobLogger {
	return &WorkerJobLogger{
		recent: collections.NewCircularList[results.JobLog](recentRecordsCap),
		writer: writer,
	}
}
