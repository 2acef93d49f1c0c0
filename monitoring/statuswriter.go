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
	"github.com/rs/zerolog/log"

	"svan/rdb"
	"svan/rdb/results"
)

// StatusWriter stores finished job records so the API side can report
// worker load.
type StatusWriter interface {
	Write(rec results.JobLog)
}

// NullWriter is used when no job log storage is configured.
type NullWriter struct{}

func (w *NullWriter) Write(rec results.JobLog) {}

// RedisWriter keeps a capped list of recent job records in Redis.
type RedisWriter struct {
	radapter *rdb.Adapter
}

func (w *RedisWriter) Write(rec results.JobLog) {
	if err := w.radapter.PushJobLog(rec); err != nil {
		log.Error().Err(err).Msg("failed to store job log record")
	}
}

func NewRedisWriter(radapter *rdb.Adapter) *RedisWriter {
	return &RedisWriter{radapter: radapter}
}
