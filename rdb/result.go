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

package rdb

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"svan/rdb/results"
)

// WorkerResult is the envelope a worker stores in Redis. The payload
// is kept as raw JSON so the server can decode it into the proper
// results type according to ResultType.
type WorkerResult struct {
	ID         string             `json:"id"`
	ResultType results.ResultType `json:"resultType"`
	Value      json.RawMessage    `json:"value"`
	ProcBegin  time.Time          `json:"procBegin"`
	ProcEnd    time.Time          `json:"procEnd"`
}

// AttachValue serializes a function result into the envelope.
func (wr *WorkerResult) AttachValue(value results.FuncResult) error {
	rawValue, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to attach value to WorkerResult: %w", err)
	}
	wr.ResultType = value.Type()
	wr.Value = rawValue
	return nil
}

func CreateWorkerResult(value results.FuncResult) (*WorkerResult, error) {
	ans := &WorkerResult{ID: uuid.New().String()}
	if err := ans.AttachValue(value); err != nil {
		return nil, err
	}
	return ans, nil
}
