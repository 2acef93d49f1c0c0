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

// Package results defines the typed payloads workers produce for the
// API server.
package results

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"

	"svan/sva"
)

type ResultType string // @name ResultType

const (
	ResultTypeAnalysis         ResultType = "analysis"
	ResultTypeDocumentAnalysis ResultType = "documentAnalysis"
	ResultTypeError            ResultType = "error"
)

func (rt ResultType) String() string {
	return string(rt)
}

// ----------------

// FuncResult is a result of a worker job function.
type FuncResult interface {
	Err() error
	Type() ResultType
}

// ----------------

// Analysis wraps the outcome of analyzing a single sentence.
type Analysis struct {
	Result     *sva.AnalysisResult `json:"result"`
	Engine     string              `json:"engine"`
	ResultType ResultType          `json:"resultType"`
	Error      string              `json:"error,omitempty"`
}

func (res *Analysis) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *Analysis) Type() ResultType {
	return ResultTypeAnalysis
}

// ----------------

// DocumentAnalysis carries per-sentence results of a batch job in the
// order the sentences were submitted.
type DocumentAnalysis struct {
	Results    []*sva.AnalysisResult `json:"results"`
	Engine     string                `json:"engine"`
	ResultType ResultType            `json:"resultType"`
	Error      string                `json:"error,omitempty"`
}

func (res *DocumentAnalysis) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *DocumentAnalysis) Type() ResultType {
	return ResultTypeDocumentAnalysis
}

// ----------------

type ErrorResult struct {
	ResultType ResultType `json:"resultType"`
	Func       string     `json:"func"`
	Error      string     `json:"error"`
}

func (res ErrorResult) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res ErrorResult) Type() ResultType {
	return ResultTypeError
}

// ----------------

// JobLog describes one processed job for monitoring purposes. It
// round-trips through Redis, so the error is serialized as its bare
// message.
type JobLog struct {
	WorkerID string    `json:"workerId"`
	Func     string    `json:"func"`
	Begin    time.Time `json:"begin"`
	End      time.Time `json:"end"`
	Err      error     `json:"-"`
}

func (j JobLog) TimeSpent() time.Duration {
	return j.End.Sub(j.Begin)
}

func (j JobLog) MarshalJSON() ([]byte, error) {
	var errMsg string
	if j.Err != nil {
		errMsg = j.Err.Error()
	}
	return sonic.Marshal(struct {
		WorkerID string    `json:"workerId"`
		Func     string    `json:"func"`
		Begin    time.Time `json:"begin"`
		End      time.Time `json:"end"`
		Error    string    `json:"error,omitempty"`
	}{
		WorkerID: j.WorkerID,
		Func:     j.Func,
		Begin:    j.Begin,
		End:      j.End,
		Error:    errMsg,
	})
}

func (j *JobLog) UnmarshalJSON(data []byte) error {
	var tmp struct {
		WorkerID string    `json:"workerId"`
		Func     string    `json:"func"`
		Begin    time.Time `json:"begin"`
		End      time.Time `json:"end"`
		Error    string    `json:"error"`
	}
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	j.WorkerID = tmp.WorkerID
	j.Func = tmp.Func
	j.Begin = tmp.Begin
	j.End = tmp.End
	if tmp.Error != "" {
		j.Err = errors.New(tmp.Error)
	} else {
		j.Err = nil
	}
	return nil
}
