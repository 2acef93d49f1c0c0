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

package handlers

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"svan/rdb"
	"svan/rdb/results"
)

// HandleWorkerError reports an error result produced by the worker
// infrastructure (panic, timeout, broken payload). It returns true if
// the caller may continue processing the result.
func HandleWorkerError(ctx *gin.Context, result *rdb.WorkerResult) bool {
	if result.ResultType != results.ResultTypeError {
		return true
	}
	var errResult results.ErrorResult
	if err := sonic.Unmarshal(result.Value, &errResult); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return false
	}
	uniresp.WriteJSONErrorResponse(
		ctx.Writer,
		uniresp.NewActionErrorFrom(errResult.Err()),
		http.StatusInternalServerError,
	)
	return false
}

// TypedOrRespondError decodes the raw worker payload into a concrete
// results type. On a decoding error it responds with HTTP 500.
func TypedOrRespondError[T any](ctx *gin.Context, w *rdb.WorkerResult) (*T, bool) {
	ans := new(T)
	if err := sonic.Unmarshal(w.Value, ans); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return nil, false
	}
	return ans, true
}
