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
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"svan/rdb"
	"svan/rdb/results"
	"svan/serror"
	"svan/sva"
)

type analysisRequest struct {
	Sentence string `json:"sentence"`
	Engine   string `json:"engine"`
} // @name AnalysisRequest

type batchAnalysisRequest struct {
	Sentences []string `json:"sentences"`
	Engine    string   `json:"engine"`
} // @name BatchAnalysisRequest

// resolveEngine validates the requested engine name, falling back to
// the configured default for an empty one.
func (a *Actions) resolveEngine(ctx *gin.Context, name string) (string, bool) {
	if name == "" {
		name = a.conf.Analysis.DefaultEngine
	}
	if _, ok := sva.GetEngine(name); !ok {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("unknown analysis engine: %s", name),
			http.StatusUnprocessableEntity,
		)
		return "", false
	}
	return name, true
}

// @Summary      AnalyzeSentence
// @Description  Analyze subject-verb agreement in a single sentence and suggest a correction if needed.
// @Accept       json
// @Produce      json
// @Param        request body analysisRequest true "A sentence and an optional engine name"
// @Success      200 {object} results.Analysis
// @Router       /analyze [post]
func (a *Actions) AnalyzeSentence(ctx *gin.Context) {
	var req analysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Sentence) == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			serror.InputError{Msg: "missing `sentence` value"},
			http.StatusBadRequest,
		)
		return
	}
	engine, ok := a.resolveEngine(ctx, req.Engine)
	if !ok {
		return
	}
	args, err := sonic.Marshal(rdb.AnalysisArgs{
		Sentence: req.Sentence,
		Engine:   engine,
	})
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	wait, err := a.radapter.CacheResult(
		a.radapter.PublishQuery,
		rdb.Query{
			Func: rdb.FuncAnalyzeSentence,
			Args: args,
		},
	)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return
	}
	result, ok := TypedOrRespondError[results.Analysis](ctx, rawResult)
	if !ok {
		return
	}
	if err := result.Err(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// @Summary      AnalyzeDocument
// @Description  Analyze subject-verb agreement in a batch of sentences. Results are returned in the order the sentences were submitted.
// @Accept       json
// @Produce      json
// @Param        request body batchAnalysisRequest true "A list of sentences and an optional engine name"
// @Success      200 {object} results.DocumentAnalysis
// @Router       /analyze-batch [post]
func (a *Actions) AnalyzeDocument(ctx *gin.Context) {
	var req batchAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if len(req.Sentences) == 0 {
		uniresp.RespondWithErrorJSON(
			ctx,
			serror.InputError{Msg: "missing `sentences` value"},
			http.StatusBadRequest,
		)
		return
	}
	if len(req.Sentences) > a.conf.Analysis.MaxBatchSize {
		uniresp.RespondWithErrorJSON(
			ctx,
			serror.InputError{Msg: fmt.Sprintf(
				"too many sentences, maximum batch size is %d",
				a.conf.Analysis.MaxBatchSize,
			)},
			http.StatusBadRequest,
		)
		return
	}
	engine, ok := a.resolveEngine(ctx, req.Engine)
	if !ok {
		return
	}
	args, err := sonic.Marshal(rdb.DocumentArgs{
		Sentences: req.Sentences,
		Engine:    engine,
	})
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	wait, err := a.radapter.CacheResult(
		a.radapter.PublishQuery,
		rdb.Query{
			Func: rdb.FuncAnalyzeDocument,
			Args: args,
		},
	)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	if ok := HandleWorkerError(ctx, rawResult); !ok {
		return
	}
	result, ok := TypedOrRespondError[results.DocumentAnalysis](ctx, rawResult)
	if !ok {
		return
	}
	if err := result.Err(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}
