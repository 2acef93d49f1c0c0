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
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"svan/sva"
)

type enginesResponse struct {
	Engines []string `json:"engines"`
	Default string   `json:"default"`
} // @name EnginesResponse

// @Summary      Engines
// @Description  List available analysis engines along with the configured default one.
// @Produce      json
// @Success      200 {object} enginesResponse
// @Router       /engines [get]
func (a *Actions) Engines(ctx *gin.Context) {
	uniresp.WriteJSONResponse(
		ctx.Writer,
		enginesResponse{
			Engines: sva.EngineNames(),
			Default: a.conf.Analysis.DefaultEngine,
		},
	)
}
