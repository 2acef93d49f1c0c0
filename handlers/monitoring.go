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

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"svan/monitoring"
	"svan/rdb/results"
)

type workersStatusResponse struct {
	Load       monitoring.WorkersLoad `json:"load"`
	Total      monitoring.WorkerLoad  `json:"total"`
	RecentJobs []results.JobLog       `json:"recentJobs"`
} // @name WorkersStatusResponse

// @Summary      WorkersStatus
// @Description  Report recent jobs and per-worker load aggregated from the shared job log.
// @Produce      json
// @Success      200 {object} workersStatusResponse
// @Router       /monitoring/workers [get]
func (a *Actions) WorkersStatus(ctx *gin.Context) {
	records, err := a.radapter.RecentJobLogs()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	load := monitoring.LoadFromRecords(records)
	uniresp.WriteJSONResponse(
		ctx.Writer,
		workersStatusResponse{
			Load:       load,
			Total:      load.SumLoad(),
			RecentJobs: records,
		},
	)
}
