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

package worker

import (
	"fmt"

	"svan/rdb"
	"svan/rdb/results"
	"svan/sva"
)

func (w *Worker) analyzeSentence(args rdb.AnalysisArgs) *results.Analysis {
	eng, ok := sva.GetEngine(args.Engine)
	if !ok {
		return &results.Analysis{
			ResultType: results.ResultTypeAnalysis,
			Error:      fmt.Sprintf("unknown analysis engine: %s", args.Engine),
		}
	}
	return &results.Analysis{
		Result:     eng.Analyze(args.Sentence),
		Engine:     eng.Name(),
		ResultType: results.ResultTypeAnalysis,
	}
}

func (w *Worker) analyzeDocument(args rdb.DocumentArgs) *results.DocumentAnalysis {
	eng, ok := sva.GetEngine(args.Engine)
	if !ok {
		return &results.DocumentAnalysis{
			ResultType: results.ResultTypeDocumentAnalysis,
			Error:      fmt.Sprintf("unknown analysis engine: %s", args.Engine),
		}
	}
	ans := make([]*sva.AnalysisResult, len(args.Sentences))
	for i, sent := range args.Sentences {
		ans[i] = eng.Analyze(sent)
	}
	return &results.DocumentAnalysis{
		Results:    ans,
		Engine:     eng.Name(),
		ResultType: results.ResultTypeDocumentAnalysis,
	}
}
