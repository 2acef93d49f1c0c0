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

package sva

import "sort"

// Engine is a strategy for analyzing one sentence. Implementations
// must be stateless and safe for concurrent use.
type Engine interface {
	Name() string
	Analyze(sentence string) *AnalysisResult
}

// DefaultEngine is used when the caller does not select one.
const DefaultEngine = "csg"

var engines = map[string]Engine{
	"csg":  &CSGEngine{},
	"rule": &RuleEngine{},
}

// GetEngine looks up an analysis engine by name.
func GetEngine(name string) (Engine, bool) {
	if name == "" {
		name = DefaultEngine
	}
	eng, ok := engines[name]
	return eng, ok
}

// EngineNames lists the available engine names in stable order.
func EngineNames() []string {
	ans := make([]string, 0, len(engines))
	for name := range engines {
		ans = append(ans, name)
	}
	sort.Strings(ans)
	return ans
}
