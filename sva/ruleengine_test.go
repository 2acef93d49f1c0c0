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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleEngineOK(t *testing.T) {
	var eng RuleEngine
	res := eng.Analyze("The cat runs.")
	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "Subject-verb agreement is correct.", res.Message)
	assert.Empty(t, res.Derivation)
	assert.Nil(t, res.CSGAnalysis)
}

func TestRuleEngineMismatch(t *testing.T) {
	var eng RuleEngine
	res := eng.Analyze("The cats runs.")
	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, "The cats run.", res.SuggestedCorrection)
	assert.Equal(t, 1, len(res.ProblemSpans))
	assert.Equal(t, "cats", res.ProblemSpans[0].Text)
}

func TestRuleEngineAuxiliaryNote(t *testing.T) {
	var eng RuleEngine
	res := eng.Analyze("They doesn't run.")
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Message, "(auxiliary)")
	assert.Equal(t, "They don't run.", res.SuggestedCorrection)
}

func TestRuleEngineAuxiliaryOK(t *testing.T) {
	var eng RuleEngine
	res := eng.Analyze("He doesn't run.")
	assert.Equal(t, StatusOK, res.Status)
}

func TestRuleEngineImperativeGuard(t *testing.T) {
	// a sentence-initial ambiguous verb is not taken for the subject
	var eng RuleEngine
	res := eng.Analyze("Run cats runs.")
	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, "cats", res.ProblemSpans[0].Text)
	assert.Equal(t, "Run cats run.", res.SuggestedCorrection)
}

func TestRuleEngineParseTreeWithDeterminer(t *testing.T) {
	var eng RuleEngine
	res := eng.Analyze("The cat runs.")
	assert.Equal(t, "S", res.ParseTree.Label)
	np := res.ParseTree.Children[0]
	assert.Equal(t, "NP (singular)", np.Label)
	assert.Equal(t, "DET", np.Children[0].Label)
	assert.Equal(t, "The", np.Children[0].Text)
	assert.Equal(t, "N", np.Children[1].Label)
	assert.Equal(t, "cat", np.Children[1].Text)
}

func TestRuleEngineNoClauseSplitting(t *testing.T) {
	// the rule engine checks one subject/verb pair per sentence
	var eng RuleEngine
	res := eng.Analyze("The cat runs and the dog barks.")
	assert.False(t, res.IsCompound)
	assert.Empty(t, res.ClauseAnalyses)
}

func TestRuleEngineCompoundSubject(t *testing.T) {
	var eng RuleEngine
	res := eng.Analyze("Mark and Anna plays guitar.")
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Message, "Mark and Anna")
}

func TestRuleEngineEmptyInput(t *testing.T) {
	var eng RuleEngine
	res := eng.Analyze("   ")
	assert.Equal(t, StatusError, res.Status)
}

func TestEngineRegistry(t *testing.T) {
	eng, ok := GetEngine("csg")
	assert.True(t, ok)
	assert.Equal(t, "csg", eng.Name())

	eng, ok = GetEngine("rule")
	assert.True(t, ok)
	assert.Equal(t, "rule", eng.Name())

	eng, ok = GetEngine("")
	assert.True(t, ok)
	assert.Equal(t, DefaultEngine, eng.Name())

	_, ok = GetEngine("unknown")
	assert.False(t, ok)

	assert.Equal(t, []string{"csg", "rule"}, EngineNames())
}
