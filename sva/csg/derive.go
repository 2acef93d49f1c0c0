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

package csg

// Step records one entry of a derivation trace. Step 0 is always the
// initial string and carries no rule.
type Step struct {
	Step            int    `json:"step"`
	String          string `json:"string"`
	Rule            string `json:"rule,omitempty"`
	Description     string `json:"description,omitempty"`
	RuleDescription string `json:"ruleDescription,omitempty"`
	SVARule         int    `json:"svaRule,omitempty"`
	Production      string `json:"production,omitempty"`
}

// Derive runs one rewrite over the tagged string: rules are tried in
// table order and the first one matching at any position is applied
// exactly once. The engine does not iterate to a fixed point; the
// downstream agreement verdict rests on direct number comparison and
// the trace exists to explain it.
func Derive(initial TaggedString) ([]Step, TaggedString) {
	steps := []Step{{
		Step:        0,
		String:      initial.String(),
		Description: "Initial parse string",
	}}
	current := initial
	for _, rule := range ProductionRules {
		for pos := 0; pos < len(current); pos++ {
			if !rule.Matches(current, pos) {
				continue
			}
			current = rule.Apply(current, pos)
			steps = append(steps, Step{
				Step:            1,
				String:          current.String(),
				Rule:            rule.ID,
				RuleDescription: rule.Description,
				SVARule:         rule.RuleNum,
				Production:      rule.Production(),
			})
			return steps, current
		}
	}
	return steps, current
}

// RulesApplied counts the trace steps produced by a rule application.
func RulesApplied(steps []Step) int {
	var n int
	for _, s := range steps {
		if s.Rule != "" {
			n++
		}
	}
	return n
}
