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

// Rule is a context-sensitive production. All agreement rules share
// one shape: a verb phrase whose left context is a noun phrase with
// the required feature sequence gets the propagated number inserted
// in front of it (the string intentionally grows - the inserted symbol
// carries the number the subject imposes).
//
// NPFeatures is matched against the NP feature list positionally;
// "*" matches any single feature.
type Rule struct {
	ID          string
	RuleNum     int
	Description string
	NPFeatures  []string
	Propagates  string
}

// Matches reports whether the rule applies at position pos of ts,
// i.e. whether ts[pos] is a VP directly preceded by an NP with the
// rule's feature signature.
func (r Rule) Matches(ts TaggedString, pos int) bool {
	if pos < 1 || pos >= len(ts) || ts[pos].Class != ClassVP {
		return false
	}
	np := ts[pos-1]
	if np.Class != ClassNP || len(np.Features) != len(r.NPFeatures) {
		return false
	}
	for i, f := range r.NPFeatures {
		if f != "*" && np.Features[i] != f {
			return false
		}
	}
	return true
}

// Apply rewrites ts at pos, inserting the propagated verb phrase.
func (r Rule) Apply(ts TaggedString, pos int) TaggedString {
	return ts.insertAt(pos, NewSymbol(ClassVP, r.Propagates))
}

// Production renders the rule in αAβ → αγβ notation for the trace.
func (r Rule) Production() string {
	np := NewSymbol(ClassNP, r.NPFeatures...).String()
	vp := NewSymbol(ClassVP, r.Propagates).String()
	return np + " VP[...] → " + np + " " + vp + " VP[...]"
}

// ProductionRules is the fixed, ordered rule table. Matching scans
// rules in table order; the first one applicable anywhere wins.
var ProductionRules = []Rule{
	{
		ID:          "R1.1",
		RuleNum:     1,
		Description: "Singular subject requires singular verb",
		NPFeatures:  []string{"singular"},
		Propagates:  "singular",
	},
	{
		ID:          "R1.2",
		RuleNum:     1,
		Description: "Plural subject requires plural verb",
		NPFeatures:  []string{"plural"},
		Propagates:  "plural",
	},
	{
		ID:          "R2.1",
		RuleNum:     2,
		Description: "Pronoun 'I' takes plural verb form",
		NPFeatures:  []string{"i"},
		Propagates:  "plural",
	},
	{
		ID:          "R2.2",
		RuleNum:     2,
		Description: "Pronoun 'you' takes plural verb form",
		NPFeatures:  []string{"you"},
		Propagates:  "plural",
	},
	{
		ID:          "R3",
		RuleNum:     3,
		Description: "Subjects joined by 'and' require plural verb",
		NPFeatures:  []string{"compound", "and", "*"},
		Propagates:  "plural",
	},
	{
		ID:          "R4.1",
		RuleNum:     4,
		Description: "With 'or', verb agrees with nearest (singular) subject",
		NPFeatures:  []string{"compound", "or", "singular"},
		Propagates:  "singular",
	},
	{
		ID:          "R4.2",
		RuleNum:     4,
		Description: "With 'or', verb agrees with nearest (plural) subject",
		NPFeatures:  []string{"compound", "or", "plural"},
		Propagates:  "plural",
	},
	{
		ID:          "R4.3",
		RuleNum:     4,
		Description: "With 'nor', verb agrees with nearest (singular) subject",
		NPFeatures:  []string{"compound", "nor", "singular"},
		Propagates:  "singular",
	},
	{
		ID:          "R4.4",
		RuleNum:     4,
		Description: "With 'nor', verb agrees with nearest (plural) subject",
		NPFeatures:  []string{"compound", "nor", "plural"},
		Propagates:  "plural",
	},
	{
		ID:          "R5",
		RuleNum:     5,
		Description: "Indefinite pronouns (everyone, somebody, each) take singular verbs",
		NPFeatures:  []string{"indefinite"},
		Propagates:  "singular",
	},
	{
		ID:          "R6",
		RuleNum:     6,
		Description: "Collective nouns (team, group, class) take singular verbs",
		NPFeatures:  []string{"collective"},
		Propagates:  "singular",
	},
	{
		ID:          "R8",
		RuleNum:     8,
		Description: "Amounts, time, and money expressions take singular verbs",
		NPFeatures:  []string{"unit"},
		Propagates:  "singular",
	},
	{
		ID:          "R9",
		RuleNum:     9,
		Description: "Titles, countries, and special subjects (mathematics, Philippines) take singular verbs",
		NPFeatures:  []string{"singular_plural"},
		Propagates:  "singular",
	},
}
