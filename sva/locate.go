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
	"strings"

	"svan/sva/lexicon"
)

// nonVerbSuffixes rule out obvious non-verbs during the main-verb
// fallback search.
var nonVerbSuffixes = []string{"ly", "tion", "ness", "ment"}

func hasNonVerbSuffix(w string) bool {
	for _, suf := range nonVerbSuffixes {
		if strings.HasSuffix(w, suf) {
			return true
		}
	}
	return false
}

// FindSubject returns the head subject: the first content word after
// skipping determiners, possessives, auxiliaries and contractions.
// Falls back to the first word so that every non-empty clause yields
// a subject.
func FindSubject(words []Token) (Token, int) {
	for i, wt := range words {
		w := strings.ToLower(wt.Text)
		if lexicon.Determiners.Contains(w) || lexicon.Possessives.Contains(w) {
			continue
		}
		if lexicon.Auxiliaries.Contains(w) {
			continue
		}
		if _, ok := lexicon.Contractions[w]; ok {
			continue
		}
		return wt, i
	}
	return words[0], 0
}

// FindVerb locates the agreement-bearing verb. Contractions win over
// standalone auxiliaries, which win over the first plausible word
// after the subject (or after the compound-subject span); the last
// word serves as a deterministic fallback. The ordering reflects that
// auxiliaries, not main verbs, carry the number marking in sentences
// like "they don't run".
func FindVerb(words []Token, subjectIdx int, compound *CompoundInfo) (Token, int, bool) {
	for i, wt := range words {
		if _, ok := lexicon.Contractions[strings.ToLower(wt.Text)]; ok {
			return wt, i, true
		}
	}
	for i, wt := range words {
		if lexicon.Auxiliaries.Contains(strings.ToLower(wt.Text)) {
			return wt, i, true
		}
	}
	start := subjectIdx + 1
	if compound != nil {
		start = compound.secondIdx + 1
	}
	for i := start; i < len(words); i++ {
		w := strings.ToLower(words[i].Text)
		if lexicon.Coordinators.Contains(w) || lexicon.Determiners.Contains(w) {
			continue
		}
		if hasNonVerbSuffix(w) {
			continue
		}
		return words[i], i, false
	}
	if len(words) > subjectIdx {
		return words[len(words)-1], len(words) - 1, false
	}
	return Token{}, -1, false
}
