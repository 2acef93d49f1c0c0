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

// coordPrecedesClause tells whether the word before a coordinator
// looks like a verb, which signals a compound sentence ("she sings
// and he dances") rather than a compound subject.
func coordPrecedesClause(word string) bool {
	w := strings.ToLower(word)
	if lexicon.Auxiliaries.Contains(w) {
		return true
	}
	if _, ok := lexicon.Contractions[w]; ok {
		return true
	}
	if _, ok := lexicon.IrregularVerbs[w]; ok {
		return true
	}
	if _, ok := lexicon.Pronouns[w]; ok {
		return false
	}
	if len(w) > 3 &&
		(strings.HasSuffix(w, "s") || strings.HasSuffix(w, "ed") || strings.HasSuffix(w, "ing")) {
		return true
	}
	return false
}

// DetectCompoundSubject scans the word tokens for the first
// coordinator (and/or/nor) flanked by content words and returns the
// agreement number the pair imposes: "and" makes the pair plural
// unconditionally, "or"/"nor" defer to the nearer (second) subject.
// Candidates which actually join two clauses are rejected. Returns
// nil if no compound subject is found.
func DetectCompoundSubject(words []Token) *CompoundInfo {
	for i, wt := range words {
		w := strings.ToLower(wt.Text)
		if !lexicon.Coordinators.Contains(w) || i == 0 || i >= len(words)-1 {
			continue
		}
		before := words[i-1].Text
		if coordPrecedesClause(before) {
			continue
		}
		afterIdx := i + 1
		for afterIdx < len(words) && lexicon.Determiners.Contains(strings.ToLower(words[afterIdx].Text)) {
			afterIdx++
		}
		if afterIdx >= len(words) {
			continue
		}
		after := words[afterIdx].Text
		if _, isPron := lexicon.Pronouns[strings.ToLower(after)]; isPron &&
			afterIdx+1 < len(words) && verbLike(words[afterIdx+1].Text) {
			// "... and he dances" - a new clause, not a second subject
			continue
		}

		if w == "and" {
			return &CompoundInfo{
				Coordinator: "and",
				Subjects:    [2]string{before, after},
				Number:      lexicon.Plural,
				secondIdx:   afterIdx,
			}
		}
		_, nearest := lexicon.ClassifyNoun(after)
		return &CompoundInfo{
			Coordinator: w,
			Subjects:    [2]string{before, after},
			Number:      nearest,
			secondIdx:   afterIdx,
		}
	}
	return nil
}

// Display renders the compound subject the way it appears in
// messages and the parse tree.
func (c *CompoundInfo) Display() string {
	return c.Subjects[0] + " " + c.Coordinator + " " + c.Subjects[1]
}
