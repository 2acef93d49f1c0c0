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
	"unicode"

	"svan/sva/lexicon"
)

// Clause is one independent clause of a compound sentence. Text spans
// the clause's word tokens within the original sentence; Start is the
// byte offset of the first word token.
type Clause struct {
	Text  string
	Words []Token
	Start int
}

// verbLike is the clause splitter's heuristic verb test: known
// auxiliaries, contractions and irregular verbs qualify, as does any
// word whose inflection strips down to a common verb base, or which
// bears a verb-like suffix without being a determiner or pronoun.
func verbLike(word string) bool {
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
	if lexicon.CommonBaseVerbs.Contains(w) {
		return true
	}
	for _, base := range inflectionBases(w) {
		if lexicon.CommonBaseVerbs.Contains(base) {
			return true
		}
	}
	if lexicon.Determiners.Contains(w) || lexicon.Possessives.Contains(w) {
		return false
	}
	if _, ok := lexicon.Pronouns[w]; ok {
		return false
	}
	return strings.HasSuffix(w, "s") || strings.HasSuffix(w, "ed") || strings.HasSuffix(w, "ing")
}

// inflectionBases lists candidate base forms obtained by stripping
// common verb endings (walks -> walk, carried/carries -> carry,
// running -> run is out of scope - doubling is not undone).
func inflectionBases(w string) []string {
	var ans []string
	if strings.HasSuffix(w, "ies") && len(w) > 3 {
		ans = append(ans, w[:len(w)-3]+"y")
	}
	if strings.HasSuffix(w, "ing") && len(w) > 3 {
		ans = append(ans, w[:len(w)-3])
	}
	if strings.HasSuffix(w, "ed") && len(w) > 2 {
		ans = append(ans, w[:len(w)-2], w[:len(w)-1])
	}
	if strings.HasSuffix(w, "es") && len(w) > 2 {
		ans = append(ans, w[:len(w)-2])
	}
	if strings.HasSuffix(w, "s") && len(w) > 1 {
		ans = append(ans, w[:len(w)-1])
	}
	return ans
}

// subjectLike tells whether a word can plausibly open a new clause:
// pronouns, determiners, capitalized words and anything that does not
// look like a verb.
func subjectLike(word string) bool {
	w := strings.ToLower(word)
	if _, ok := lexicon.Pronouns[w]; ok {
		return true
	}
	if lexicon.Determiners.Contains(w) || lexicon.Possessives.Contains(w) {
		return true
	}
	for _, r := range word {
		if unicode.IsUpper(r) {
			return true
		}
		break
	}
	return !verbLike(word)
}

// startsNewClause checks the up-to-three word window after the
// coordinator at index i: the immediate next word must look like a
// clause subject and some word after it within the window must look
// like a verb.
func startsNewClause(words []Token, i int) bool {
	if i+1 >= len(words) {
		return false
	}
	if !subjectLike(words[i+1].Text) {
		return false
	}
	for j := i + 2; j <= i+3 && j < len(words); j++ {
		if verbLike(words[j].Text) {
			return true
		}
	}
	return false
}

// SplitClauses decomposes a compound sentence into independent
// clauses at clause-level coordinator boundaries. A coordinator only
// splits once a verb has been seen in the current clause and the
// lookahead confirms a subject+verb follows; the coordinator itself
// belongs to neither clause and is returned separately in order, for
// reconstructing corrected output. A sentence yielding fewer than two
// clauses is returned as a single clause.
func SplitClauses(sentence string, words []Token) ([]Clause, []string) {
	var clauses []Clause
	var coordinators []string
	var current []Token
	verbSeen := false

	for i, wt := range words {
		w := strings.ToLower(wt.Text)
		if lexicon.ClauseCoordinators.Contains(w) &&
			verbSeen && len(current) > 1 && startsNewClause(words, i) {
			clauses = append(clauses, makeClause(sentence, current))
			coordinators = append(coordinators, wt.Text)
			current = nil
			verbSeen = false
			continue
		}
		current = append(current, wt)
		if verbLike(wt.Text) {
			verbSeen = true
		}
	}
	if len(current) > 0 {
		clauses = append(clauses, makeClause(sentence, current))
	}
	if len(clauses) < 2 {
		return []Clause{{Text: sentence, Words: words, Start: 0}}, nil
	}
	return clauses, coordinators
}

func makeClause(sentence string, words []Token) Clause {
	return Clause{
		Text:  sentence[words[0].Start:words[len(words)-1].End],
		Words: words,
		Start: words[0].Start,
	}
}
