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

package lexicon

import "strings"

// ClassifyNoun determines the category and grammatical number of a
// subject word. Lexicons are consulted in fixed priority order and the
// first match wins; words matching nothing fall back to the
// -s plural heuristic. The function is pure and total over any input.
func ClassifyNoun(word string) (NounCategory, Number) {
	w := strings.ToLower(word)

	if IndefinitePronouns.Contains(w) {
		return CategoryIndefinite, Singular
	}
	if p, ok := Pronouns[w]; ok {
		return CategoryPronoun, p.Number
	}
	if SingularPlurals.Contains(w) {
		return CategorySingularPlural, Singular
	}
	if CollectiveNouns.Contains(w) {
		return CategoryCollective, Singular
	}
	if UnitWords.Contains(w) {
		return CategoryUnit, Singular
	}
	if IrregularPlurals.Contains(w) {
		return CategoryRegular, Plural
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "'s") {
		return CategoryRegular, Plural
	}
	return CategoryRegular, Singular
}

// ClassifyVerb determines the grammatical number of a verb form.
// Contractions and irregular verbs come first; otherwise an -s ending
// marks singular except for the invariant forms was/is/has/does.
func ClassifyVerb(verb string) Number {
	v := strings.ToLower(verb)

	if n, ok := Contractions[v]; ok {
		return n
	}
	if iv, ok := IrregularVerbs[v]; ok {
		return iv.Number
	}
	if strings.HasSuffix(v, "s") && v != "was" && v != "is" && v != "has" && v != "does" {
		return Singular
	}
	return Plural
}
