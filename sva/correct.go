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

func correctContraction(v string, target lexicon.Number) string {
	if target == lexicon.Singular {
		switch {
		case strings.Contains(v, "do"):
			return "doesn't"
		case strings.Contains(v, "is"), strings.Contains(v, "are"):
			return "isn't"
		case strings.Contains(v, "was"), strings.Contains(v, "were"):
			return "wasn't"
		case strings.Contains(v, "has"), strings.Contains(v, "have"):
			return "hasn't"
		}
		return v
	}
	switch {
	case strings.Contains(v, "do"):
		return "don't"
	case strings.Contains(v, "is"), strings.Contains(v, "are"):
		return "aren't"
	case strings.Contains(v, "was"), strings.Contains(v, "were"):
		return "weren't"
	case strings.Contains(v, "has"), strings.Contains(v, "have"):
		return "haven't"
	}
	return v
}

func endsWithAny(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func isConsonant(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return b >= 'a' && b <= 'z'
}

func singularize(verb, v string) string {
	// single trailing s means the form is already inflected; bases
	// like "pass" end in ss and still take -es
	if strings.HasSuffix(v, "s") && !strings.HasSuffix(v, "ss") {
		return verb
	}
	switch {
	case endsWithAny(v, "s", "sh", "ch", "x", "z"):
		return verb + "es"
	case strings.HasSuffix(v, "o") && !endsWithAny(v, "oo", "eo", "io"):
		return verb + "es"
	case strings.HasSuffix(v, "y") && len(v) > 1 && isConsonant(v[len(v)-2]):
		return verb[:len(verb)-1] + "ies"
	}
	return verb + "s"
}

func pluralize(verb, v string) string {
	switch {
	case strings.HasSuffix(v, "ies") && len(v) > 3:
		return verb[:len(verb)-3] + "y"
	case strings.HasSuffix(v, "es") && len(v) > 2 && endsWithAny(v[:len(v)-2], "s", "sh", "ch", "x", "z", "o"):
		if strings.HasSuffix(v[:len(v)-2], "s") {
			// ss bases ("passes", "kisses") keep one e, otherwise the
			// stripped form would classify as singular again
			return verb[:len(verb)-1]
		}
		return verb[:len(verb)-2]
	case strings.HasSuffix(v, "s"):
		if v == "is" || v == "has" || v == "does" || v == "was" {
			// invariant forms; corrected via the irregular table only
			return verb
		}
		return verb[:len(verb)-1]
	}
	return verb
}

// CorrectVerb produces the form of verb agreeing with the target
// number. Contractions map to their sibling contraction, irregular
// verbs to their paired form; regular verbs get the -s/-es/-ies
// inflection attached or stripped.
func CorrectVerb(verb string, target lexicon.Number) string {
	v := strings.ToLower(verb)

	if _, ok := lexicon.Contractions[v]; ok {
		return correctContraction(v, target)
	}
	if iv, ok := lexicon.IrregularVerbs[v]; ok {
		if iv.Number != target {
			return iv.Counterpart
		}
		return verb
	}
	if target == lexicon.Singular {
		return singularize(verb, v)
	}
	return pluralize(verb, v)
}
