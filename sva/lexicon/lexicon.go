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

// Package lexicon provides the closed word lists the SVA engine
// classifies against. All tables are built once at process start
// and never mutated, so they are safe to share across concurrent
// analyses without synchronization.
package lexicon

import (
	"github.com/czcorpus/cnc-gokit/collections"
)

// Number is the sole agreement feature the engine tracks.
type Number string

const (
	Singular Number = "singular"
	Plural   Number = "plural"
)

// NounCategory tells which lexicon (or fallback heuristic) classified
// a subject word. The values double as CSG feature tags.
type NounCategory string

const (
	CategoryPronoun        NounCategory = "pronoun"
	CategoryIndefinite     NounCategory = "indefinite"
	CategoryCollective     NounCategory = "collective"
	CategoryUnit           NounCategory = "unit"
	CategorySingularPlural NounCategory = "singular_plural"
	CategoryRegular        NounCategory = "regular"
	CategoryCompound       NounCategory = "compound"
)

type Pronoun struct {
	Number Number
	Person int
}

// IrregularVerb holds the grammatical number of an irregular verb form
// together with its opposite-number counterpart (is <-> are etc.).
type IrregularVerb struct {
	Number      Number
	Counterpart string
}

// Pronouns covers the personal pronouns. Note that "I" and "you" are
// deliberately marked plural - they take the bare verb form
// ("I run", "you run", never "I runs").
var Pronouns = map[string]Pronoun{
	"i":    {Number: Plural, Person: 1},
	"you":  {Number: Plural, Person: 2},
	"he":   {Number: Singular, Person: 3},
	"she":  {Number: Singular, Person: 3},
	"it":   {Number: Singular, Person: 3},
	"we":   {Number: Plural, Person: 1},
	"they": {Number: Plural, Person: 3},
}

var IrregularVerbs = map[string]IrregularVerb{
	"is":   {Number: Singular, Counterpart: "are"},
	"are":  {Number: Plural, Counterpart: "is"},
	"was":  {Number: Singular, Counterpart: "were"},
	"were": {Number: Plural, Counterpart: "was"},
	"has":  {Number: Singular, Counterpart: "have"},
	"have": {Number: Plural, Counterpart: "has"},
	"does": {Number: Singular, Counterpart: "do"},
	"do":   {Number: Plural, Counterpart: "does"},
}

// Contractions maps fused auxiliary+negation forms to the number they
// carry. Apostrophe-less variants are listed too so that sloppy input
// still classifies.
var Contractions = map[string]Number{
	"don't":   Plural,
	"dont":    Plural,
	"doesn't": Singular,
	"doesnt":  Singular,
	"isn't":   Singular,
	"isnt":    Singular,
	"aren't":  Plural,
	"arent":   Plural,
	"wasn't":  Singular,
	"wasnt":   Singular,
	"weren't": Plural,
	"werent":  Plural,
	"haven't": Plural,
	"havent":  Plural,
	"hasn't":  Singular,
	"hasnt":   Singular,
	"won't":   Singular,
	"wont":    Singular,
	"can't":   Plural,
	"cant":    Plural,
}

var Auxiliaries = collections.NewSet(
	"is", "are", "was", "were", "has", "have", "do", "does",
	"will", "can", "should", "would", "could",
)

// Coordinators join two subjects into a compound subject.
var Coordinators = collections.NewSet("and", "or", "nor")

// ClauseCoordinators may additionally join two independent clauses
// into a compound sentence.
var ClauseCoordinators = collections.NewSet(
	"and", "or", "but", "yet", "so", "for", "nor",
)

// IndefinitePronouns always take singular agreement.
var IndefinitePronouns = collections.NewSet(
	"everyone", "everybody", "everything",
	"someone", "somebody", "something",
	"anyone", "anybody", "anything",
	"no one", "nobody", "nothing",
	"each", "either", "neither",
	"one", "another", "other",
)

// CollectiveNouns denote groups treated as one unit.
var CollectiveNouns = collections.NewSet(
	"team", "group", "class", "family", "committee", "staff",
	"crew", "audience", "band", "jury", "council", "crowd",
	"company", "government", "organization", "department",
	"army", "navy", "police", "public",
)

// UnitWords cover amounts of money, time and distance which agree as
// a single quantity.
var UnitWords = collections.NewSet(
	"dollars", "pesos", "pounds", "euros", "cents",
	"hours", "minutes", "seconds", "days", "weeks", "months", "years",
	"miles", "kilometers", "meters", "feet",
	"kilograms", "ounces",
)

// SingularPlurals are countries, disciplines and similar subjects
// which look plural but agree as singular.
var SingularPlurals = collections.NewSet(
	"philippines", "united states", "netherlands",
	"mathematics", "physics", "economics", "politics",
	"news", "measles", "mumps", "diabetes",
	"athletics", "gymnastics", "statistics",
)

// IrregularPlurals is a small closed list of plural nouns without
// the -s marker.
var IrregularPlurals = collections.NewSet(
	"children", "people", "men", "women", "feet", "teeth", "mice",
)

var Determiners = collections.NewSet("the", "a", "an")

var Possessives = collections.NewSet(
	"my", "your", "his", "her", "its", "our", "their",
)

// CommonBaseVerbs lists frequent verb bases. The clause splitter uses
// it to decide whether an inflected word is verb-like.
var CommonBaseVerbs = collections.NewSet(
	"run", "walk", "play", "eat", "sleep", "go", "come", "make",
	"take", "get", "see", "know", "think", "give", "find", "tell",
	"work", "call", "try", "ask", "need", "feel", "become", "leave",
	"put", "mean", "keep", "let", "begin", "seem", "help", "talk",
	"turn", "start", "show", "hear", "move", "like", "live", "believe",
	"hold", "bring", "happen", "write", "sit", "stand", "lose", "pay",
	"meet", "include", "continue", "set", "learn", "change", "lead",
	"understand", "watch", "follow", "stop", "create", "speak", "read",
	"spend", "grow", "open", "win", "teach", "offer", "remember",
	"consider", "appear", "buy", "wait", "serve", "die", "send",
	"build", "stay", "fall", "cut", "reach", "kill", "raise", "pass",
	"sell", "decide", "return", "explain", "hope", "develop", "carry",
	"break", "bark", "sing", "dance", "love",
)
