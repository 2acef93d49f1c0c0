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
	"fmt"
	"strings"

	"svan/sva/lexicon"
)

// ambiguousSubjectVerbs are words which may open a sentence either as
// a subject or as an imperative verb; the rule engine only treats them
// as subjects when they are not sentence-initial.
var ambiguousSubjectVerbs = map[string]bool{
	"run": true, "runs": true, "walk": true, "walks": true,
	"play": true, "plays": true, "eat": true, "eats": true,
	"sleep": true, "sleeps": true,
}

// ruleVerbSuffixBlocklist rules out words that look derivational or
// participial during the rule engine's fallback verb search.
var ruleVerbSuffixBlocklist = []string{"ly", "tion", "ness", "ment", "ing", "ed"}

// RuleEngine is the lighter, trace-free analysis engine. It checks one
// subject/verb pair per sentence with no clause splitting and no
// derivation; auxiliaries take priority over main verbs for the
// agreement check.
type RuleEngine struct{}

func (e *RuleEngine) Name() string {
	return "rule"
}

func (e *RuleEngine) findSubject(words []Token) (Token, int) {
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
		if ambiguousSubjectVerbs[w] && i == 0 {
			continue
		}
		return wt, i
	}
	return words[0], 0
}

func commonVerbForm(w string) bool {
	if lexicon.CommonBaseVerbs.Contains(w) {
		return true
	}
	for _, base := range inflectionBases(w) {
		if lexicon.CommonBaseVerbs.Contains(base) {
			return true
		}
	}
	return false
}

// findVerb returns the agreement-bearing verb and whether it is an
// auxiliary. Contractions beat standalone auxiliaries, which beat
// known main-verb forms from the subject onward; the word right after
// the subject serves as a heuristic fallback unless its suffix rules
// it out, and the last word closes the chain.
func (e *RuleEngine) findVerb(words []Token, subjectIdx int) (Token, bool) {
	for _, wt := range words {
		if _, ok := lexicon.Contractions[strings.ToLower(wt.Text)]; ok {
			return wt, true
		}
	}
	for _, wt := range words {
		if lexicon.Auxiliaries.Contains(strings.ToLower(wt.Text)) {
			return wt, true
		}
	}
	for i := subjectIdx; i < len(words); i++ {
		w := strings.ToLower(words[i].Text)
		if _, ok := lexicon.IrregularVerbs[w]; ok || commonVerbForm(w) {
			return words[i], false
		}
	}
	if subjectIdx+1 < len(words) {
		w := strings.ToLower(words[subjectIdx+1].Text)
		blocked := false
		for _, suf := range ruleVerbSuffixBlocklist {
			if strings.HasSuffix(w, suf) {
				blocked = true
				break
			}
		}
		if !blocked {
			return words[subjectIdx+1], false
		}
	}
	return words[len(words)-1], false
}

func (e *RuleEngine) parseTree(
	tokens []Token,
	displaySubject string,
	subjNumber, verbNumber lexicon.Number,
	verb string,
) *ParseNode {
	var npChildren []*ParseNode
	if len(tokens) > 0 && lexicon.Determiners.Contains(strings.ToLower(tokens[0].Text)) {
		npChildren = append(npChildren, &ParseNode{Label: "DET", Text: tokens[0].Text})
	}
	npChildren = append(npChildren, &ParseNode{
		Label:    "N",
		Text:     displaySubject,
		Features: &Features{Number: subjNumber},
	})
	return &ParseNode{
		Label: "S",
		Children: []*ParseNode{
			{Label: fmt.Sprintf("NP (%s)", subjNumber), Children: npChildren},
			{
				Label: fmt.Sprintf("VP (%s)", verbNumber),
				Children: []*ParseNode{
					{Label: "V", Text: verb, Features: &Features{Number: verbNumber}},
				},
			},
		},
	}
}

func (e *RuleEngine) Analyze(sentence string) *AnalysisResult {
	tokens := Tokenize(sentence)
	words := wordTokens(tokens)
	if len(words) == 0 {
		return errorResult("Unable to parse sentence (too short or not supported).")
	}

	subjTok, subjIdx := e.findSubject(words)

	var subjNumber lexicon.Number
	displaySubject := subjTok.Text
	spanStart, spanEnd := subjTok.Start, subjTok.End
	compound := DetectCompoundSubject(words)
	if compound != nil {
		subjNumber = compound.Number
		displaySubject = compound.Display()
		spanEnd = words[compound.secondIdx].End

	} else {
		_, subjNumber = lexicon.ClassifyNoun(subjTok.Text)
	}

	verbTok, isAux := e.findVerb(words, subjIdx)
	verbNumber := lexicon.ClassifyVerb(verbTok.Text)

	tree := e.parseTree(tokens, displaySubject, subjNumber, verbNumber, verbTok.Text)

	if subjNumber == verbNumber {
		return &AnalysisResult{
			Status:           StatusOK,
			Message:          "Subject-verb agreement is correct.",
			ProblemSpans:     []ProblemSpan{},
			ParseTree:        tree,
			OriginalSentence: sentence,
		}
	}

	auxNote := ""
	if isAux {
		auxNote = " (auxiliary)"
	}
	correctVerb := CorrectVerb(verbTok.Text, subjNumber)
	suggested := sentence[:verbTok.Start] + correctVerb + sentence[verbTok.End:]
	return &AnalysisResult{
		Status: StatusError,
		Message: fmt.Sprintf(
			"Subject-verb disagreement: '%s' (%s) does not agree with '%s' (%s)%s",
			displaySubject, subjNumber, verbTok.Text, verbNumber, auxNote),
		ProblemSpans: []ProblemSpan{
			{
				Type:            "subject",
				Text:            displaySubject,
				Start:           spanStart,
				End:             spanEnd,
				Features:        Features{Number: subjNumber},
				SubjectFeatures: Features{Number: subjNumber},
				VerbFeatures:    Features{Number: verbNumber},
			},
		},
		ParseTree:           tree,
		SuggestedCorrection: suggested,
		OriginalSentence:    sentence,
	}
}
