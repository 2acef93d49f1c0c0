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

	"svan/sva/csg"
	"svan/sva/lexicon"
)

// CSGEngine is the default analysis engine. It splits compound
// sentences into clauses, locates subject and verb per clause,
// classifies them, runs one context-sensitive rewrite to produce an
// explanatory derivation trace, and decides the verdict by direct
// number comparison.
type CSGEngine struct{}

func (e *CSGEngine) Name() string {
	return "csg"
}

func (e *CSGEngine) Analyze(sentence string) *AnalysisResult {
	tokens := Tokenize(sentence)
	words := wordTokens(tokens)
	if len(words) == 0 {
		return errorResult("Unable to parse sentence (too short or not supported).")
	}

	clauses, coordinators := SplitClauses(sentence, words)
	var ans *AnalysisResult
	if len(clauses) > 1 {
		ans = e.analyzeCompound(sentence, words, clauses, coordinators)

	} else {
		ans = e.analyzeClause(sentence, 0, words)
	}
	ans.OriginalSentence = sentence
	return ans
}

// initialParseString builds the starting tagged string of the
// derivation. Compound subjects carry (category, coordinator, number);
// the pronouns "i" and "you" get their own tag so the dedicated rules
// can fire; regular nouns are tagged with their bare number.
func initialParseString(
	subject string,
	category lexicon.NounCategory,
	subjNumber, verbNumber lexicon.Number,
	compound *CompoundInfo,
) csg.TaggedString {
	vp := csg.NewSymbol(csg.ClassVP, string(verbNumber))
	if compound != nil {
		np := csg.NewSymbol(
			csg.ClassNP, string(lexicon.CategoryCompound), compound.Coordinator, string(subjNumber))
		return csg.TaggedString{np, vp}
	}
	lower := strings.ToLower(subject)
	if category == lexicon.CategoryPronoun && (lower == "i" || lower == "you") {
		return csg.TaggedString{csg.NewSymbol(csg.ClassNP, lower), vp}
	}
	feature := string(category)
	if category == lexicon.CategoryRegular {
		feature = string(subjNumber)
	}
	return csg.TaggedString{csg.NewSymbol(csg.ClassNP, feature), vp}
}

// analyzeClause runs the full single-clause pipeline on text, whose
// word tokens carry offsets relative to the original sentence; base is
// the clause's offset within it.
func (e *CSGEngine) analyzeClause(text string, base int, words []Token) *AnalysisResult {
	compound := DetectCompoundSubject(words)
	subjTok, subjIdx := FindSubject(words)
	verbTok, verbIdx, _ := FindVerb(words, subjIdx, compound)
	if verbIdx < 0 {
		return errorResult("Unable to identify subject and verb.")
	}

	var category lexicon.NounCategory
	var subjNumber lexicon.Number
	displaySubject := subjTok.Text
	spanEnd := subjTok.End
	if compound != nil {
		category = lexicon.CategoryCompound
		subjNumber = compound.Number
		displaySubject = compound.Display()
		spanEnd = words[compound.secondIdx].End

	} else {
		category, subjNumber = lexicon.ClassifyNoun(subjTok.Text)
	}
	verbNumber := lexicon.ClassifyVerb(verbTok.Text)

	initial := initialParseString(subjTok.Text, category, subjNumber, verbNumber, compound)
	steps, final := csg.Derive(initial)

	parseTree := &ParseNode{
		Label: "S",
		Children: []*ParseNode{
			{
				Label: fmt.Sprintf("NP (%s)", subjNumber),
				Children: []*ParseNode{
					{Label: "N", Text: displaySubject, Features: &Features{Number: subjNumber}},
				},
			},
			{
				Label: fmt.Sprintf("VP (%s)", verbNumber),
				Children: []*ParseNode{
					{Label: "V", Text: verbTok.Text, Features: &Features{Number: verbNumber}},
				},
			},
		},
	}

	if subjNumber == verbNumber {
		return &AnalysisResult{
			Status: StatusOK,
			Message: fmt.Sprintf(
				"Subject-verb agreement is correct. Subject '%s' (%s) agrees with verb '%s' (%s).",
				displaySubject, subjNumber, verbTok.Text, verbNumber),
			ProblemSpans: []ProblemSpan{},
			ParseTree:    parseTree,
			Derivation:   steps,
			CSGAnalysis: &CSGAnalysis{
				InitialString: initial.String(),
				FinalString:   final.String(),
				RulesApplied:  csg.RulesApplied(steps),
			},
		}
	}

	correctVerb := CorrectVerb(verbTok.Text, subjNumber)
	// splice by token offset rather than searching for the verb's
	// surface form, which could match an earlier unrelated word
	suggested := text[:verbTok.Start-base] + correctVerb + text[verbTok.End-base:]
	expected := csg.TaggedString{
		csg.NewSymbol(csg.ClassNP, string(subjNumber)),
		csg.NewSymbol(csg.ClassVP, string(subjNumber)),
	}
	return &AnalysisResult{
		Status: StatusError,
		Message: fmt.Sprintf(
			"Subject-verb disagreement: '%s' (%s) does not agree with '%s' (%s).",
			displaySubject, subjNumber, verbTok.Text, verbNumber),
		ProblemSpans: []ProblemSpan{
			{
				Type:            "subject",
				Text:            displaySubject,
				Start:           subjTok.Start,
				End:             spanEnd,
				Features:        Features{Number: subjNumber},
				SubjectFeatures: Features{Number: subjNumber},
				VerbFeatures:    Features{Number: verbNumber},
			},
		},
		ParseTree:           parseTree,
		Derivation:          steps,
		SuggestedCorrection: suggested,
		CSGAnalysis: &CSGAnalysis{
			InitialString:  initial.String(),
			FinalString:    final.String(),
			ExpectedString: expected.String(),
			RulesApplied:   csg.RulesApplied(steps),
		},
	}
}

// analyzeCompound analyzes each clause of a compound sentence
// independently and merges the clause results: spans keep their
// sentence-absolute offsets, the corrected sentence is rebuilt by
// rejoining clause texts with the original coordinators and terminal
// punctuation.
func (e *CSGEngine) analyzeCompound(
	sentence string,
	words []Token,
	clauses []Clause,
	coordinators []string,
) *AnalysisResult {
	var (
		clauseAnalyses []ClauseAnalysis
		spans          []ProblemSpan
		badClauses     []string
		corrected      []string
		anyError       bool
	)
	tree := &ParseNode{Label: "S (Compound)"}

	for i, clause := range clauses {
		res := e.analyzeClause(clause.Text, clause.Start, clause.Words)
		clauseAnalyses = append(clauseAnalyses, ClauseAnalysis{
			ClauseNumber: i + 1,
			Text:         clause.Text,
			Analysis:     res,
		})
		spans = append(spans, res.ProblemSpans...)
		if res.ParseTree != nil {
			tree.Children = append(tree.Children, res.ParseTree)
		}
		if res.Status == StatusError {
			anyError = true
			badClauses = append(badClauses, fmt.Sprintf("%d", i+1))
		}
		text := clause.Text
		if res.Status == StatusError && res.SuggestedCorrection != "" {
			text = res.SuggestedCorrection
		}
		corrected = append(corrected, text)
	}

	status := StatusOK
	message := fmt.Sprintf(
		"Compound sentence with %d clauses. All clauses have correct subject-verb agreement.",
		len(clauses))
	if anyError {
		status = StatusError
		message = fmt.Sprintf(
			"Compound sentence with %d clauses. Subject-verb disagreement in clause(s) %s.",
			len(clauses), strings.Join(badClauses, ", "))
	}

	ans := &AnalysisResult{
		Status:         status,
		Message:        message,
		ProblemSpans:   spans,
		ParseTree:      tree,
		IsCompound:     true,
		ClauseCount:    len(clauses),
		ClauseAnalyses: clauseAnalyses,
	}
	if spans == nil {
		ans.ProblemSpans = []ProblemSpan{}
	}
	if anyError {
		ans.SuggestedCorrection = joinClauses(sentence, words, corrected, coordinators)
	}
	return ans
}

// joinClauses reassembles corrected clause texts in original order,
// re-appending whatever trailing punctuation followed the last word.
func joinClauses(sentence string, words []Token, texts, coordinators []string) string {
	var sb strings.Builder
	for i, t := range texts {
		if i > 0 {
			sb.WriteString(" ")
			if i-1 < len(coordinators) {
				sb.WriteString(coordinators[i-1])
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t)
	}
	tail := strings.TrimSpace(sentence[words[len(words)-1].End:])
	sb.WriteString(tail)
	return sb.String()
}
