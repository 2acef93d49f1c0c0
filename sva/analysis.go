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

// Package sva analyzes subject-verb agreement in English sentences.
// It locates the subject and the agreement-bearing verb of each
// clause, classifies their grammatical number against closed lexicons,
// explains the verdict via a context-sensitive grammar derivation and
// proposes a corrected sentence on mismatch. All analysis is pure and
// synchronous; per-call state never leaks between invocations.
package sva

import (
	"svan/sva/csg"
	"svan/sva/lexicon"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Features is the feature bundle attached to parse tree nodes and
// problem spans. Grammatical number is the only feature tracked.
type Features struct {
	Number lexicon.Number `json:"number"`
}

// ProblemSpan marks the subject whose clause fails agreement.
type ProblemSpan struct {
	Type            string   `json:"type"`
	Text            string   `json:"text"`
	Start           int      `json:"start"`
	End             int      `json:"end"`
	Features        Features `json:"features"`
	SubjectFeatures Features `json:"subjectFeatures"`
	VerbFeatures    Features `json:"verbFeatures"`
}

// ParseNode is one node of the (flat) S -> NP VP parse tree exposed
// to clients for visualization.
type ParseNode struct {
	Label    string       `json:"label"`
	Text     string       `json:"text,omitempty"`
	Features *Features    `json:"features,omitempty"`
	Children []*ParseNode `json:"children,omitempty"`
}

// CSGAnalysis summarizes the derivation the csg engine performed for
// a single clause.
type CSGAnalysis struct {
	InitialString  string `json:"initialString"`
	FinalString    string `json:"finalString"`
	ExpectedString string `json:"expectedString,omitempty"`
	RulesApplied   int    `json:"rulesApplied"`
}

// ClauseAnalysis wraps the standalone analysis of one clause of a
// compound sentence.
type ClauseAnalysis struct {
	ClauseNumber int             `json:"clauseNumber"`
	Text         string          `json:"text"`
	Analysis     *AnalysisResult `json:"analysis"`
}

// AnalysisResult is the complete outcome of analyzing one sentence.
// For compound sentences the compound fields are set and the
// per-clause results are nested in ClauseAnalyses.
type AnalysisResult struct {
	Status              string           `json:"status"`
	Message             string           `json:"message"`
	ProblemSpans        []ProblemSpan    `json:"problemSpans"`
	ParseTree           *ParseNode       `json:"parseTree,omitempty"`
	Derivation          []csg.Step       `json:"derivation,omitempty"`
	CSGAnalysis         *CSGAnalysis     `json:"csgAnalysis,omitempty"`
	SuggestedCorrection string           `json:"suggestedCorrection,omitempty"`
	OriginalSentence    string           `json:"originalSentence,omitempty"`
	IsCompound          bool             `json:"isCompound,omitempty"`
	ClauseCount         int              `json:"clauseCount,omitempty"`
	ClauseAnalyses      []ClauseAnalysis `json:"clauseAnalyses,omitempty"`
}

// CompoundInfo describes a detected compound subject ("X and Y").
type CompoundInfo struct {
	Coordinator string         `json:"coordinator"`
	Subjects    [2]string      `json:"subjects"`
	Number      lexicon.Number `json:"resultNumber"`

	// word-token index of the second (nearer) subject; the verb
	// search resumes after it
	secondIdx int
}

func errorResult(msg string) *AnalysisResult {
	return &AnalysisResult{
		Status:       StatusError,
		Message:      msg,
		ProblemSpans: []ProblemSpan{},
	}
}
