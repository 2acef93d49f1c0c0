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

import "regexp"

// Token is one word or punctuation unit with its byte offsets in the
// source sentence. Word tokens may carry a single internal apostrophe
// (contractions like don't); punctuation tokens are single characters.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"startOffset"`
	End   int    `json:"endOffset"`
}

var tokenPattern = regexp.MustCompile(`\w+(?:'\w+)?|[^\s\w]`)
var wordStartPattern = regexp.MustCompile(`^\w`)

// IsWord distinguishes word tokens from punctuation.
func (t Token) IsWord() bool {
	return wordStartPattern.MatchString(t.Text)
}

// Tokenize splits a sentence into word and punctuation tokens,
// scanning left to right for maximal word-character runs. The spans
// never overlap and, together with skipped whitespace, cover the
// whole input. Deterministic, no side effects.
func Tokenize(sentence string) []Token {
	matches := tokenPattern.FindAllStringIndex(sentence, -1)
	tokens := make([]Token, len(matches))
	for i, m := range matches {
		tokens[i] = Token{
			Text:  sentence[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
		}
	}
	return tokens
}

func wordTokens(tokens []Token) []Token {
	ans := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.IsWord() {
			ans = append(ans, t)
		}
	}
	return ans
}
