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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSimpleSentence(t *testing.T) {
	tokens := Tokenize("The cat runs.")
	assert.Equal(t, 4, len(tokens))
	assert.Equal(t, "The", tokens[0].Text)
	assert.Equal(t, "cat", tokens[1].Text)
	assert.Equal(t, "runs", tokens[2].Text)
	assert.Equal(t, ".", tokens[3].Text)
}

func TestTokenizeOffsets(t *testing.T) {
	tokens := Tokenize("The cat runs.")
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 3, tokens[0].End)
	assert.Equal(t, 4, tokens[1].Start)
	assert.Equal(t, 7, tokens[1].End)
	assert.Equal(t, 8, tokens[2].Start)
	assert.Equal(t, 12, tokens[2].End)
	assert.Equal(t, 12, tokens[3].Start)
	assert.Equal(t, 13, tokens[3].End)
}

func TestTokenizeContractionStaysWhole(t *testing.T) {
	tokens := Tokenize("They don't run.")
	assert.Equal(t, "don't", tokens[1].Text)
	assert.True(t, tokens[1].IsWord())
}

func TestTokenizePunctuationIsNotWord(t *testing.T) {
	tokens := Tokenize("Stop!")
	assert.Equal(t, 2, len(tokens))
	assert.True(t, tokens[0].IsWord())
	assert.False(t, tokens[1].IsWord())
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
}

func TestTokenizePurePunctuationHasNoWords(t *testing.T) {
	tokens := Tokenize("?!...")
	assert.Equal(t, 5, len(tokens))
	assert.Empty(t, wordTokens(tokens))
}

func TestWordTokensFilter(t *testing.T) {
	tokens := Tokenize("The cat, surprisingly, runs.")
	words := wordTokens(tokens)
	assert.Equal(t, 4, len(words))
	assert.Equal(t, "surprisingly", words[2].Text)
}
