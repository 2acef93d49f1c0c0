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

	"svan/sva/lexicon"

	"github.com/stretchr/testify/assert"
)

func detect(s string) *CompoundInfo {
	return DetectCompoundSubject(wordTokens(Tokenize(s)))
}

func TestDetectCompoundAnd(t *testing.T) {
	c := detect("Mark and Anna play guitar.")
	assert.NotNil(t, c)
	assert.Equal(t, "and", c.Coordinator)
	assert.Equal(t, [2]string{"Mark", "Anna"}, c.Subjects)
	assert.Equal(t, lexicon.Plural, c.Number)
}

func TestDetectCompoundAndAlwaysPlural(t *testing.T) {
	// two singular subjects still agree as plural
	c := detect("The cat and the dog sleep.")
	assert.NotNil(t, c)
	assert.Equal(t, lexicon.Plural, c.Number)
	assert.Equal(t, [2]string{"cat", "dog"}, c.Subjects)
}

func TestDetectCompoundOrNearestSingular(t *testing.T) {
	c := detect("The dog or the cat runs.")
	assert.NotNil(t, c)
	assert.Equal(t, "or", c.Coordinator)
	assert.Equal(t, lexicon.Singular, c.Number)
}

func TestDetectCompoundOrNearestPlural(t *testing.T) {
	c := detect("The cat or the dogs run.")
	assert.NotNil(t, c)
	assert.Equal(t, lexicon.Plural, c.Number)
}

func TestDetectCompoundRejectsPluralLookingFirstSubject(t *testing.T) {
	// an s-ending word before the coordinator reads as a verb to the
	// clause disambiguation and blocks compound-subject detection
	assert.Nil(t, detect("The cats or the dog runs."))
}

func TestDetectCompoundNor(t *testing.T) {
	c := detect("Neither Mark nor Anna sings.")
	assert.NotNil(t, c)
	assert.Equal(t, "nor", c.Coordinator)
	assert.Equal(t, lexicon.Singular, c.Number)
}

func TestDetectCompoundSkipsDeterminerAfterCoordinator(t *testing.T) {
	c := detect("The cat and the dog sleep.")
	assert.NotNil(t, c)
	assert.Equal(t, "dog", c.Subjects[1])
}

func TestDetectCompoundRejectsClauseJoin(t *testing.T) {
	// a verb before the coordinator signals a compound sentence
	assert.Nil(t, detect("The cat runs and the dog barks."))
	assert.Nil(t, detect("She sings and he dances."))
}

func TestDetectCompoundRejectsPronounPlusVerb(t *testing.T) {
	assert.Nil(t, detect("I work and they play."))
}

func TestDetectCompoundNone(t *testing.T) {
	assert.Nil(t, detect("The cat runs."))
	assert.Nil(t, detect("Everyone loves music."))
}

func TestCompoundDisplay(t *testing.T) {
	c := detect("Mark and Anna play guitar.")
	assert.NotNil(t, c)
	assert.Equal(t, "Mark and Anna", c.Display())
}
