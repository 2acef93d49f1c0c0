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

func TestCorrectVerbRegularSingularize(t *testing.T) {
	assert.Equal(t, "runs", CorrectVerb("run", lexicon.Singular))
	assert.Equal(t, "watches", CorrectVerb("watch", lexicon.Singular))
	assert.Equal(t, "passes", CorrectVerb("pass", lexicon.Singular))
	assert.Equal(t, "goes", CorrectVerb("go", lexicon.Singular))
	assert.Equal(t, "tries", CorrectVerb("try", lexicon.Singular))
	assert.Equal(t, "plays", CorrectVerb("play", lexicon.Singular))
}

func TestCorrectVerbRegularPluralize(t *testing.T) {
	assert.Equal(t, "run", CorrectVerb("runs", lexicon.Plural))
	assert.Equal(t, "watch", CorrectVerb("watches", lexicon.Plural))
	assert.Equal(t, "passe", CorrectVerb("passes", lexicon.Plural))
	assert.Equal(t, "kisse", CorrectVerb("kisses", lexicon.Plural))
	assert.Equal(t, "go", CorrectVerb("goes", lexicon.Plural))
	assert.Equal(t, "try", CorrectVerb("tries", lexicon.Plural))
	assert.Equal(t, "like", CorrectVerb("likes", lexicon.Plural))
}

func TestCorrectVerbAlreadyAgrees(t *testing.T) {
	assert.Equal(t, "runs", CorrectVerb("runs", lexicon.Singular))
	assert.Equal(t, "run", CorrectVerb("run", lexicon.Plural))
}

func TestCorrectVerbIrregular(t *testing.T) {
	assert.Equal(t, "are", CorrectVerb("is", lexicon.Plural))
	assert.Equal(t, "is", CorrectVerb("are", lexicon.Singular))
	assert.Equal(t, "have", CorrectVerb("has", lexicon.Plural))
	assert.Equal(t, "has", CorrectVerb("have", lexicon.Singular))
	assert.Equal(t, "were", CorrectVerb("was", lexicon.Plural))
	assert.Equal(t, "does", CorrectVerb("do", lexicon.Singular))
}

func TestCorrectVerbIrregularAlreadyAgrees(t *testing.T) {
	assert.Equal(t, "is", CorrectVerb("is", lexicon.Singular))
	assert.Equal(t, "are", CorrectVerb("are", lexicon.Plural))
}

func TestCorrectVerbContractions(t *testing.T) {
	assert.Equal(t, "doesn't", CorrectVerb("don't", lexicon.Singular))
	assert.Equal(t, "don't", CorrectVerb("doesn't", lexicon.Plural))
	assert.Equal(t, "isn't", CorrectVerb("aren't", lexicon.Singular))
	assert.Equal(t, "aren't", CorrectVerb("isn't", lexicon.Plural))
	assert.Equal(t, "wasn't", CorrectVerb("weren't", lexicon.Singular))
	assert.Equal(t, "haven't", CorrectVerb("hasn't", lexicon.Plural))
}

func TestCorrectVerbConvergence(t *testing.T) {
	// for regular verbs the corrected form must classify as the target
	for _, v := range []string{"run", "walks", "watch", "passes", "kisses", "carries", "play", "goes"} {
		for _, target := range []lexicon.Number{lexicon.Singular, lexicon.Plural} {
			fixed := CorrectVerb(v, target)
			assert.Equal(
				t, target, lexicon.ClassifyVerb(fixed),
				"verb %s target %s got %s", v, target, fixed,
			)
		}
	}
}
