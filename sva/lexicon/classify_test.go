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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNounRegularSingular(t *testing.T) {
	cat, num := ClassifyNoun("cat")
	assert.Equal(t, CategoryRegular, cat)
	assert.Equal(t, Singular, num)
}

func TestClassifyNounRegularPlural(t *testing.T) {
	cat, num := ClassifyNoun("cats")
	assert.Equal(t, CategoryRegular, cat)
	assert.Equal(t, Plural, num)
}

func TestClassifyNounPossessiveNotPlural(t *testing.T) {
	_, num := ClassifyNoun("cat's")
	assert.Equal(t, Singular, num)
}

func TestClassifyNounPronounI(t *testing.T) {
	cat, num := ClassifyNoun("I")
	assert.Equal(t, CategoryPronoun, cat)
	assert.Equal(t, Plural, num)
}

func TestClassifyNounPronounYou(t *testing.T) {
	cat, num := ClassifyNoun("you")
	assert.Equal(t, CategoryPronoun, cat)
	assert.Equal(t, Plural, num)
}

func TestClassifyNounPronounThirdSingular(t *testing.T) {
	cat, num := ClassifyNoun("She")
	assert.Equal(t, CategoryPronoun, cat)
	assert.Equal(t, Singular, num)
}

func TestClassifyNounIndefinite(t *testing.T) {
	cat, num := ClassifyNoun("everyone")
	assert.Equal(t, CategoryIndefinite, cat)
	assert.Equal(t, Singular, num)
}

func TestClassifyNounIndefiniteBeatsPronounTable(t *testing.T) {
	// "each" ends without s and matches no other table
	cat, num := ClassifyNoun("each")
	assert.Equal(t, CategoryIndefinite, cat)
	assert.Equal(t, Singular, num)
}

func TestClassifyNounSingularPluralBeatsSuffix(t *testing.T) {
	// ends in -s but denotes a singular discipline
	cat, num := ClassifyNoun("mathematics")
	assert.Equal(t, CategorySingularPlural, cat)
	assert.Equal(t, Singular, num)
}

func TestClassifyNounCollective(t *testing.T) {
	cat, num := ClassifyNoun("team")
	assert.Equal(t, CategoryCollective, cat)
	assert.Equal(t, Singular, num)
}

func TestClassifyNounUnit(t *testing.T) {
	cat, num := ClassifyNoun("dollars")
	assert.Equal(t, CategoryUnit, cat)
	assert.Equal(t, Singular, num)
}

func TestClassifyNounIrregularPlural(t *testing.T) {
	cat, num := ClassifyNoun("children")
	assert.Equal(t, CategoryRegular, cat)
	assert.Equal(t, Plural, num)
}

func TestClassifyVerbSingularS(t *testing.T) {
	assert.Equal(t, Singular, ClassifyVerb("runs"))
	assert.Equal(t, Singular, ClassifyVerb("watches"))
}

func TestClassifyVerbBarePlural(t *testing.T) {
	assert.Equal(t, Plural, ClassifyVerb("run"))
	assert.Equal(t, Plural, ClassifyVerb("watch"))
}

func TestClassifyVerbIrregular(t *testing.T) {
	assert.Equal(t, Singular, ClassifyVerb("is"))
	assert.Equal(t, Plural, ClassifyVerb("are"))
	assert.Equal(t, Singular, ClassifyVerb("has"))
	assert.Equal(t, Plural, ClassifyVerb("have"))
	assert.Equal(t, Singular, ClassifyVerb("was"))
	assert.Equal(t, Plural, ClassifyVerb("were"))
	assert.Equal(t, Singular, ClassifyVerb("does"))
	assert.Equal(t, Plural, ClassifyVerb("do"))
}

func TestClassifyVerbContractions(t *testing.T) {
	assert.Equal(t, Plural, ClassifyVerb("don't"))
	assert.Equal(t, Singular, ClassifyVerb("doesn't"))
	assert.Equal(t, Singular, ClassifyVerb("isn't"))
	assert.Equal(t, Plural, ClassifyVerb("aren't"))
}

func TestClassifyVerbContractionWithoutApostrophe(t *testing.T) {
	assert.Equal(t, Plural, ClassifyVerb("dont"))
	assert.Equal(t, Singular, ClassifyVerb("doesnt"))
}

func TestClassifyVerbCaseInsensitive(t *testing.T) {
	assert.Equal(t, Singular, ClassifyVerb("Is"))
	assert.Equal(t, Singular, ClassifyVerb("RUNS"))
}
