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

// Package csg implements a miniature context-sensitive grammar used to
// explain subject-verb agreement decisions. Agreement state is encoded
// as a short string of feature-tagged symbols (e.g. NP[plural]
// VP[singular]); production rules of the form αAβ → αγβ rewrite it and
// the rewrite sequence is recorded as a derivation trace.
package csg

import "strings"

type SymbolClass string

const (
	ClassNP SymbolClass = "NP"
	ClassVP SymbolClass = "VP"
)

// Symbol is one feature-tagged element of the agreement string.
// Features keep their order; for compound subjects the order is
// (category, coordinator, number).
type Symbol struct {
	Class    SymbolClass
	Features []string
}

func NewSymbol(class SymbolClass, features ...string) Symbol {
	return Symbol{Class: class, Features: features}
}

func (s Symbol) HasFeature(f string) bool {
	for _, v := range s.Features {
		if v == f {
			return true
		}
	}
	return false
}

func (s Symbol) String() string {
	return string(s.Class) + "[" + strings.Join(s.Features, "+") + "]"
}

// TaggedString is the automaton tape the rules rewrite.
type TaggedString []Symbol

func (ts TaggedString) String() string {
	items := make([]string, len(ts))
	for i, s := range ts {
		items[i] = s.String()
	}
	return strings.Join(items, " ")
}

// ContainsVP tests whether a verb phrase carrying the given number
// occurs anywhere in the string. This is the trace-level correctness
// criterion after a derivation.
func (ts TaggedString) ContainsVP(number string) bool {
	for _, s := range ts {
		if s.Class == ClassVP && s.HasFeature(number) {
			return true
		}
	}
	return false
}

// insertAt returns a copy of ts with sym inserted before position pos.
func (ts TaggedString) insertAt(pos int, sym Symbol) TaggedString {
	ans := make(TaggedString, 0, len(ts)+1)
	ans = append(ans, ts[:pos]...)
	ans = append(ans, sym)
	ans = append(ans, ts[pos:]...)
	return ans
}
