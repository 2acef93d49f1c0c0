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

package serror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanicValueToErr(t *testing.T) {
	err := PanicValueToErr(errors.New("boom"))
	assert.Equal(t, "recovered panic: boom", err.Error())

	err = PanicValueToErr("boom")
	assert.Equal(t, "recovered panic: boom", err.Error())

	err = PanicValueToErr(42)
	assert.Equal(t, "recovered panic from an error of type int", err.Error())
}

func TestRecoveredErrorMatching(t *testing.T) {
	var src error = RecoveredError{Msg: "worker exploded"}
	wrapped := fmt.Errorf("job failed: %w", src)
	var rcvErr RecoveredError
	assert.True(t, errors.As(wrapped, &rcvErr))
	assert.Equal(t, "worker exploded", rcvErr.Error())
}

func TestErrorsMarshalToBareMessage(t *testing.T) {
	data, err := InputError{Msg: "missing sentence"}.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"missing sentence"`, string(data))

	data, err = TimeoutError{}.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
