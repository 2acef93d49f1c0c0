// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
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

package rdb

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"

	"svan/rdb/results"
)

// CacheResult wraps a query-publishing function with a local file
// cache. The cache key is derived from the function name and raw
// arguments; a hit bypasses the worker queue entirely. Analysis is
// deterministic, so cached entries never go stale.
func (a *Adapter) CacheResult(
	fn func(Query) (<-chan *WorkerResult, error),
	query Query,
) (<-chan *WorkerResult, error) {
	if len(a.cachePath) == 0 {
		return fn(query)
	}

	hashKey := sha1.Sum(append([]byte(query.Func), query.Args...))
	path := a.cachePath + "/" + query.Func + hex.EncodeToString(hashKey[:])

	pe := fs.PathExists(path)
	isf, _ := fs.IsFile(path)
	ans := make(chan *WorkerResult)
	if pe && isf {
		go func() {
			result := new(WorkerResult)
			content, err := os.ReadFile(path)
			if err != nil {
				log.Err(err).Msgf("Error while reading cache file %s", path)
			}
			split := strings.SplitN(string(content), "\n", 2)
			if len(split) == 2 {
				result.ResultType = results.ResultType(split[0])
				result.Value = json.RawMessage(split[1])
			}
			ans <- result
			close(ans)
		}()
		return ans, nil
	}

	wr, err := fn(query)
	if err != nil {
		return nil, err
	}
	go func(wr <-chan *WorkerResult) {
		rawResult := <-wr
		if rawResult.ResultType != results.ResultTypeError {
			f, err := os.Create(path)
			if err != nil {
				log.Err(err).Msgf("Error while creating cache file %s", path)

			} else {
				defer f.Close()
				if _, err := f.WriteString(rawResult.ResultType.String() + "\n"); err != nil {
					log.Err(err).Msgf("Error while writing cache file %s", path)
				}
				if _, err := f.Write(rawResult.Value); err != nil {
					log.Err(err).Msgf("Error while writing cache file %s", path)
				}
			}
		}
		ans <- rawResult
		close(ans)
	}(wr)
	return ans, nil
}
