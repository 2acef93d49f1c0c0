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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/stretchr/testify/assert"

	"svan/rdb"
)

func TestLoadConfig(t *testing.T) {
	src := `{
		"listenAddress": "127.0.0.1",
		"listenPort": 8989,
		"logging": {"path": "/var/log/svan/server.log", "level": "debug"},
		"redis": {"host": "localhost", "port": 6379, "db": 1},
		"analysis": {"defaultEngine": "csg", "maxBatchSize": 50}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(src), 0644)
	assert.NoError(t, err)

	conf := LoadConfig(path)
	assert.Equal(t, "127.0.0.1", conf.ListenAddress)
	assert.Equal(t, 8989, conf.ListenPort)
	assert.Equal(t, "/var/log/svan/server.log", conf.Logging.Path)
	assert.Equal(t, logging.LogLevel("debug"), conf.Logging.Level)
	assert.True(t, conf.IsDebugMode())
	assert.Equal(t, "localhost", conf.Redis.Host)
	assert.Equal(t, 50, conf.Analysis.MaxBatchSize)
}

func TestValidateAndDefaults(t *testing.T) {
	conf := &Conf{
		ListenAddress: "127.0.0.1",
		Redis:         &rdb.Conf{Host: "localhost", Port: 6379},
	}
	ValidateAndDefaults(conf)
	assert.Equal(t, logging.LogLevel("info"), conf.Logging.Level)
	assert.False(t, conf.IsDebugMode())
	assert.Equal(t, dfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, dfltMaxBatchSize, conf.Analysis.MaxBatchSize)
	assert.Equal(t, "csg", conf.Analysis.DefaultEngine)
	assert.Equal(t, dfltTimeZone, conf.TimeZone)
}
