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

// Package cnf handles the JSON configuration of the service.
package cnf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"svan/rdb"
	"svan/sva"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltMaxBatchSize           = 100
	dfltTimeZone               = "Europe/Prague"
)

// AnalysisConf tunes the sentence analysis surface.
type AnalysisConf struct {

	// DefaultEngine is used when a request does not select an engine.
	DefaultEngine string `json:"defaultEngine"`

	// MaxBatchSize caps the number of sentences one document analysis
	// request may carry.
	MaxBatchSize int `json:"maxBatchSize"`
}

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string              `json:"listenAddress"`
	PublicURL              string              `json:"publicUrl"`
	ListenPort             int                 `json:"listenPort"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string            `json:"corsAllowedOrigins"`
	Redis                  *rdb.Conf           `json:"redis"`
	Analysis               *AnalysisConf       `json:"analysis"`
	APIDocsURLPath         string              `json:"apiDocsURLPath"`
	Logging                logging.LoggingConf `json:"logging"`
	TimeZone               string              `json:"timeZone"`
	AuthHeaderName         string              `json:"authHeaderName"`
	AuthTokens             []string            `json:"authTokens"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.Logging.Level.IsDebugMode()
}

func (conf *Conf) TimezoneLocation() *time.Location {
	// the error can be ignored here as ValidateAndDefaults
	// already tried to load the location and reported problems
	loc, _ := time.LoadLocation(conf.TimeZone)
	return loc
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.Logging.Level == "" {
		conf.Logging.Level = "info"
		log.Warn().Msg("logging level not specified, using info")
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.PublicURL == "" {
		conf.PublicURL = fmt.Sprintf("http://%s", conf.ListenAddress)
		log.Warn().Str("address", conf.PublicURL).Msg("publicUrl not set, using listenAddress")
	}
	if conf.Redis == nil {
		log.Fatal().Msg("missing Redis configuration")
		return
	}
	if conf.Analysis == nil {
		conf.Analysis = &AnalysisConf{}
	}
	if conf.Analysis.DefaultEngine == "" {
		conf.Analysis.DefaultEngine = sva.DefaultEngine
		log.Warn().
			Str("engine", conf.Analysis.DefaultEngine).
			Msg("analysis engine not specified, using default")
	}
	if _, ok := sva.GetEngine(conf.Analysis.DefaultEngine); !ok {
		log.Fatal().
			Str("engine", conf.Analysis.DefaultEngine).
			Msg("unknown analysis engine")
		return
	}
	if conf.Analysis.MaxBatchSize == 0 {
		conf.Analysis.MaxBatchSize = dfltMaxBatchSize
		log.Warn().Msgf(
			"maxBatchSize not specified, using default: %d", dfltMaxBatchSize)
	}
	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().
			Str("timeZone", dfltTimeZone).
			Msg("time zone not specified, using default")
	}
	if _, err := time.LoadLocation(conf.TimeZone); err != nil {
		log.Fatal().Err(err).Msg("invalid time zone")
	}
}
