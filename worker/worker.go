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

// Package worker implements the analysis job worker. A worker blocks
// on the query channel and a backup ticker, pops queries from the
// Redis queue and publishes results to per-query channels.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"svan/rdb"
	"svan/rdb/results"
	"svan/serror"
)

const (
	DefaultTickerInterval = 2 * time.Second
)

type jobLogger interface {
	Log(rec results.JobLog)
}

type Worker struct {
	ID         string
	messages   <-chan *redis.Message
	radapter   *rdb.Adapter
	ticker     *time.Ticker
	jobLogger  jobLogger
	currJobLog *results.JobLog
}

func (w *Worker) publishResult(res results.FuncResult, channel string) error {
	ans, err := rdb.CreateWorkerResult(res)
	if err != nil {
		return err
	}
	ans.ProcEnd = time.Now()
	if w.currJobLog != nil {
		ans.ProcBegin = w.currJobLog.Begin
		w.currJobLog.End = ans.ProcEnd
		w.currJobLog.Err = res.Err()
		w.jobLogger.Log(*w.currJobLog)
		w.currJobLog = nil
	}
	return w.radapter.PublishResult(channel, ans)
}

func (w *Worker) sendPublishingErr(query rdb.Query, err error) {
	ans := &results.ErrorResult{Func: query.Func, Error: err.Error()}
	if err := w.publishResult(ans, query.Channel); err != nil {
		log.Error().Err(err).Msg("failed to publish general publishing error")
	}
}

func (w *Worker) runQueryProtected(query rdb.Query) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = serror.RecoveredError{Msg: serror.PanicValueToErr(r).Error()}
		}
	}()
	switch query.Func {
	case rdb.FuncAnalyzeSentence:
		var args rdb.AnalysisArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.analyzeSentence(args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	case rdb.FuncAnalyzeDocument:
		var args rdb.DocumentArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.analyzeDocument(args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	default:
		ans := &results.ErrorResult{
			Func:  query.Func,
			Error: fmt.Sprintf("unknown query function: %s", query.Func),
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) tryNextQuery() error {
	// a short random nap spreads the load between concurrent workers
	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			Msg("worker found an inactive query")
		return nil
	}

	w.currJobLog = &results.JobLog{
		WorkerID: w.ID,
		Func:     query.Func,
		Begin:    time.Now(),
	}

	err = w.runQueryProtected(query)
	var rcvErr serror.RecoveredError
	if errors.As(err, &rcvErr) {
		ans := &results.ErrorResult{
			Error: fmt.Sprintf("worker panicked: %s", rcvErr.Error()),
			Func:  query.Func,
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) listen(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker exiting")
			return
		case <-w.ticker.C:
			if err := w.tryNextQuery(); err != nil {
				log.Error().Err(err).Msg("failed to process query")
			}
		case msg := <-w.messages:
			if msg != nil && msg.Payload == rdb.MsgNewQuery {
				if err := w.tryNextQuery(); err != nil {
					log.Error().Err(err).Msg("failed to process query")
				}
			}
		}
	}
}

func (w *Worker) Start(ctx context.Context) {
	log.Info().Str("worker", w.ID).Msg("starting worker")
	go w.listen(ctx)
}

func (w *Worker) Stop(ctx context.Context) error {
	log.Warn().Str("worker", w.ID).Msg("shutting down worker")
	w.ticker.Stop()
	return nil
}

func NewWorker(
	workerID string,
	radapter *rdb.Adapter,
	messages <-chan *redis.Message,
	jobLogger jobLogger,
) *Worker {
	return &Worker{
		ID:        workerID,
		radapter:  radapter,
		messages:  messages,
		ticker:    time.NewTicker(DefaultTickerInterval),
		jobLogger: jobLogger,
	}
}
