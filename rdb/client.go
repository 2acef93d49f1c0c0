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

// Package rdb provides the Redis-backed job queue connecting the API
// server with analysis workers. The server enqueues a query and
// subscribes to a per-query result channel; a worker pops the query,
// stores the result under the channel key and publishes a wake-up.
package rdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"svan/rdb/results"
	"svan/serror"
)

const (
	MsgNewQuery                = "newQuery"
	MsgNewResult               = "newResult"
	DefaultQueueKey            = "svanQueue"
	DefaultResultChannelPrefix = "svanResults"
	DefaultQueryChannel        = "svanQueries"
	DefaultResultExpiration    = 10 * time.Minute
	DefaultQueryAnswerTimeout  = 60 * time.Second

	jobLogKey    = "svanJobLog"
	jobLogMaxLen = 100
)

var (
	ErrorEmptyQueue = errors.New("no queries in the queue")
)

type Query struct {
	Channel string          `json:"channel"`
	Func    string          `json:"func"`
	Args    json.RawMessage `json:"args"`
}

func (q Query) ToJSON() (string, error) {
	ans, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

func DecodeQuery(q string) (Query, error) {
	var ans Query
	err := json.Unmarshal([]byte(q), &ans)
	return ans, err
}

// Adapter provides access to the Redis queue and result storage.
type Adapter struct {
	ctx                 context.Context
	c                   *redis.Client
	channelQuery        string
	channelResultPrefix string
	queryAnswerTimeout  time.Duration
	cachePath           string
}

func (a *Adapter) TestConnection(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(a.ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		err := a.c.Ping(a.ctx).Err()
		if err == nil {
			return nil
		}
		log.Warn().Err(err).Msg("waiting for Redis connection...")
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to Redis within %s", timeout)
		case <-ticker.C:
		}
	}
}

func (a *Adapter) SomeoneListens(query Query) (bool, error) {
	cmd := a.c.PubSubNumSub(a.ctx, query.Channel)
	if cmd.Err() != nil {
		return false, fmt.Errorf("failed to check channel listeners: %w", cmd.Err())
	}
	return cmd.Val()[query.Channel] > 0, nil
}

// PublishQuery enqueues the query and returns a channel the caller
// receives the result on. The channel always yields exactly one item;
// if no worker answers within the configured timeout a timeout error
// result is delivered instead.
func (a *Adapter) PublishQuery(query Query) (<-chan *WorkerResult, error) {
	query.Channel = fmt.Sprintf("%s:%s", a.channelResultPrefix, uuid.New().String())
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("publishing query")

	msg, err := query.ToJSON()
	if err != nil {
		return nil, err
	}
	if err := a.c.LPush(a.ctx, DefaultQueueKey, msg).Err(); err != nil {
		return nil, err
	}
	sub := a.c.Subscribe(a.ctx, query.Channel)
	ans := make(chan *WorkerResult)

	go func() {
		defer func() {
			sub.Close()
			close(ans)
		}()
		result := new(WorkerResult)
		select {
		case item := <-sub.Channel():
			cmd := a.c.Get(a.ctx, item.Payload)
			if cmd.Err() != nil {
				result.AttachValue(&results.ErrorResult{
					Func:  query.Func,
					Error: cmd.Err().Error(),
				})

			} else if err := json.Unmarshal([]byte(cmd.Val()), result); err != nil {
				result.AttachValue(&results.ErrorResult{
					Func:  query.Func,
					Error: err.Error(),
				})
			}
		case <-time.After(a.queryAnswerTimeout):
			timeoutErr := serror.TimeoutError{
				Msg: fmt.Sprintf("no worker answered within %s", a.queryAnswerTimeout),
			}
			result.AttachValue(&results.ErrorResult{
				Func:  query.Func,
				Error: timeoutErr.Error(),
			})
		}
		ans <- result
	}()
	return ans, a.c.Publish(a.ctx, a.channelQuery, MsgNewQuery).Err()
}

func (a *Adapter) DequeueQuery() (Query, error) {
	cmd := a.c.RPop(a.ctx, DefaultQueueKey)
	if cmd.Err() == redis.Nil {
		return Query{}, ErrorEmptyQueue

	} else if cmd.Err() != nil {
		return Query{}, fmt.Errorf("failed to dequeue query: %w", cmd.Err())
	}
	q, err := DecodeQuery(cmd.Val())
	if err != nil {
		return Query{}, fmt.Errorf("failed to deserialize query: %w", err)
	}
	return q, nil
}

func (a *Adapter) PublishResult(channelName string, value *WorkerResult) error {
	log.Debug().
		Str("channel", channelName).
		Str("resultType", value.ResultType.String()).
		Msg("publishing result")
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	a.c.Set(a.ctx, channelName, string(data), DefaultResultExpiration)
	return a.c.Publish(a.ctx, channelName, channelName).Err()
}

func (a *Adapter) Subscribe() <-chan *redis.Message {
	sub := a.c.Subscribe(a.ctx, a.channelQuery)
	return sub.Channel()
}

// PushJobLog prepends a finished job record to a capped Redis list so
// the API server can report worker activity across processes.
func (a *Adapter) PushJobLog(rec results.JobLog) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize job log: %w", err)
	}
	if err := a.c.LPush(a.ctx, jobLogKey, string(data)).Err(); err != nil {
		return fmt.Errorf("failed to push job log: %w", err)
	}
	return a.c.LTrim(a.ctx, jobLogKey, 0, jobLogMaxLen-1).Err()
}

// RecentJobLogs returns the stored job records, most recent first.
func (a *Adapter) RecentJobLogs() ([]results.JobLog, error) {
	cmd := a.c.LRange(a.ctx, jobLogKey, 0, -1)
	if cmd.Err() != nil {
		return nil, fmt.Errorf("failed to fetch job logs: %w", cmd.Err())
	}
	ans := make([]results.JobLog, 0, len(cmd.Val()))
	for _, item := range cmd.Val() {
		var rec results.JobLog
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to deserialize job log: %w", err)
		}
		ans = append(ans, rec)
	}
	return ans, nil
}

func NewAdapter(conf *Conf, ctx context.Context) *Adapter {
	chRes := conf.ChannelResultPrefix
	chQuery := conf.ChannelQuery
	if chRes == "" {
		chRes = DefaultResultChannelPrefix
		log.Warn().
			Str("channel", chRes).
			Msg("Redis channel for results not specified, using default")
	}
	if chQuery == "" {
		chQuery = DefaultQueryChannel
		log.Warn().
			Str("channel", chQuery).
			Msg("Redis channel for queries not specified, using default")
	}
	answerTimeout := time.Duration(conf.QueryAnswerTimeoutSecs) * time.Second
	if answerTimeout == 0 {
		answerTimeout = DefaultQueryAnswerTimeout
		log.Warn().
			Dur("timeout", answerTimeout).
			Msg("queryAnswerTimeoutSecs not specified, using default")
	}

	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:                 ctx,
		channelQuery:        chQuery,
		channelResultPrefix: chRes,
		queryAnswerTimeout:  answerTimeout,
		cachePath:           conf.CachePath,
	}
}
