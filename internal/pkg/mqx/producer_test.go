// Copyright 2023 ecodeclub
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

package mqx

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainEvent struct {
	Name string `json:"name"`
}

type keyedEvent struct {
	Shop string `json:"shop"`
}

func (e keyedEvent) MessageKey() string {
	return e.Shop
}

func TestGeneralProducer_Produce(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, "plain", 1))
	require.NoError(t, q.CreateTopic(ctx, "keyed", 1))

	testCases := []struct {
		name      string
		topic     string
		produce   func(t *testing.T) error
		wantKey   string
		wantValue string
	}{
		{
			name:  "没有 key",
			topic: "plain",
			produce: func(t *testing.T) error {
				p, err := NewGeneralProducer[plainEvent](NewTracingMQ(q), "plain")
				require.NoError(t, err)
				return p.Produce(ctx, plainEvent{Name: "a"})
			},
			wantValue: `{"name":"a"}`,
		},
		{
			name:  "按 key 分区",
			topic: "keyed",
			produce: func(t *testing.T) error {
				p, err := NewGeneralProducer[keyedEvent](NewTracingMQ(q), "keyed")
				require.NoError(t, err)
				return p.Produce(ctx, keyedEvent{Shop: "12"})
			},
			wantKey:   "12",
			wantValue: `{"shop":"12"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			consumer, err := q.Consumer(tc.topic, "test")
			require.NoError(t, err)
			require.NoError(t, tc.produce(t))
			msg, err := consumer.Consume(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, string(msg.Key))
			assert.JSONEq(t, tc.wantValue, string(msg.Value))
		})
	}
}
