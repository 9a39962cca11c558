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

package event

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const TriggerEventName = "loyalty_trigger_events"

// TriggerEvent order_paid 与 customer_created 共用一个 topic
type TriggerEvent struct {
	Type       string `json:"type"`
	StoreID    int64  `json:"storeId"`
	Key        string `json:"key"`
	OrderTotal int64  `json:"orderTotal"`
	MemberID   int64  `json:"memberId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
}

// MessageKey 同一个店铺的事件按顺序消费
func (e TriggerEvent) MessageKey() string {
	return strconv.FormatInt(e.StoreID, 10)
}

func NewTriggerEvent(evt domain.TriggerEvent) TriggerEvent {
	return TriggerEvent{
		Type:       string(evt.Type),
		StoreID:    evt.StoreID,
		Key:        evt.Key,
		OrderTotal: evt.OrderTotal,
		MemberID:   evt.MemberID,
		Email:      evt.Email,
		Name:       evt.Name,
	}
}

func (e TriggerEvent) ToDomain() domain.TriggerEvent {
	return domain.TriggerEvent{
		Type:       domain.TriggerType(e.Type),
		StoreID:    e.StoreID,
		Key:        e.Key,
		OrderTotal: e.OrderTotal,
		MemberID:   e.MemberID,
		Email:      e.Email,
		Name:       e.Name,
	}
}

//go:generate mockgen -source=./event.go -package=evtmocks -destination=./mocks/event.mock.go -typed TriggerEventProducer
type TriggerEventProducer interface {
	Produce(ctx context.Context, evt domain.TriggerEvent) error
}

type triggerEventProducer struct {
	producer mqx.Producer[TriggerEvent]
}

func NewTriggerEventProducer(q mq.MQ) (TriggerEventProducer, error) {
	p, err := mqx.NewGeneralProducer[TriggerEvent](q, TriggerEventName)
	if err != nil {
		return nil, err
	}
	return &triggerEventProducer{producer: p}, nil
}

func (p *triggerEventProducer) Produce(ctx context.Context, evt domain.TriggerEvent) error {
	return p.producer.Produce(ctx, NewTriggerEvent(evt))
}

func unmarshal(data []byte) (TriggerEvent, error) {
	var evt TriggerEvent
	err := json.Unmarshal(data, &evt)
	return evt, err
}
