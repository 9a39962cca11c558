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
	"fmt"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type AutomationEventConsumer struct {
	svc      service.AutomationService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewAutomationEventConsumer(svc service.AutomationService, q mq.MQ) (*AutomationEventConsumer, error) {
	const groupID = "loyalty-automation"
	consumer, err := q.Consumer(TriggerEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &AutomationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *AutomationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费自动化触发事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *AutomationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	evt, err := unmarshal(msg.Value)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	fired, err := c.svc.Dispatch(ctx, evt.ToDomain())
	if err != nil {
		return fmt.Errorf("执行自动化规则失败 key=%s: %w", evt.Key, err)
	}
	if fired > 0 {
		c.logger.Info("自动化规则已发放卡券",
			elog.String("key", evt.Key), elog.Int("count", fired))
	}
	return nil
}
