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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/loyalty/internal/pkg/mqx"

// TracingMQ 为发送消息打点，消费端不做处理
type TracingMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTracingMQ(q mq.MQ) *TracingMQ {
	return &TracingMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TracingMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &tracingProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type tracingProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (p *tracingProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := p.tracer.Start(ctx, "mq.produce "+p.topic, trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.destination.name", p.topic),
		attribute.Int("messaging.message.body.size", len(m.Value)),
		attribute.Bool("messaging.message.keyed", len(m.Key) > 0),
	)
	res, err := p.Producer.Produce(ctx, m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}
