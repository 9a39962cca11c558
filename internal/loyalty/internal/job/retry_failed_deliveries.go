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

package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*RetryFailedDeliveriesJob)(nil)

// RetryFailedDeliveriesJob 重新投递失败的卡券
type RetryFailedDeliveriesJob struct {
	svc    service.DeliveryService
	logger *elog.Component
}

func NewRetryFailedDeliveriesJob(svc service.DeliveryService) *RetryFailedDeliveriesJob {
	return &RetryFailedDeliveriesJob{svc: svc, logger: elog.DefaultLogger}
}

func (j *RetryFailedDeliveriesJob) Name() string {
	return "RetryFailedDeliveriesJob"
}

func (j *RetryFailedDeliveriesJob) Run(ctx context.Context) error {
	n, err := j.svc.RetryFailed(ctx)
	if err != nil {
		return fmt.Errorf("重新投递卡券失败: %w", err)
	}
	if n > 0 {
		j.logger.Info("重新投递卡券成功", elog.Int("count", n))
	}
	return nil
}
