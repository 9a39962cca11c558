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

package loyalty

import (
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/job"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/web"
)

type (
	Handler                  = web.Handler
	WebhookHandler           = web.WebhookHandler
	ImportService            = service.ImportService
	AutomationService        = service.AutomationService
	RetryFailedDeliveriesJob = job.RetryFailedDeliveriesJob

	Store     = domain.Store
	ImportRow = domain.ImportRow
)
