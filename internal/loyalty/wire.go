//go:build wireinject

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
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/loyalty/config"
	"github.com/ecodeclub/loyalty/internal/email"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/event"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/job"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/cache"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/repository/dao"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/service"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/web"
	"github.com/ecodeclub/loyalty/internal/objstore"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var daoSet = wire.NewSet(
	initStoreDAO,
	dao.NewGORMMemberDAO,
	dao.NewGORMCardDAO,
	dao.NewGORMCodeDAO,
	dao.NewGORMAutomationDAO,
	dao.NewGORMSendTaskDAO,
	cache.NewStoreCache,
)

var repositorySet = wire.NewSet(
	repository.NewStoreRepository,
	repository.NewMemberRepository,
	repository.NewCardRepository,
	repository.NewCodeRepository,
	repository.NewAutomationRepository,
	repository.NewSendTaskRepository,
)

var serviceSet = wire.NewSet(
	service.NewQuotaEnforcer,
	service.NewCodeIssuer,
	service.NewPassIssuer,
	service.NewDeliveryService,
	service.NewImportService,
	service.NewRedemptionLedger,
	service.NewWebhookGateway,
	service.NewAutomationService,
	service.NewStoreService,
	service.NewMemberService,
	service.NewCardService,
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	mailer email.Service,
	files objstore.Store,
	cfg config.LoyaltyConfig) (*Module, error) {
	wire.Build(
		daoSet,
		repositorySet,
		serviceSet,
		event.NewTriggerEventProducer,
		initAutomationConsumer,
		job.NewRetryFailedDeliveriesJob,
		web.NewHandler,
		web.NewWebhookHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

// initStoreDAO 顺带完成建表
func initStoreDAO(db *egorm.Component) dao.StoreDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMStoreDAO(db)
}

func initAutomationConsumer(svc service.AutomationService, q mq.MQ) (*event.AutomationEventConsumer, error) {
	c, err := event.NewAutomationEventConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	c.Start(context.Background())
	return c, nil
}
