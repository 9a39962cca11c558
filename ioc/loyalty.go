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

package ioc

import (
	"context"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/loyalty/config"
	"github.com/ecodeclub/loyalty/internal/email"
	"github.com/ecodeclub/loyalty/internal/email/aliyun"
	"github.com/ecodeclub/loyalty/internal/loyalty"
	"github.com/ecodeclub/loyalty/internal/objstore"
	"github.com/ecodeclub/loyalty/internal/objstore/s3"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitLoyaltyConfig() config.LoyaltyConfig {
	var cfg config.LoyaltyConfig
	err := econf.UnmarshalKey("loyalty", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg.Default()
}

func InitMailer() email.Service {
	var cfg aliyun.Config
	err := econf.UnmarshalKey("email.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := aliyun.NewDirectMail(cfg)
	if err != nil {
		panic(err)
	}
	return svc
}

func InitObjectStore() objstore.Store {
	var cfg s3.Config
	err := econf.UnmarshalKey("objstore.s3", &cfg)
	if err != nil {
		panic(err)
	}
	store, err := s3.NewStore(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	return store
}

func InitLoyaltyModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	mailer email.Service,
	files objstore.Store,
	cfg config.LoyaltyConfig) *loyalty.Module {
	m, err := loyalty.InitModule(db, ec, q, mailer, files, cfg)
	if err != nil {
		panic(err)
	}
	return m
}
