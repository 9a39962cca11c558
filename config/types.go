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

package config

import "time"

// LoyaltyConfig 对应配置文件中的 loyalty 节点
type LoyaltyConfig struct {
	Import   ImportConfig     `yaml:"import"`
	Plans    map[string]int64 `yaml:"plans"`
	Pass     PassConfig       `yaml:"pass"`
	Delivery DeliveryConfig   `yaml:"delivery"`
}

type ImportConfig struct {
	Workers int `yaml:"workers"`
	// Timeout 例如 5m，超时之后尚未开始处理的行记为失败
	Timeout string `yaml:"timeout"`
	MaxRows int    `yaml:"maxRows"`
}

func (c ImportConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

type PassConfig struct {
	PassTypeIdentifier string `yaml:"passTypeIdentifier"`
	TeamIdentifier     string `yaml:"teamIdentifier"`
	// KeyPrefix 卡券文件在对象存储中的目录
	KeyPrefix string `yaml:"keyPrefix"`
	Terms     string `yaml:"terms"`
}

type DeliveryConfig struct {
	MaxRetries int `yaml:"maxRetries"`
	BatchSize  int `yaml:"batchSize"`
	// PendingTimeout 超过这个时间仍未投递的任务视为中断，由重试任务接管
	PendingTimeout string `yaml:"pendingTimeout"`
}

func (c DeliveryConfig) PendingTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.PendingTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

// Default 未配置的字段使用默认值
func (c LoyaltyConfig) Default() LoyaltyConfig {
	if c.Import.Workers <= 0 {
		c.Import.Workers = 4
	}
	if c.Import.MaxRows <= 0 {
		c.Import.MaxRows = 1000
	}
	if c.Delivery.MaxRetries <= 0 {
		c.Delivery.MaxRetries = 3
	}
	if c.Delivery.BatchSize <= 0 {
		c.Delivery.BatchSize = 100
	}
	if c.Pass.KeyPrefix == "" {
		c.Pass.KeyPrefix = "passes"
	}
	plans := map[string]int64{"free": 50, "base": 50, "pro": 250}
	for k, v := range c.Plans {
		plans[k] = v
	}
	c.Plans = plans
	return c
}
