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

package domain

type SendTaskStatus string

const (
	SendTaskStatusPending SendTaskStatus = "pending"
	SendTaskStatusSent    SendTaskStatus = "sent"
	SendTaskStatusFailed  SendTaskStatus = "failed"
)

// SendTask 一次卡券投递，Key 在全局唯一
type SendTask struct {
	ID      int64
	StoreID int64
	// AutomationID 导入产生的任务为 0
	AutomationID int64
	MemberID     int64
	CodeID       int64
	Key          string
	Status       SendTaskStatus
	PassURL      string
	ErrorMessage string
	RetryCount   int
	SentAt       int64
	Ctime        int64
	Utime        int64
}
