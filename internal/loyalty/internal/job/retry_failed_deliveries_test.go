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
	"errors"
	"testing"

	svcmocks "github.com/ecodeclub/loyalty/internal/loyalty/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRetryFailedDeliveriesJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(svc *svcmocks.MockDeliveryService)
		wantErr bool
	}{
		{
			name: "重新投递成功",
			mock: func(svc *svcmocks.MockDeliveryService) {
				svc.EXPECT().RetryFailed(gomock.Any()).Return(3, nil)
			},
		},
		{
			name: "没有失败任务",
			mock: func(svc *svcmocks.MockDeliveryService) {
				svc.EXPECT().RetryFailed(gomock.Any()).Return(0, nil)
			},
		},
		{
			name: "查询失败任务出错",
			mock: func(svc *svcmocks.MockDeliveryService) {
				svc.EXPECT().RetryFailed(gomock.Any()).Return(0, errors.New("mock db error"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := svcmocks.NewMockDeliveryService(ctrl)
			tc.mock(svc)
			j := NewRetryFailedDeliveriesJob(svc)
			assert.Equal(t, "RetryFailedDeliveriesJob", j.Name())
			err := j.Run(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
