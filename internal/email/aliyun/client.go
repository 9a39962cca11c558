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

package aliyun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	"github.com/alibabacloud-go/tea/tea"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	credential "github.com/aliyun/credentials-go/credentials"
	"github.com/ecodeclub/loyalty/internal/email"
)

const defaultEndpoint = "dm.aliyuncs.com"

type Config struct {
	AccessKeyID     string `yaml:"accessKeyID"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	// AccountName 控制台配置的发信地址
	AccountName string `yaml:"accountName"`
	Endpoint    string `yaml:"endpoint"`
}

// DirectMail 阿里云邮件推送
type DirectMail struct {
	client      *dm20151123.Client
	accountName string
}

func NewDirectMail(cfg Config) (*DirectMail, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}
	return &DirectMail{client: client, accountName: cfg.AccountName}, nil
}

func (d *DirectMail) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName:    tea.String(d.accountName),
		FromAlias:      tea.String(mail.From),
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	for i := range mail.Attachments {
		a := &mail.Attachments[i]
		if len(a.Content) == 0 {
			continue
		}
		att := &dm20151123.SingleSendMailAdvanceRequestAttachments{}
		att.SetAttachmentName(a.Filename)
		att.SetAttachmentUrlObject(bytes.NewReader(a.Content))
		req.Attachments = append(req.Attachments, att)
	}
	_, err := d.client.SingleSendMailAdvance(req, &util.RuntimeOptions{})
	if err != nil {
		return d.wrapError(err)
	}
	return nil
}

func (d *DirectMail) wrapError(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("阿里云邮件推送失败: ")
	sb.WriteString(tea.StringValue(sdkErr.Message))
	var data map[string]any
	if sdkErr.Data != nil && json.Unmarshal([]byte(tea.StringValue(sdkErr.Data)), &data) == nil {
		if v, ok := data["RequestId"]; ok {
			sb.WriteString(fmt.Sprintf(" | RequestId: %v", v))
		}
	}
	return errors.New(sb.String())
}
