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

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/ecodeclub/loyalty/config"
	"github.com/ecodeclub/loyalty/internal/email"
	"github.com/ecodeclub/loyalty/internal/loyalty/internal/domain"
	"github.com/ecodeclub/loyalty/internal/objstore"
)

const passContentType = "application/json"

var passMailTemplate = template.Must(template.New("pass").Parse(`<p>Hi {{.Name}},</p>
<p>{{.Organization}} sent you <strong>{{.Headline}}</strong>.</p>
<p>Your code: <strong>{{.Code}}</strong></p>
{{if .Expires}}<p>Valid until {{.Expires}}.</p>{{end}}
<p><a href="{{.URL}}">Add to wallet</a></p>`))

//go:generate mockgen -source=./pass_issuer.go -package=svcmocks -destination=./mocks/pass_issuer.mock.go -typed PassIssuer
// PassIssuer 构建并投递钱包卡券
type PassIssuer interface {
	// BuildPass 不访问外部资源
	BuildPass(member domain.Member, code domain.DiscountCode, card domain.Card, brand domain.Brand) domain.PassDescriptor
	// Deliver 上传卡券文件并发送邮件，返回卡券地址
	Deliver(ctx context.Context, member domain.Member, pass domain.PassDescriptor) (string, error)
}

type passIssuer struct {
	files  objstore.Store
	mailer email.Service
	cfg    config.PassConfig
}

func NewPassIssuer(files objstore.Store, mailer email.Service, cfg config.LoyaltyConfig) PassIssuer {
	return &passIssuer{files: files, mailer: mailer, cfg: cfg.Default().Pass}
}

func (p *passIssuer) BuildPass(member domain.Member, code domain.DiscountCode, card domain.Card, brand domain.Brand) domain.PassDescriptor {
	return domain.PassDescriptor{
		SerialNumber:     fmt.Sprintf("%d-%s", code.StoreID, code.Code),
		OrganizationName: brand.Name,
		Description:      card.Name,
		Headline:         card.Headline(),
		Code:             code.Code,
		MemberName:       member.DisplayName(),
		MemberEmail:      member.Email,
		Terms:            p.cfg.Terms,
		BackgroundColor:  brand.BackgroundColor,
		ForegroundColor:  brand.ForegroundColor,
		Barcode: domain.Barcode{
			Format:  domain.BarcodeFormatQR,
			Message: code.Code,
		},
		ExpiresAt: code.ExpiresAt,
	}
}

func (p *passIssuer) Deliver(ctx context.Context, member domain.Member, pass domain.PassDescriptor) (string, error) {
	data, err := p.encode(pass)
	if err != nil {
		return "", err
	}
	url, err := p.files.Put(ctx, fmt.Sprintf("%s/%s.json", p.cfg.KeyPrefix, pass.SerialNumber), data, passContentType)
	if err != nil {
		return "", err
	}
	body, err := p.mailBody(pass, url)
	if err != nil {
		return "", err
	}
	err = p.mailer.SendMail(ctx, email.Mail{
		From:    pass.OrganizationName,
		To:      member.Email,
		Subject: fmt.Sprintf("Your %s from %s", pass.Headline, pass.OrganizationName),
		Body:    body,
		Attachments: []email.Attachment{
			{Filename: "pass.json", Content: data, URL: url},
		},
	})
	if err != nil {
		return "", fmt.Errorf("发送卡券邮件失败: %w", err)
	}
	return url, nil
}

func (p *passIssuer) mailBody(pass domain.PassDescriptor, url string) ([]byte, error) {
	var expires string
	if pass.ExpiresAt > 0 {
		expires = time.UnixMilli(pass.ExpiresAt).UTC().Format("2006-01-02")
	}
	var buf bytes.Buffer
	err := passMailTemplate.Execute(&buf, map[string]string{
		"Name":         pass.MemberName,
		"Organization": pass.OrganizationName,
		"Headline":     pass.Headline,
		"Code":         pass.Code,
		"Expires":      expires,
		"URL":          url,
	})
	if err != nil {
		return nil, fmt.Errorf("渲染卡券邮件失败: %w", err)
	}
	return buf.Bytes(), nil
}

type walletPass struct {
	FormatVersion      int             `json:"formatVersion"`
	PassTypeIdentifier string          `json:"passTypeIdentifier"`
	TeamIdentifier     string          `json:"teamIdentifier,omitempty"`
	SerialNumber       string          `json:"serialNumber"`
	OrganizationName   string          `json:"organizationName"`
	Description        string          `json:"description"`
	BackgroundColor    string          `json:"backgroundColor,omitempty"`
	ForegroundColor    string          `json:"foregroundColor,omitempty"`
	ExpirationDate     string          `json:"expirationDate,omitempty"`
	Barcodes           []walletBarcode `json:"barcodes"`
	Generic            walletFields    `json:"generic"`
}

type walletBarcode struct {
	Format          string `json:"format"`
	Message         string `json:"message"`
	MessageEncoding string `json:"messageEncoding"`
}

type walletFields struct {
	PrimaryFields   []walletField `json:"primaryFields"`
	SecondaryFields []walletField `json:"secondaryFields"`
	AuxiliaryFields []walletField `json:"auxiliaryFields"`
	BackFields      []walletField `json:"backFields"`
}

type walletField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (p *passIssuer) encode(pass domain.PassDescriptor) ([]byte, error) {
	wp := walletPass{
		FormatVersion:      1,
		PassTypeIdentifier: p.cfg.PassTypeIdentifier,
		TeamIdentifier:     p.cfg.TeamIdentifier,
		SerialNumber:       pass.SerialNumber,
		OrganizationName:   pass.OrganizationName,
		Description:        pass.Description,
		BackgroundColor:    pass.BackgroundColor,
		ForegroundColor:    pass.ForegroundColor,
		Barcodes: []walletBarcode{{
			Format:          pass.Barcode.Format,
			Message:         pass.Barcode.Message,
			MessageEncoding: "iso-8859-1",
		}},
		Generic: walletFields{
			PrimaryFields:   []walletField{{Key: "offer", Label: "OFFER", Value: pass.Headline}},
			SecondaryFields: []walletField{{Key: "code", Label: "CODE", Value: pass.Code}},
			AuxiliaryFields: []walletField{{Key: "member", Label: "MEMBER", Value: pass.MemberName}},
			BackFields: []walletField{
				{Key: "terms", Label: "Terms", Value: pass.Terms},
				{Key: "email", Label: "Email", Value: pass.MemberEmail},
			},
		},
	}
	if pass.ExpiresAt > 0 {
		wp.ExpirationDate = time.UnixMilli(pass.ExpiresAt).UTC().Format(time.RFC3339)
	}
	data, err := json.Marshal(wp)
	if err != nil {
		return nil, fmt.Errorf("序列化卡券失败: %w", err)
	}
	return data, nil
}
