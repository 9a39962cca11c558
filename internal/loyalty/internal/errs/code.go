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

package errs

var (
	InvalidInputError      = ErrorCode{Code: 421001, Msg: "参数错误"}
	StoreNotFoundError     = ErrorCode{Code: 421002, Msg: "店铺不存在"}
	CardNotFoundError      = ErrorCode{Code: 421003, Msg: "卡券不存在"}
	CardUnavailableError   = ErrorCode{Code: 421004, Msg: "卡券已停用"}
	QuotaExceededError     = ErrorCode{Code: 421005, Msg: "会员数量超出套餐限制"}
	MemberExistsError      = ErrorCode{Code: 421006, Msg: "会员已存在"}
	MemberNotFoundError    = ErrorCode{Code: 421007, Msg: "会员不存在"}
	RuleNotFoundError      = ErrorCode{Code: 421008, Msg: "自动化规则不存在"}
	RuleNotManualError     = ErrorCode{Code: 421009, Msg: "只能手动触发 manual 规则"}
	SecretImmutableError   = ErrorCode{Code: 421010, Msg: "Webhook 密钥不可修改"}
	MissingHeadersError    = ErrorCode{Code: 421011, Msg: "缺少签名或店铺域名"}
	InvalidSignatureError  = ErrorCode{Code: 421012, Msg: "签名校验失败"}
	InvalidPayloadError    = ErrorCode{Code: 421013, Msg: "请求体格式错误"}
	TooManyRowsError       = ErrorCode{Code: 421014, Msg: "导入行数超出限制"}
	StoreNotConnectedError = ErrorCode{Code: 421015, Msg: "尚未绑定店铺"}
	RuleInactiveError      = ErrorCode{Code: 421016, Msg: "自动化规则已停用"}
	StoreOwnedError        = ErrorCode{Code: 421017, Msg: "店铺已被其他商家绑定"}

	SystemError = ErrorCode{Code: 521001, Msg: "系统错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
