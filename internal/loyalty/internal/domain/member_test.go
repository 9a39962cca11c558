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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		want  bool
	}{
		{email: "a@b.com", want: true},
		{email: "a.b+tag@shop.io", want: true},
		{email: "ab.com", want: false},
		{email: "@b.com", want: false},
		{email: "a@", want: false},
		{email: "a b@c.com", want: false},
		{email: "", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidEmail(tc.email))
		})
	}
}

func TestMember_DisplayName(t *testing.T) {
	assert.Equal(t, "Ann", Member{Name: "Ann", Email: "ann@x.com"}.DisplayName())
	assert.Equal(t, "ann", Member{Email: "ann@x.com"}.DisplayName())
	assert.Equal(t, "ann@x.com", NormalizeEmail("  Ann@X.com "))
}
