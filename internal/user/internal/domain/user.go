// Copyright 2024 ecodeclub
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

type Role uint8

const (
	RoleMember Role = 1
	RoleAdmin  Role = 2
)

func (r Role) ToUint8() uint8 {
	return uint8(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	Id    int64
	SN    string
	Email string
	Phone string
	Name  string
	// PasswordHash 只在注册和登录路径上填充,对外的查询不返回
	PasswordHash string
	Role         Role
	// Newsletter 是否订阅了营销邮件
	Newsletter bool
	Ctime      int64
}

// Address 用户收货地址,下单时快照到订单上
type Address struct {
	Id        int64
	Uid       int64
	Recipient string
	Phone     string
	Street    string
	City      string
	Province  string
	Zip       string
	Country   string
}

// RecipientRule 营销圈选收件人的规则
type RecipientRule string

const (
	// RecipientAll 全部用户
	RecipientAll RecipientRule = "all"
	// RecipientNewsletter 订阅了营销邮件的用户
	RecipientNewsletter RecipientRule = "newsletter"
	// RecipientCustomers 下过单的用户
	RecipientCustomers RecipientRule = "customers"
)
