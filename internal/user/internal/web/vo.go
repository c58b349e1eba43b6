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

package web

import "github.com/ecodeclub/emall/internal/user/internal/domain"

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type NewsletterReq struct {
	Subscribed bool `json:"subscribed"`
}

type AddressSaveReq struct {
	Address Address `json:"address"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Profile struct {
	Id         int64  `json:"id"`
	SN         string `json:"sn"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Name       string `json:"name"`
	Newsletter bool   `json:"newsletter"`
	IsAdmin    bool   `json:"isAdmin,omitempty"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:         u.Id,
		SN:         u.SN,
		Email:      u.Email,
		Phone:      u.Phone,
		Name:       u.Name,
		Newsletter: u.Newsletter,
		IsAdmin:    u.Role.IsAdmin(),
	}
}

type Address struct {
	Id        int64  `json:"id"`
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

func newAddress(a domain.Address) Address {
	return Address{
		Id:        a.Id,
		Recipient: a.Recipient,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
	}
}

func (a Address) toDomain(uid int64) domain.Address {
	return domain.Address{
		Id:        a.Id,
		Uid:       uid,
		Recipient: a.Recipient,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
	}
}

type AddressListResp struct {
	Addresses []Address `json:"addresses"`
}

type SaveResp struct {
	ID int64 `json:"id"`
}

type ListResp struct {
	Total int64     `json:"total"`
	Users []Profile `json:"users"`
}
