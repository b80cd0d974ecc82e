// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trade-dash/models"
)

func TestEncode_Requests(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{name: "authorize", req: NewAuthorizeRequest("a1-token", 1), want: `{"authorize":"a1-token","req_id":1}`},
		{name: "account list", req: NewAccountListRequest(2), want: `{"account_list":1,"req_id":2}`},
		{name: "balance", req: NewBalanceRequest("CR100", 3), want: `{"balance":1,"account":"CR100","req_id":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestDecode_Authorize(t *testing.T) {
	resp, err := Decode([]byte(`{
		"msg_type": "authorize",
		"req_id": 1,
		"echo_req": {"authorize": "<not shown>", "req_id": 1},
		"authorize": {
			"loginid": "CR100",
			"email": "trader@example.com",
			"fullname": "Mr Trader",
			"country": "id",
			"currency": "USD",
			"landing_company_name": "svg",
			"scopes": ["read", "trade"],
			"user_id": 42,
			"is_virtual": 0,
			"account_list": [{"loginid": "CR100"}]
		}
	}`))
	require.NoError(t, err)

	auth, ok := resp.(*AuthorizeResponse)
	require.True(t, ok)
	assert.Equal(t, MsgAuthorize, auth.Type())
	assert.Equal(t, 1, auth.Meta().ReqID)
	assert.Nil(t, auth.Error)
	assert.Equal(t, models.UserInfo{
		LoginID:            "CR100",
		Email:              "trader@example.com",
		FullName:           "Mr Trader",
		Country:            "id",
		Currency:           "USD",
		LandingCompanyName: "svg",
		Scopes:             []string{"read", "trade"},
		UserID:             42,
	}, auth.Authorize.UserInfo())
}

func TestDecode_AccountList(t *testing.T) {
	resp, err := Decode([]byte(`{
		"msg_type": "account_list",
		"req_id": 2,
		"account_list": [
			{"loginid": "CR100", "currency": "USD", "is_virtual": 0},
			{"loginid": "VRTC200", "currency": "USD", "is_virtual": 1}
		]
	}`))
	require.NoError(t, err)

	list, ok := resp.(*AccountListResponse)
	require.True(t, ok)
	require.Len(t, list.AccountList, 2)
	assert.Equal(t, models.Account{LoginID: "CR100", Kind: models.AccountKindReal, Currency: "USD"}, list.AccountList[0].Account())
	assert.Equal(t, models.AccountKindDemo, list.AccountList[1].Account().Kind)
}

func TestDecode_Balance(t *testing.T) {
	resp, err := Decode([]byte(`{
		"msg_type": "balance",
		"req_id": 3,
		"echo_req": {"balance": 1, "account": "CR100", "req_id": 3},
		"balance": {"balance": 10000.25, "currency": "USD", "loginid": "CR100"}
	}`))
	require.NoError(t, err)

	bal, ok := resp.(*BalanceResponse)
	require.True(t, ok)
	assert.Equal(t, "CR100", bal.EchoReq.Account)
	assert.Equal(t, "CR100", bal.Balance.LoginID)
	assert.True(t, bal.Balance.Balance.Equal(decimal.RequireFromString("10000.25")))
}

func TestDecode_ErrorResponseHasNoPayload(t *testing.T) {
	resp, err := Decode([]byte(`{
		"msg_type": "authorize",
		"req_id": 1,
		"error": {"code": "InvalidToken", "message": "The token is invalid."}
	}`))
	require.NoError(t, err)

	meta := resp.Meta()
	require.NotNil(t, meta.Error)
	assert.Equal(t, "InvalidToken", meta.Error.Code)
	assert.Contains(t, meta.Error.Error(), "The token is invalid.")
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		frame   string
		wantErr error
	}{
		{name: "not json", frame: `not json`, wantErr: ErrMalformedMessage},
		{name: "unknown msg_type", frame: `{"msg_type":"tick","tick":{}}`, wantErr: ErrUnexpectedMessage},
		{name: "missing msg_type", frame: `{"req_id":1}`, wantErr: ErrUnexpectedMessage},
		{name: "unknown msg_type with error", frame: `{"error":{"code":"InputValidationFailed","message":"x"}}`, wantErr: ErrUnexpectedMessage},
		{name: "missing payload", frame: `{"msg_type":"balance","req_id":3}`, wantErr: ErrUnexpectedMessage},
		{name: "null payload", frame: `{"msg_type":"account_list","account_list":null}`, wantErr: ErrUnexpectedMessage},
		{name: "payload of wrong shape", frame: `{"msg_type":"account_list","account_list":{"loginid":"CR1"}}`, wantErr: ErrMalformedMessage},
		{name: "bad balance number", frame: `{"msg_type":"balance","balance":{"balance":"abc"}}`, wantErr: ErrMalformedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Decode([]byte(tt.frame))
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
