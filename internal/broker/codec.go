// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-trade-dash/models"
)

// MsgType is the discriminator carried by every broker response.
type MsgType string

const (
	MsgAuthorize   MsgType = "authorize"
	MsgAccountList MsgType = "account_list"
	MsgBalance     MsgType = "balance"
)

// Request is an outbound message.
type Request interface {
	RequestID() int
}

type AuthorizeRequest struct {
	Authorize string `json:"authorize"`
	ReqID     int    `json:"req_id"`
}

func (r AuthorizeRequest) RequestID() int { return r.ReqID }

type AccountListRequest struct {
	AccountList int `json:"account_list"`
	ReqID       int `json:"req_id"`
}

func (r AccountListRequest) RequestID() int { return r.ReqID }

type BalanceRequest struct {
	Balance int    `json:"balance"`
	Account string `json:"account"`
	ReqID   int    `json:"req_id"`
}

func (r BalanceRequest) RequestID() int { return r.ReqID }

func NewAuthorizeRequest(token string, reqID int) AuthorizeRequest {
	return AuthorizeRequest{Authorize: token, ReqID: reqID}
}

func NewAccountListRequest(reqID int) AccountListRequest {
	return AccountListRequest{AccountList: 1, ReqID: reqID}
}

func NewBalanceRequest(loginID string, reqID int) BalanceRequest {
	return BalanceRequest{Balance: 1, Account: loginID, ReqID: reqID}
}

// Response is one decoded inbound frame. The concrete type is one of
// *AuthorizeResponse, *AccountListResponse or *BalanceResponse.
type Response interface {
	Type() MsgType
	Meta() ResponseMeta
}

// EchoRequest is the subset of echo_req the client cares about.
type EchoRequest struct {
	Account string `json:"account,omitempty"`
}

// ResponseMeta holds the fields shared by every response.
type ResponseMeta struct {
	ReqID   int
	EchoReq EchoRequest
	// Error is set when the broker rejected the request; the payload is then
	// absent.
	Error *APIError
}

type AuthorizePayload struct {
	LoginID            string   `json:"loginid"`
	Email              string   `json:"email"`
	FullName           string   `json:"fullname"`
	Country            string   `json:"country"`
	Currency           string   `json:"currency"`
	LandingCompanyName string   `json:"landing_company_name"`
	PreferredLanguage  string   `json:"preferred_language"`
	Scopes             []string `json:"scopes"`
	UserID             int64    `json:"user_id"`
	IsVirtual          int      `json:"is_virtual"`
}

// UserInfo converts the payload into the persisted identity record.
func (p AuthorizePayload) UserInfo() models.UserInfo {
	return models.UserInfo{
		LoginID:            p.LoginID,
		Email:              p.Email,
		FullName:           p.FullName,
		Country:            p.Country,
		Currency:           p.Currency,
		LandingCompanyName: p.LandingCompanyName,
		PreferredLanguage:  p.PreferredLanguage,
		Scopes:             p.Scopes,
		UserID:             p.UserID,
		IsVirtual:          p.IsVirtual,
	}
}

type AccountListItem struct {
	LoginID            string `json:"loginid"`
	Currency           string `json:"currency"`
	IsVirtual          int    `json:"is_virtual"`
	IsDisabled         int    `json:"is_disabled"`
	AccountType        string `json:"account_type"`
	LandingCompanyName string `json:"landing_company_name"`
}

// Account converts the item into an Account Record without a balance.
func (i AccountListItem) Account() models.Account {
	return models.Account{
		LoginID:  i.LoginID,
		Kind:     models.AccountKindFromVirtual(i.IsVirtual),
		Currency: i.Currency,
	}
}

type BalancePayload struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	LoginID  string          `json:"loginid"`
}

type AuthorizeResponse struct {
	ResponseMeta
	Authorize AuthorizePayload
}

func (r *AuthorizeResponse) Type() MsgType      { return MsgAuthorize }
func (r *AuthorizeResponse) Meta() ResponseMeta { return r.ResponseMeta }

type AccountListResponse struct {
	ResponseMeta
	AccountList []AccountListItem
}

func (r *AccountListResponse) Type() MsgType      { return MsgAccountList }
func (r *AccountListResponse) Meta() ResponseMeta { return r.ResponseMeta }

type BalanceResponse struct {
	ResponseMeta
	Balance BalancePayload
}

func (r *BalanceResponse) Type() MsgType      { return MsgBalance }
func (r *BalanceResponse) Meta() ResponseMeta { return r.ResponseMeta }

type envelope struct {
	MsgType     MsgType         `json:"msg_type"`
	ReqID       int             `json:"req_id"`
	EchoReq     json.RawMessage `json:"echo_req"`
	Error       *APIError       `json:"error"`
	Authorize   json.RawMessage `json:"authorize"`
	AccountList json.RawMessage `json:"account_list"`
	Balance     json.RawMessage `json:"balance"`
}

// Decode parses one inbound frame.
func Decode(data []byte) (Response, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	meta := ResponseMeta{ReqID: env.ReqID, Error: env.Error}
	if len(env.EchoReq) > 0 && !isNull(env.EchoReq) {
		// echo_req mirrors whatever was sent, so only the account is kept
		if err := json.Unmarshal(env.EchoReq, &meta.EchoReq); err != nil {
			return nil, fmt.Errorf("%w: echo_req: %w", ErrMalformedMessage, err)
		}
	}

	var (
		resp    Response
		raw     json.RawMessage
		payload any
	)
	switch env.MsgType {
	case MsgAuthorize:
		r := &AuthorizeResponse{ResponseMeta: meta}
		resp, raw, payload = r, env.Authorize, &r.Authorize
	case MsgAccountList:
		r := &AccountListResponse{ResponseMeta: meta}
		resp, raw, payload = r, env.AccountList, &r.AccountList
	case MsgBalance:
		r := &BalanceResponse{ResponseMeta: meta}
		resp, raw, payload = r, env.Balance, &r.Balance
	}

	if resp != nil {
		if err := decodePayload(env, raw, payload); err != nil {
			return nil, err
		}
		return resp, nil
	}

	if env.Error != nil {
		return nil, fmt.Errorf("%w: msg_type %q: %w", ErrUnexpectedMessage, env.MsgType, env.Error)
	}
	return nil, fmt.Errorf("%w: msg_type %q", ErrUnexpectedMessage, env.MsgType)
}

func decodePayload(env envelope, raw json.RawMessage, dst any) error {
	if env.Error != nil {
		return nil
	}
	if len(raw) == 0 || isNull(raw) {
		return fmt.Errorf("%w: %s without payload", ErrUnexpectedMessage, env.MsgType)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s payload: %w", ErrMalformedMessage, env.MsgType, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Encode serializes an outbound request.
func Encode(req Request) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error encoding broker request: %w", err)
	}
	return data, nil
}
