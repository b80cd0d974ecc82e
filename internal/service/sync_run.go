// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trade-dash/internal/broker"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/metrics"
	"github.com/MKhiriev/go-trade-dash/internal/store"
	"github.com/MKhiriev/go-trade-dash/models"
)

type syncStage int

const (
	stageAuthorize syncStage = iota
	stageAccountList
	stageBalances
	stageDone
)

func (s syncStage) expects() broker.MsgType {
	switch s {
	case stageAuthorize:
		return broker.MsgAuthorize
	case stageAccountList:
		return broker.MsgAccountList
	case stageBalances:
		return broker.MsgBalance
	default:
		return ""
	}
}

// syncRun is the state of one connection: authorize, then account_list, then
// one balance per account. It is driven by a single goroutine.
type syncRun struct {
	conn    broker.Conn
	session store.SessionRepository
	metrics metrics.Recorder
	log     *logger.Logger

	stage     syncStage
	lastReqID int

	// accounts is this run's working copy; it is always persisted whole.
	accounts models.Accounts

	// pending maps outstanding balance req_ids to their loginid. The run is
	// over once it drains.
	pending map[int]string
}

func newSyncRun(conn broker.Conn, session store.SessionRepository, recorder metrics.Recorder, log *logger.Logger) *syncRun {
	return &syncRun{
		conn:    conn,
		session: session,
		metrics: recorder,
		log:     log,
		pending: make(map[int]string),
	}
}

func (r *syncRun) execute(ctx context.Context, token string) error {
	if err := r.send(ctx, broker.NewAuthorizeRequest(token, r.nextReqID())); err != nil {
		return err
	}

	for r.stage != stageDone {
		resp, err := r.conn.Receive()
		if err != nil {
			return r.receiveError(ctx, err)
		}

		if err = r.handle(ctx, resp); err != nil {
			return err
		}
	}

	return nil
}

func (r *syncRun) handle(ctx context.Context, resp broker.Response) error {
	if resp.Type() != r.stage.expects() {
		r.log.Error().
			Str("msg_type", string(resp.Type())).
			Str("expected", string(r.stage.expects())).
			Msg("out of order broker message")
		return fmt.Errorf("%w: got %s while waiting for %s", broker.ErrUnexpectedMessage, resp.Type(), r.stage.expects())
	}

	switch resp := resp.(type) {
	case *broker.AuthorizeResponse:
		return r.onAuthorize(ctx, resp)
	case *broker.AccountListResponse:
		return r.onAccountList(ctx, resp)
	case *broker.BalanceResponse:
		return r.onBalance(ctx, resp)
	default:
		return fmt.Errorf("%w: %T", broker.ErrUnexpectedMessage, resp)
	}
}

func (r *syncRun) onAuthorize(ctx context.Context, resp *broker.AuthorizeResponse) error {
	if resp.Error != nil {
		r.log.Error().Str("code", resp.Error.Code).Str("message", resp.Error.Message).Msg("authorize rejected")
		return fmt.Errorf("%w: %w", ErrAuthorizeRejected, resp.Error)
	}

	if err := r.session.SaveUserInfo(ctx, resp.Authorize.UserInfo()); err != nil {
		r.log.Err(err).Msg("error saving user info")
		return fmt.Errorf("error saving user info: %w", err)
	}

	r.stage = stageAccountList
	return r.send(ctx, broker.NewAccountListRequest(r.nextReqID()))
}

func (r *syncRun) onAccountList(ctx context.Context, resp *broker.AccountListResponse) error {
	if resp.Error != nil {
		r.log.Error().Str("code", resp.Error.Code).Str("message", resp.Error.Message).Msg("account list rejected")
		return fmt.Errorf("%w: %w", ErrAccountListRejected, resp.Error)
	}

	accounts := make(models.Accounts, 0, len(resp.AccountList))
	for _, item := range resp.AccountList {
		if item.LoginID == "" || accounts.Index(item.LoginID) >= 0 {
			continue
		}
		accounts = append(accounts, item.Account())
	}

	if err := r.session.SaveAccounts(ctx, accounts); err != nil {
		r.log.Err(err).Msg("error saving accounts")
		return fmt.Errorf("error saving accounts: %w", err)
	}
	r.accounts = accounts

	r.log.Info().Int("accounts", len(accounts)).Msg("account list stored")

	if len(accounts) == 0 {
		r.stage = stageDone
		return nil
	}

	r.stage = stageBalances
	for _, account := range accounts {
		reqID := r.nextReqID()
		r.pending[reqID] = account.LoginID
		if err := r.send(ctx, broker.NewBalanceRequest(account.LoginID, reqID)); err != nil {
			return err
		}
	}

	return nil
}

func (r *syncRun) onBalance(ctx context.Context, resp *broker.BalanceResponse) error {
	loginID := r.balanceLoginID(resp)
	if !r.settle(resp.ReqID, loginID) {
		// an unmatched answer leaves no way to tell when the run is done
		r.log.Error().
			Int("req_id", resp.ReqID).
			Str("loginid", loginID).
			Msg("balance answers no pending request")
		return fmt.Errorf("%w: balance for %q answers no pending request", broker.ErrUnexpectedMessage, loginID)
	}

	switch {
	case resp.Error != nil:
		r.log.Warn().
			Str("loginid", loginID).
			Str("code", resp.Error.Code).
			Str("message", resp.Error.Message).
			Msg("balance request rejected, account skipped")
		r.metrics.RecordBalanceSkipped()

	case !r.accounts.MergeBalance(loginID, resp.Balance.Balance, resp.Balance.Currency):
		r.log.Warn().Str("loginid", loginID).Msg("balance for unknown account ignored")
		r.metrics.RecordBalanceSkipped()

	default:
		if err := r.session.SaveAccounts(ctx, r.accounts); err != nil {
			r.log.Err(err).Str("loginid", loginID).Msg("error saving accounts")
			return fmt.Errorf("error saving accounts: %w", err)
		}
		r.metrics.RecordBalanceMerged()
	}

	if len(r.pending) == 0 {
		r.stage = stageDone
	}
	return nil
}

// balanceLoginID attributes a balance response to an account: the payload's
// loginid, then echo_req.account, then the req_id issued for it.
func (r *syncRun) balanceLoginID(resp *broker.BalanceResponse) string {
	if resp.Error == nil && resp.Balance.LoginID != "" {
		return resp.Balance.LoginID
	}
	if resp.EchoReq.Account != "" {
		return resp.EchoReq.Account
	}
	return r.pending[resp.ReqID]
}

// settle marks the balance request answered, by req_id when known and by
// loginid otherwise. It reports false when no pending request matches.
func (r *syncRun) settle(reqID int, loginID string) bool {
	if _, ok := r.pending[reqID]; ok {
		delete(r.pending, reqID)
		return true
	}

	for id, pendingLoginID := range r.pending {
		if pendingLoginID == loginID {
			delete(r.pending, id)
			return true
		}
	}
	return false
}

func (r *syncRun) send(ctx context.Context, req broker.Request) error {
	if err := r.conn.Send(req); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.log.Err(err).Int("req_id", req.RequestID()).Msg("error sending broker request")
		return fmt.Errorf("%w: %w", ErrBrokerTransport, err)
	}
	return nil
}

func (r *syncRun) receiveError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if errors.Is(err, broker.ErrMalformedMessage) || errors.Is(err, broker.ErrUnexpectedMessage) {
		r.log.Err(err).Msg("undecodable broker message")
		return err
	}

	r.log.Err(err).Msg("error reading from broker")
	return fmt.Errorf("%w: %w", ErrBrokerTransport, err)
}

func (r *syncRun) nextReqID() int {
	r.lastReqID++
	return r.lastReqID
}
