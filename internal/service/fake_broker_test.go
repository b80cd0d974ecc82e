// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/broker"
	"github.com/shopspring/decimal"
)

// frame is one scripted inbound message: a decoded response or a receive
// error.
type frame struct {
	resp broker.Response
	err  error
}

// fakeBroker scripts broker behavior per connection.
type fakeBroker struct {
	userInfo broker.AuthorizePayload
	authErr  *broker.APIError
	listErr  *broker.APIError

	accounts []broker.AccountListItem
	// byToken overrides accounts per authorize token when set.
	byToken map[string][]broker.AccountListItem

	balances   map[string]broker.BalancePayload
	balanceErr map[string]*broker.APIError
	// noEcho drops echo_req.account from balance errors.
	noEcho bool
	// reverse holds balance answers until all are requested, then sends them
	// last-first.
	reverse bool

	// afterList frames are delivered right after the account_list response.
	afterList []frame

	// silent never answers authorize.
	silent  bool
	sendErr error
	// delay is slept before each response is queued.
	delay time.Duration
}

type fakeConn struct {
	b *fakeBroker

	mu       sync.Mutex
	sent     []broker.Request
	token    string
	accounts []broker.AccountListItem
	held     []frame

	inbox     chan frame
	done      chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool
}

func newFakeConn(b *fakeBroker) *fakeConn {
	return &fakeConn{
		b:     b,
		inbox: make(chan frame, 64),
		done:  make(chan struct{}),
	}
}

func (c *fakeConn) Send(req broker.Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return broker.ErrConnectionClosed
	}
	c.sent = append(c.sent, req)
	if c.b.sendErr != nil {
		return c.b.sendErr
	}
	if c.b.delay > 0 {
		time.Sleep(c.b.delay)
	}

	switch req := req.(type) {
	case broker.AuthorizeRequest:
		if c.b.silent {
			return nil
		}
		c.token = req.Authorize
		c.accounts = c.b.accounts
		if c.b.byToken != nil {
			c.accounts = c.b.byToken[req.Authorize]
		}
		c.push(frame{resp: &broker.AuthorizeResponse{
			ResponseMeta: broker.ResponseMeta{ReqID: req.ReqID, Error: c.b.authErr},
			Authorize:    c.b.userInfo,
		}})

	case broker.AccountListRequest:
		resp := &broker.AccountListResponse{ResponseMeta: broker.ResponseMeta{ReqID: req.ReqID, Error: c.b.listErr}}
		if c.b.listErr == nil {
			resp.AccountList = c.accounts
		}
		c.push(frame{resp: resp})
		for _, f := range c.b.afterList {
			c.push(f)
		}

	case broker.BalanceRequest:
		f := frame{resp: c.balanceResponse(req)}
		if !c.b.reverse {
			c.push(f)
			return nil
		}
		c.held = append(c.held, f)
		if len(c.held) == len(c.accounts) {
			for i := len(c.held) - 1; i >= 0; i-- {
				c.push(c.held[i])
			}
		}
	}

	return nil
}

func (c *fakeConn) balanceResponse(req broker.BalanceRequest) *broker.BalanceResponse {
	meta := broker.ResponseMeta{ReqID: req.ReqID, EchoReq: broker.EchoRequest{Account: req.Account}}

	if apiErr, ok := c.b.balanceErr[req.Account]; ok {
		meta.Error = apiErr
		if c.b.noEcho {
			meta.EchoReq = broker.EchoRequest{}
		}
		return &broker.BalanceResponse{ResponseMeta: meta}
	}

	payload, ok := c.b.balances[req.Account]
	if !ok {
		payload = broker.BalancePayload{Balance: decimal.Zero, LoginID: req.Account}
	}
	return &broker.BalanceResponse{ResponseMeta: meta, Balance: payload}
}

func (c *fakeConn) push(f frame) {
	c.inbox <- f
}

func (c *fakeConn) Receive() (broker.Response, error) {
	select {
	case <-c.done:
		return nil, broker.ErrConnectionClosed
	default:
	}

	select {
	case f := <-c.inbox:
		return f.resp, f.err
	case <-c.done:
		return nil, broker.ErrConnectionClosed
	}
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.done)
	})
	return nil
}

func (c *fakeConn) requests() []broker.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]broker.Request(nil), c.sent...)
}

// fakeDialer hands out one fakeConn per Dial and tracks how many are open at
// once.
type fakeDialer struct {
	b       *fakeBroker
	dialErr error

	mu    sync.Mutex
	conns []*fakeConn

	open    atomic.Int32
	maxOpen atomic.Int32
}

func (d *fakeDialer) Dial(ctx context.Context) (broker.Conn, error) {
	if d.dialErr != nil {
		return nil, d.dialErr
	}

	conn := newFakeConn(d.b)
	d.mu.Lock()
	d.conns = append(d.conns, conn)
	d.mu.Unlock()

	n := d.open.Add(1)
	for {
		m := d.maxOpen.Load()
		if n <= m || d.maxOpen.CompareAndSwap(m, n) {
			break
		}
	}

	return &trackedConn{fakeConn: conn, dialer: d}, nil
}

func (d *fakeDialer) lastConn() *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.conns) == 0 {
		return nil
	}
	return d.conns[len(d.conns)-1]
}

type trackedConn struct {
	*fakeConn
	dialer *fakeDialer
	once   sync.Once
}

func (c *trackedConn) Close() error {
	c.once.Do(func() { c.dialer.open.Add(-1) })
	return c.fakeConn.Close()
}

// spyRecorder counts metrics calls.
type spyRecorder struct {
	mu       sync.Mutex
	outcomes []string
	merged   int
	skipped  int
	logins   []bool
}

func (s *spyRecorder) RecordSync(outcome string, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, outcome)
}

func (s *spyRecorder) RecordBalanceMerged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merged++
}

func (s *spyRecorder) RecordBalanceSkipped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped++
}

func (s *spyRecorder) RecordAdminLogin(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logins = append(s.logins, success)
}
