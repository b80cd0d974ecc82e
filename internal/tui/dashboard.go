// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/adapter"
	"github.com/MKhiriev/go-trade-dash/internal/app"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type dashboardModel struct {
	ctx       context.Context
	adapter   adapter.ServerAdapter
	clipboard Clipboard
	logger    *logger.Logger

	table   table.Model
	spinner spinner.Model
	help    help.Model

	session  models.SessionState
	loginURL string
	accounts models.Accounts

	loading bool
	syncing bool
	status  string
	errMsg  string
}

func newDashboardModel(ctx context.Context, serverAdapter adapter.ServerAdapter, clip Clipboard, log *logger.Logger) dashboardModel {
	t := table.New(
		table.WithColumns(accountColumns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	return dashboardModel{
		ctx:       ctx,
		adapter:   serverAdapter,
		clipboard: clip,
		logger:    log,
		table:     t,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:      help.New(),
		loading:   true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadSession())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.session = msg.state
		m.loginURL = msg.loginURL
		m.setAccounts(msg.accounts)
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("sync failed")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.setAccounts(msg.accounts)
		return m, m.setStatus(fmt.Sprintf("Synced %d account(s)", len(msg.accounts)))

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		m.setAccounts(nil)
		return m, tea.Batch(m.setStatus("Logged out"), m.cmdLoadSession())

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgClipboardUnavailable + ": " + msg.err.Error()
			return m, nil
		}
		return m, m.setStatus("Copied " + msg.loginID)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.refresh):
		if m.busy() {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadSession()

	case key.Matches(msg, keys.sync):
		if m.busy() || !m.session.Authenticated {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, m.cmdSync()

	case key.Matches(msg, keys.copy):
		row := m.table.SelectedRow()
		if len(row) == 0 {
			return m, nil
		}
		return m, m.cmdCopy(row[0])

	case key.Matches(msg, keys.logout):
		if m.busy() || !m.session.Authenticated {
			return m, nil
		}
		return m, m.cmdLogout()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Trade Dashboard"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading session...\n")
	case !m.session.Authenticated:
		b.WriteString(m.loginView())
	default:
		b.WriteString(m.accountsView())
	}

	if m.syncing {
		b.WriteString("\n" + m.spinner.View() + " Syncing with broker...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(m.help.View(keys)))

	return appStyle.Render(b.String())
}

func (m dashboardModel) loginView() string {
	var b strings.Builder

	b.WriteString(app.MsgNotLoggedIn + "\n\n")
	if m.loginURL != "" {
		b.WriteString(urlBoxStyle.Render(m.loginURL))
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n\nPress r when the browser shows the session.\n")

	return b.String()
}

func (m dashboardModel) accountsView() string {
	var b strings.Builder

	if info := m.session.UserInfo; info != nil {
		b.WriteString(fmt.Sprintf("%s (%s)\n\n", info.Email, info.LoginID))
	}
	if len(m.accounts) == 0 {
		b.WriteString("No accounts yet, press s to sync.\n")
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	return b.String()
}

func (m dashboardModel) busy() bool {
	return m.loading || m.syncing
}

func (m *dashboardModel) setAccounts(accounts models.Accounts) {
	m.accounts = accounts
	m.table.SetRows(accountRows(accounts))
	if m.table.Cursor() >= len(accounts) {
		m.table.SetCursor(max(len(accounts)-1, 0))
	}
}

func (m *dashboardModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// ── commands ────────────────────────────────────────────────────────────────

func (m dashboardModel) cmdLoadSession() tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		state, err := serverAdapter.Session(ctx)
		if err != nil {
			return sessionLoadedMsg{err: err}
		}

		if !state.Authenticated {
			loginURL, err := serverAdapter.LoginURL(ctx)
			return sessionLoadedMsg{state: state, loginURL: loginURL, err: err}
		}

		accounts, err := serverAdapter.Accounts(ctx)
		return sessionLoadedMsg{state: state, accounts: accounts, err: err}
	}
}

func (m dashboardModel) cmdSync() tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		accounts, err := serverAdapter.Sync(ctx)
		return syncDoneMsg{accounts: accounts, err: err}
	}
}

func (m dashboardModel) cmdLogout() tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		return loggedOutMsg{err: serverAdapter.Logout(ctx)}
	}
}

func (m dashboardModel) cmdCopy(loginID string) tea.Cmd {
	clip := m.clipboard
	return func() tea.Msg {
		return copiedMsg{loginID: loginID, err: clip.WriteAll(loginID)}
	}
}
