// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/mock"
	"github.com/MKhiriev/go-trade-dash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubAdapter struct {
	versionErr error
	versions   int
}

func (s *stubAdapter) Version(context.Context) (string, error) {
	s.versions++
	return "1.0.0", s.versionErr
}
func (s *stubAdapter) LoginURL(context.Context) (string, error) { return "", nil }
func (s *stubAdapter) Session(context.Context) (models.SessionState, error) {
	return models.SessionState{}, nil
}
func (s *stubAdapter) Logout(context.Context) error                      { return nil }
func (s *stubAdapter) Accounts(context.Context) (models.Accounts, error) { return nil, nil }
func (s *stubAdapter) Sync(context.Context) (models.Accounts, error)     { return nil, nil }

type stubUI struct {
	err  error
	runs int
}

func (u *stubUI) Run(context.Context) error {
	u.runs++
	return u.err
}

func TestNewApp_NilDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilDependency)

	_, err = NewApp(&stubAdapter{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilDependency)
}

func TestApp_RunStartsUI(t *testing.T) {
	a, ui := &stubAdapter{}, &stubUI{}
	app, err := NewApp(a, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 1, a.versions)
	assert.Equal(t, 1, ui.runs)
}

func TestApp_RunStartsUIWhenServiceIsDown(t *testing.T) {
	ui := &stubUI{}
	app, err := NewApp(&stubAdapter{versionErr: errors.New("connection refused")}, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 1, ui.runs)
}

func TestApp_RunWrapsUIError(t *testing.T) {
	app, err := NewApp(&stubAdapter{}, &stubUI{err: assert.AnError}, logger.Nop())
	require.NoError(t, err)

	err = app.run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestApp_RunChecksVersionWithDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		Version(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (string, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return "2.0.0", nil
		})

	ui := &stubUI{}
	app, err := NewApp(serverAdapter, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 1, ui.runs)
}
