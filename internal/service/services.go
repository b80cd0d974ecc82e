// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-trade-dash/internal/broker"
	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/metrics"
	"github.com/MKhiriev/go-trade-dash/internal/store"
	"github.com/MKhiriev/go-trade-dash/internal/utils"
)

type Services struct {
	AccountSyncService AccountSyncService
	SessionGuard       SessionGuard
	AuthService        AuthService
	AdminService       AdminService
	UserService        UserService
	AppInfoService     AppInfoService
	SyncJob            SyncJob
}

func NewServices(storages *store.Storages, dialer broker.Dialer, recorder metrics.Recorder, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	syncService := NewAccountSyncService(dialer, storages.Session, recorder, cfg.Broker, logger)
	guard := NewSessionGuard(storages.Session)

	return &Services{
		AccountSyncService: syncService,
		SessionGuard:       guard,
		AuthService:        NewAuthService(storages.Session, guard, syncService, cfg, logger),
		AdminService:       NewAdminService(storages.Session, recorder, cfg.App, logger),
		UserService:        NewUserService(storages.ManagedUsers, utils.NewUUIDGenerator(), logger),
		AppInfoService:     appInfo,
		SyncJob:            NewSyncJob(syncService, cfg.Workers.SyncInterval, logger),
	}, nil
}
