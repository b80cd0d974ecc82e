// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port parsed from a host:port flag value.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s storage DSN
//	-c/-config json file path with configs
//	-public-url externally reachable service URL
//	-broker-ws-url broker websocket endpoint
//	-broker-app-id broker application id
//	-admin-email admin login e-mail
//	-admin-password-hash bcrypt hash of the admin password
//	-token-sign-key admin token signing key
//	-token-duration admin token lifetime (e.g. "12h")
//	-request-timeout inbound request timeout (e.g. "30s")
//	-sync-interval balance refresh interval (e.g. "5m")
//	-sync-timeout single sync run timeout (e.g. "30s")
//	-server-url service URL used by the terminal client
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-trade-dash", flag.ContinueOnError)

	var serverAddress NetAddress
	var (
		storageDSN        string
		jsonConfigPath    string
		publicURL         string
		brokerWSURL       string
		brokerAppID       string
		adminEmail        string
		adminPasswordHash string
		tokenSignKey      string
		tokenDuration     time.Duration
		requestTimeout    time.Duration
		syncInterval      time.Duration
		syncTimeout       time.Duration
		serverURL         string
		logLevel          string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&storageDSN, "s", "", "Storage DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&publicURL, "public-url", "", "Externally reachable service URL")
	fs.StringVar(&brokerWSURL, "broker-ws-url", "", "Broker websocket endpoint")
	fs.StringVar(&brokerAppID, "broker-app-id", "", "Broker application id")
	fs.StringVar(&adminEmail, "admin-email", "", "Admin e-mail")
	fs.StringVar(&adminPasswordHash, "admin-password-hash", "", "Bcrypt hash of the admin password")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Admin token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Admin token lifetime (e.g., 12h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Balance refresh interval (e.g., 5m)")
	fs.DurationVar(&syncTimeout, "sync-timeout", 0, "Single sync run timeout (e.g., 30s)")
	fs.StringVar(&serverURL, "server-url", "", "Service URL used by the terminal client")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AdminEmail:        adminEmail,
			AdminPasswordHash: adminPasswordHash,
			TokenSignKey:      tokenSignKey,
			TokenDuration:     tokenDuration,
			PublicURL:         publicURL,
		},
		Broker: Broker{
			WSURL:       brokerWSURL,
			AppID:       brokerAppID,
			SyncTimeout: syncTimeout,
		},
		Storage: Storage{
			DSN: storageDSN,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The port must be positive and the host must be an IP
// address or "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
