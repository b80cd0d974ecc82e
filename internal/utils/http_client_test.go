// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 2*time.Second)
	require.NotNil(t, client.Client)
	assert.Equal(t, 2*time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/api/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestNewHTTPClient_Independence(t *testing.T) {
	a := NewHTTPClient("http://a", time.Second)
	b := NewHTTPClient("http://b", time.Second)

	assert.NotSame(t, a.Client, b.Client)
	assert.Equal(t, "http://a", a.BaseURL)
	assert.Equal(t, "http://b", b.BaseURL)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
	assert.Equal(t, byte('7'), first[14], "version nibble")
}
