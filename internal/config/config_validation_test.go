// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 5 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "home.db"}},
		Workers: ClientWorkers{RefreshInterval: time.Minute},
	}
}

func validServerConfig() *ServerConfig {
	return &ServerConfig{
		App: App{
			TokenSignKey:  "sign",
			TokenIssuer:   "verification",
			TokenDuration: time.Hour,
			GUIDHashKey:   "salt",
			Version:       "1.0.0",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"memory dsn", func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"no address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"no timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"no refresh", func(c *ClientConfig) { c.Workers.RefreshInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServerConfig)
		want   error
	}{
		{"valid", func(*ServerConfig) {}, nil},
		{"grpc only", func(c *ServerConfig) { c.Server = Server{GRPCAddress: "localhost:9090"} }, nil},
		{"no listeners", func(c *ServerConfig) { c.Server = Server{} }, ErrInvalidServerConfigs},
		{"no dsn", func(c *ServerConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no sign key", func(c *ServerConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"no duration", func(c *ServerConfig) { c.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"no hash key", func(c *ServerConfig) { c.App.GUIDHashKey = "" }, ErrInvalidAppConfigs},
		{"no version", func(c *ServerConfig) { c.App.Version = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := NewClientConfig(&StructuredConfig{
		App:     App{LogPath: "/tmp/log", TokenSignKey: "server-only"},
		Adapter: Adapter{HTTPAddress: "http://srv", RequestTimeout: time.Second},
		Storage: Storage{DB: DB{DSN: "home.db"}},
		Workers: Workers{RefreshInterval: time.Minute},
	})

	assert.Equal(t, "/tmp/log", cfg.App.LogPath)
	assert.Equal(t, "http://srv", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "home.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}
