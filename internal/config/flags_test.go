package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{"localhost", "localhost:8080", false, NetAddress{Host: "localhost", Port: 8080}},
		{"ipv4", "127.0.0.1:9090", false, NetAddress{Host: "127.0.0.1", Port: 9090}},
		{"missing port", "localhost", true, NetAddress{}},
		{"non numeric port", "localhost:http", true, NetAddress{}},
		{"zero port", "localhost:0", true, NetAddress{}},
		{"hostname", "example.com:80", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:8080",
		"-grpc-address", "localhost:9090",
		"-d", "postgres://u:p@localhost/db",
		"-config", "/etc/cwa.json",
		"-server", "http://localhost:8080",
		"-token-sign-key", "sign",
		"-token-issuer", "verification",
		"-token-duration", "720h",
		"-guid-hash-key", "salt",
		"-request-timeout", "5s",
		"-refresh", "1m",
		"-log", "/tmp/home.log",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/cwa.json", cfg.JSONFilePath)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "verification", cfg.App.TokenIssuer)
	assert.Equal(t, 720*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "salt", cfg.App.GUIDHashKey)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/tmp/home.log", cfg.App.LogPath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"})

	assert.Error(t, err)
}
