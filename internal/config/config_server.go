package config

import "fmt"

// ServerConfig is the verification server's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
}

// GetServerConfig loads [StructuredConfig] and maps the server fields.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the server-relevant fields of cfg.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}
}
