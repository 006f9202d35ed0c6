package config

import "time"

const (
	defaultServerEndpointAddr = "127.0.0.1:50051"
	defaultRequestTimeout     = 10 * time.Second
)

// Config is what the registry CLI needs to reach the server. RequestTimeout
// bounds each RPC individually, not the whole session.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = defaultServerEndpointAddr
	c.RequestTimeout = defaultRequestTimeout
}

// LoadConfig layers defaults, the optional JSON file and command-line flags,
// in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
