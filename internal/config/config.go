package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	Server struct {
		Host         string   `envconfig:"SERVER_HOST" default:""`
		Port         string   `envconfig:"SERVER_PORT" default:"3000"`
		AllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173"`
	}
	WebSocket struct {
		ReadBufferSize  int `envconfig:"WS_READ_BUFFER_SIZE" default:"1024"`
		WriteBufferSize int `envconfig:"WS_WRITE_BUFFER_SIZE" default:"1024"`
	}
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

var levels = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// InitConfig reads the configuration from the environment.
func InitConfig() (*Configuration, error) {
	cfg := &Configuration{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if _, ok := levels[strings.ToLower(cfg.LogLevel)]; !ok {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	return cfg, nil
}

func (c *Configuration) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

func (c *Configuration) Level() log.Level {
	return levels[strings.ToLower(c.LogLevel)]
}

// CORSOrigins is the comma-joined origin list fiber's cors middleware takes.
func (c *Configuration) CORSOrigins() string {
	return strings.Join(c.Server.AllowOrigins, ",")
}
