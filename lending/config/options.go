package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

func WithDataDir(dir string) Option {
	return func(c *Config) {
		c.Storage.DataDir = dir
	}
}

func WithStorageDriver(driver string) Option {
	return func(c *Config) {
		c.Storage.Driver = driver
	}
}

func WithHTTPPort(port string) Option {
	return func(c *Config) {
		c.Server.Port = port
	}
}
