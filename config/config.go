// Package config ties together the per-package configuration types
// into one document a caller loads once and hands to the rest of the
// program: one struct field per subsystem, with go-flags group and
// namespace tags for CLI/env binding.
package config

import (
	"code.obcore.io/book/logging"
	"code.obcore.io/book/metrics"
	"code.obcore.io/book/orderbook"
)

// Config is the root configuration document.
type Config struct {
	Orderbook orderbook.Config `group:"Orderbook" namespace:"orderbook"`
	Logging   logging.Config   `group:"Logging" namespace:"logging"`
	Metrics   metrics.Config   `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns a Config built from each subsystem's own
// defaults.
func NewDefaultConfig() Config {
	return Config{
		Orderbook: orderbook.NewDefaultConfig(),
		Logging:   logging.NewDefaultConfig(),
		Metrics:   metrics.NewDefaultConfig(),
	}
}
