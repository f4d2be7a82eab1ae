// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package option holds the configuration of the yamltree loader.
package option

// Config holds configuration options for building a document tree.
type Config struct {
	maxDepth *int
}

const (
	defaultMaxDepth = 0 // unlimited
)

// Option represents a functional option for configuring the loader.
type Option func(*Config)

// WithMaxDepth returns an Option that limits how many containers may be
// open at the same time. A depth of 0 or less removes the limit.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		if depth < 0 {
			depth = 0
		}
		c.maxDepth = &depth
	}
}

// GetMaxDepth returns the Config's nesting limit if set or the default
// value.
func (c *Config) GetMaxDepth() int {
	if c.maxDepth != nil {
		return *c.maxDepth
	}
	return defaultMaxDepth
}

// NewConfig creates a new Config with the provided options.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{}
	cfg.Apply(opts...)
	return cfg
}

// Apply applies additional options to an existing Config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
}
