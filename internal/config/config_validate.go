// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validEnvironments = map[string]bool{
	"development": true, "staging": true, "production": true,
}

// Validate checks every section and returns all problems joined, each
// prefixed with its section name.
func (c *Config) Validate() error {
	return errors.Join(
		section("server", c.validateServer()),
		section("logging", c.validateLogging()),
		section("database", c.validateDatabase()),
		section("sessions", c.Sessions.Validate()),
		section("nats", c.validateNATS()),
		section("recommend", c.Recommend.Validate()),
		section("supervisor", c.validateSupervisor()),
	)
}

func section(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

func (c *Config) validateServer() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("read_timeout and write_timeout must be positive"))
	}
	if !validEnvironments[c.Server.Environment] {
		errs = append(errs, fmt.Errorf("environment must be development, staging or production, got %q", c.Server.Environment))
	}
	if c.IsProduction() {
		for _, origin := range c.Server.CORSOrigins {
			if origin == "*" {
				errs = append(errs, errors.New("cors_origins must not contain * in production"))
				break
			}
		}
	}
	return errors.Join(errs...)
}

func (c *Config) validateLogging() error {
	var errs []error
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Errorf("level must be trace, debug, info, warn or error, got %q", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("format must be json or console, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func (c *Config) validateDatabase() error {
	if c.Database.Threads < 0 {
		return fmt.Errorf("threads must be non-negative, got %d", c.Database.Threads)
	}
	return nil
}

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}

	var errs []error
	if !c.NATS.EmbeddedServer && c.NATS.URL == "" {
		errs = append(errs, errors.New("url is required unless embedded_server is set"))
	}
	if c.NATS.EmbeddedServer && (c.NATS.Port < -1 || c.NATS.Port > 65535) {
		errs = append(errs, fmt.Errorf("port must be -1 or between 0 and 65535, got %d", c.NATS.Port))
	}
	if c.NATS.SubscribersCount < 1 {
		errs = append(errs, fmt.Errorf("subscribers_count must be positive, got %d", c.NATS.SubscribersCount))
	}
	if c.NATS.RouterRetryCount < 0 {
		errs = append(errs, fmt.Errorf("router_retry_count must be non-negative, got %d", c.NATS.RouterRetryCount))
	}
	return errors.Join(errs...)
}

func (c *Config) validateSupervisor() error {
	var errs []error
	if c.Supervisor.FailureThreshold <= 0 {
		errs = append(errs, fmt.Errorf("failure_threshold must be positive, got %v", c.Supervisor.FailureThreshold))
	}
	if c.Supervisor.FailureDecay <= 0 {
		errs = append(errs, fmt.Errorf("failure_decay must be positive, got %v", c.Supervisor.FailureDecay))
	}
	if c.Supervisor.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must be positive, got %v", c.Supervisor.ShutdownTimeout))
	}
	return errors.Join(errs...)
}
