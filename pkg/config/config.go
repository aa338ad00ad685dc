// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bootstack/juju-exporter/pkg/defaults"
	"github.com/bootstack/juju-exporter/pkg/errors"
	"github.com/bootstack/juju-exporter/pkg/inventory"
)

// Environment variables overriding values from the configuration file.
const (
	EnvPassword = "JUJU_EXPORTER_PASSWORD"
	EnvPort     = "JUJU_EXPORTER_PORT"
)

// Config is the exporter configuration. It is loaded once at startup and
// passed explicitly to the components that need it.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Exporter  ExporterConfig  `yaml:"exporter"`
	Customer  CustomerConfig  `yaml:"customer"`
	Juju      JujuConfig      `yaml:"juju"`
	Detection DetectionConfig `yaml:"detection"`
}

// ExporterConfig holds the scrape endpoint and cycle settings.
type ExporterConfig struct {
	Port int `yaml:"port"`

	// CollectInterval is the wait between two cycles, in minutes.
	CollectInterval int `yaml:"collect_interval"`

	// ModelConcurrency is how many model statuses are fetched at once.
	ModelConcurrency int `yaml:"model_concurrency"`
}

// CustomerConfig holds the static label values.
type CustomerConfig struct {
	Name      string `yaml:"name"`
	CloudName string `yaml:"cloud_name"`
}

// JujuConfig holds the controller connection settings.
type JujuConfig struct {
	ControllerEndpoints Endpoints `yaml:"controller_endpoint"`
	ControllerCACert    string    `yaml:"controller_cacert"`
	Username            string    `yaml:"username"`
	Password            string    `yaml:"password"`
}

// DetectionConfig holds the machine classification filters.
type DetectionConfig struct {
	VirtMACPrefixes []string `yaml:"virt_macs"`
	SkipInterfaces  []string `yaml:"skip_interfaces"`
}

// Endpoints is a list of controller host:port addresses. In YAML it may be
// given as a sequence or as a single comma separated string.
type Endpoints []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Endpoints) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var out Endpoints
		for _, s := range strings.Split(node.Value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		*e = out
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*e = list
		return nil
	default:
		return fmt.Errorf("line %d: controller_endpoint must be a string or a list", node.Line)
	}
}

// Load reads, defaults and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig,
			"failed to read configuration file", err, map[string]any{"path": path})
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("configuration parsed successfully", "path", path)
	return cfg, nil
}

// Parse decodes a YAML document, applies environment overrides and
// defaults, and validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, "failed to parse configuration", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if pw := os.Getenv(EnvPassword); pw != "" {
		c.Juju.Password = pw
	}
	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(strings.TrimSpace(portStr))
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeInvalidConfig,
				EnvPort+" must be an integer", err, map[string]any{"value": portStr})
		}
		c.Exporter.Port = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Exporter.Port == 0 {
		c.Exporter.Port = defaults.ServerPort
	}
	if c.Exporter.CollectInterval == 0 {
		c.Exporter.CollectInterval = int(defaults.CollectInterval / time.Minute)
	}
	if c.Exporter.ModelConcurrency == 0 {
		c.Exporter.ModelConcurrency = defaults.ModelConcurrency
	}
	if c.Detection.VirtMACPrefixes == nil {
		c.Detection.VirtMACPrefixes = append([]string(nil), inventory.DefaultVirtMACPrefixes...)
	}
}

// Validate checks that every required setting is present and in range.
func (c *Config) Validate() error {
	if c.Exporter.Port < 0 || c.Exporter.Port > 65535 {
		return invalid("exporter.port must be between 0 and 65535", c.Exporter.Port)
	}
	if c.Exporter.CollectInterval <= 0 {
		return invalid("exporter.collect_interval must be > 0", c.Exporter.CollectInterval)
	}
	if c.Exporter.ModelConcurrency < 1 {
		return invalid("exporter.model_concurrency must be >= 1", c.Exporter.ModelConcurrency)
	}
	if strings.TrimSpace(c.Customer.Name) == "" {
		return invalid("customer.name is required", nil)
	}
	if strings.TrimSpace(c.Customer.CloudName) == "" {
		return invalid("customer.cloud_name is required", nil)
	}
	if len(c.Juju.ControllerEndpoints) == 0 {
		return invalid("juju.controller_endpoint is required", nil)
	}
	for _, ep := range c.Juju.ControllerEndpoints {
		if strings.TrimSpace(ep) == "" {
			return invalid("juju.controller_endpoint contains an empty entry", nil)
		}
	}
	if strings.TrimSpace(c.Juju.ControllerCACert) == "" {
		return invalid("juju.controller_cacert is required", nil)
	}
	if c.Juju.Username == "" {
		return invalid("juju.username is required", nil)
	}
	if c.Juju.Password == "" {
		return invalid("juju.password is required", nil)
	}
	return nil
}

// Interval returns the wait between two collection cycles.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Exporter.CollectInterval) * time.Minute
}

// LogValue implements slog.LogValuer and never includes the password.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("debug", c.Debug),
		slog.Int("port", c.Exporter.Port),
		slog.Duration("interval", c.Interval()),
		slog.Int("modelConcurrency", c.Exporter.ModelConcurrency),
		slog.String("customer", c.Customer.Name),
		slog.String("cloud", c.Customer.CloudName),
		slog.Any("endpoints", []string(c.Juju.ControllerEndpoints)),
		slog.String("username", c.Juju.Username),
		slog.Any("virtMACs", c.Detection.VirtMACPrefixes),
		slog.Any("skipInterfaces", c.Detection.SkipInterfaces),
	)
}

func invalid(msg string, value any) error {
	if value == nil {
		return errors.New(errors.ErrCodeInvalidConfig, msg)
	}
	return errors.NewWithContext(errors.ErrCodeInvalidConfig, msg, map[string]any{"value": value})
}
