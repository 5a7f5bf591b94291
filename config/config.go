/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/ddbexport/errors"
	"github.com/suparena/ddbexport/registry"
	"github.com/suparena/ddbexport/storagemodels"
)

const (
	DefaultOutput     = "dynamodb_export.csv"
	DefaultSampleSize = 100
	DefaultEnvFile    = ".env"
)

type Config struct {
	AWS struct {
		Region    string `yaml:"region"`
		Profile   string `yaml:"profile"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Endpoint  string `yaml:"endpoint"`
	} `yaml:"aws"`

	Table string `yaml:"table"`

	// Input is a DynamoDB-JSON export file read instead of scanning a table.
	Input      string   `yaml:"input"`
	Output     string   `yaml:"output"`
	SampleSize int      `yaml:"sample_size"`
	Filters    []string `yaml:"filters"`

	Scan struct {
		PageSize     int32         `yaml:"page_size"`
		MaxRetries   int           `yaml:"max_retries"`
		RetryBackoff time.Duration `yaml:"retry_backoff"`
	} `yaml:"scan"`

	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`

	// Aliases extend the built-in key alias lists; they are consulted after
	// the defaults.
	Aliases struct {
		EntityType   []string `yaml:"entity_type"`
		SortKey      []string `yaml:"sort_key"`
		PartitionKey []string `yaml:"partition_key"`
	} `yaml:"aliases"`
}

// Default returns a configuration with every default filled in.
func Default() *Config {
	scan := storagemodels.DefaultScanOptions()

	cfg := &Config{
		Output:     DefaultOutput,
		SampleSize: DefaultSampleSize,
	}
	cfg.Scan.PageSize = scan.PageSize
	cfg.Scan.MaxRetries = scan.MaxRetries
	cfg.Scan.RetryBackoff = scan.RetryBackoff
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the YAML file at path (skipped when path is empty), then applies
// values from envFiles (default .env, missing files ignored) and finally the
// process environment, which wins over both.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewValidationError("config", fmt.Sprintf("%s: %v", path, err))
		}
	}

	dotenv, err := readEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return map[string]string{}, nil
	}

	vals, err := godotenv.Read(existing...)
	if err != nil {
		return nil, fmt.Errorf("failed to read env files: %w", err)
	}
	return vals, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("AWS_REGION", &c.AWS.Region)
	str("AWS_PROFILE", &c.AWS.Profile)
	str("AWS_ACCESS_KEY", &c.AWS.AccessKey)
	str("AWS_SECRET_KEY", &c.AWS.SecretKey)
	str("AWS_ENDPOINT_URL", &c.AWS.Endpoint)
	str("DDB_EXPORT_TABLE", &c.Table)
	str("DDB_EXPORT_INPUT", &c.Input)
	str("DDB_EXPORT_OUTPUT", &c.Output)
	str("DDB_EXPORT_LOG_LEVEL", &c.Log.Level)

	if v, ok := lookup("DDB_EXPORT_SAMPLE_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.NewValidationError("DDB_EXPORT_SAMPLE_SIZE", fmt.Sprintf("not an integer: %q", v))
		}
		c.SampleSize = n
	}
	if v, ok := lookup("DDB_EXPORT_LOG_PRETTY"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewValidationError("DDB_EXPORT_LOG_PRETTY", fmt.Sprintf("not a boolean: %q", v))
		}
		c.Log.Pretty = b
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.NewValidationError("output", "must not be empty")
	}
	if c.SampleSize < 0 {
		return errors.NewValidationError("sample_size", "must not be negative")
	}
	if c.Scan.PageSize < 0 {
		return errors.NewValidationError("scan.page_size", "must not be negative")
	}
	if c.Scan.MaxRetries < 0 {
		return errors.NewValidationError("scan.max_retries", "must not be negative")
	}
	return nil
}

// ScanOptions converts the scan section into transport options.
func (c *Config) ScanOptions() []storagemodels.ScanOption {
	return []storagemodels.ScanOption{
		storagemodels.WithPageSize(c.Scan.PageSize),
		storagemodels.WithMaxRetries(c.Scan.MaxRetries),
		storagemodels.WithRetryBackoff(c.Scan.RetryBackoff),
	}
}

// RegisterAliases appends the configured aliases to the global key alias lists.
func (c *Config) RegisterAliases() {
	registry.RegisterKeyAliases(registry.GroupEntityType, c.Aliases.EntityType...)
	registry.RegisterKeyAliases(registry.GroupSortKey, c.Aliases.SortKey...)
	registry.RegisterKeyAliases(registry.GroupPartitionKey, c.Aliases.PartitionKey...)
}
