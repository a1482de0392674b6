// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides comprehensive configuration management for
//              dkit applications with support for TOML and YAML formats. Features
//              include automatic file discovery, environment variable injection,
//              configuration validation, hot-reloading, and type-safe access.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides comprehensive configuration management for dkit applications.

Package: config
Title: Core Configuration Management
Description: Provides comprehensive configuration management capabilities for dkit
             applications with support for TOML and YAML formats, environment
             variable injection, hot-reloading, and type-safe access patterns.
Author: msto63
Version: v0.1.0
Created: 2025-03-06
Modified: 2025-03-06

Change History:
- 2025-03-06 v0.1.0: Initial implementation with TOML/YAML support

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable injection and override capabilities
  • Configuration validation with structured rules
  • Hot-reloading via fsnotify with change notification callbacks
  • Thread-safe concurrent access patterns
  • Performance-optimized with caching and lazy loading
  • dkit error integration with structured error codes

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := dkitconfig.Load("dkit.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	bufSize := cfg.GetInt("copy.buffer_size", 8192)
	interval := cfg.GetDuration("progress.interval", 500*time.Millisecond)
	algorithm := cfg.GetString("hash.algorithm", "sha256")
	excludes := cfg.GetStringSlice("scan.exclude", []string{})

# Advanced Configuration Options

Load with custom options and validation:

	cfg, err := dkitconfig.LoadWithOptions("dkit.toml", dkitconfig.LoadOptions{
		Format:    dkitconfig.FormatAuto,
		EnvPrefix: "DKIT",
		Defaults: map[string]interface{}{
			"copy.buffer_size":  8192,
			"copy.overwrite":    false,
			"hash.algorithm":    "sha256",
		},
		Watch: true, // Enable hot-reloading
	})

# Environment Variable Integration

Configuration values are automatically overridden by environment variables
following a consistent naming convention:

	# dkit.toml
	[copy]
	buffer_size = 8192
	overwrite = false

	[hash]
	algorithm = "sha256"

	# Environment variables (with optional prefix)
	export DKIT_COPY_BUFFER_SIZE="65536"
	export DKIT_HASH_ALGORITHM="xxh64"

	cfg, _ := dkitconfig.LoadWithOptions("dkit.toml", dkitconfig.LoadOptions{
		EnvPrefix: "DKIT",
	})

	// Environment variables take precedence
	bufSize := cfg.GetInt("copy.buffer_size")     // Returns 65536
	algorithm := cfg.GetString("hash.algorithm")  // Returns "xxh64"

# Configuration Validation

Validate configuration structure and constraints:

	rules := dkitconfig.ValidationRules{
		"copy.buffer_size": {
			Required: true,
			Type:     "int",
			Min:      512,
			Max:      1 << 20,
		},
		"hash.algorithm": {
			Type:    "string",
			Pattern: `^(md5|sha256|xxh64)$`,
			Default: "sha256",
		},
		"progress.interval": {
			Type:    "duration",
			Default: "500ms",
		},
		"scan.exclude": {
			Type: "[]string",
		},
	}

	if result := cfg.Validate(rules); !result.Valid {
		dkitlog.Fatal("Configuration validation failed", dkitlog.Field("errors", result.Errors))
	}

# Hot-Reloading and Change Notifications

Monitor configuration files for changes with automatic reloading. Watching
uses fsnotify events where the platform supports them and falls back to
modification time polling otherwise:

	cfg, err := dkitconfig.LoadWithOptions("dkit.toml", dkitconfig.LoadOptions{
		Watch: true,
	})

	// Register change handlers
	cfg.OnChange(func(oldCfg, newCfg *dkitconfig.Config) {
		dkitlog.Info("Configuration updated")

		// Compare specific values
		if oldCfg.GetInt("copy.buffer_size") != newCfg.GetInt("copy.buffer_size") {
			dkitlog.Info("Copy buffer size changed",
				dkitlog.Int("buffer_size", newCfg.GetInt("copy.buffer_size")))
		}
	})

# Multi-Format Support

The package automatically detects and supports multiple configuration formats:

	// TOML format (default)
	cfg1, _ := dkitconfig.Load("dkit.toml")

	// YAML format (auto-detected)
	cfg2, _ := dkitconfig.Load("dkit.yaml")
	cfg3, _ := dkitconfig.Load("dkit.yml")

	// Explicit format specification
	cfg4, _ := dkitconfig.LoadWithOptions("settings.txt", dkitconfig.LoadOptions{
		Format: dkitconfig.FormatTOML,
	})

# String-Based Configuration Loading

Load configuration from string content:

	yamlContent := `
	copy:
	  buffer_size: 8192
	  overwrite: false
	hash:
	  algorithm: sha256
	`

	cfg, err := dkitconfig.LoadFromString(yamlContent, dkitconfig.FormatYAML)
	if err != nil {
		dkitlog.Fatal("Failed to parse YAML", dkitlog.Err(err))
	}

# Automatic Discovery

Search well-known locations for a configuration file:

	// Looks for dkit.toml, dkit.yaml, config.toml, ... in
	// ., ./config, /etc/dkit and /usr/local/etc
	cfg, err := dkitconfig.DiscoverWithDefaults()

	// Or with custom search options
	cfg, err := dkitconfig.Discover(dkitconfig.DiscoveryOptions{
		Paths:     []string{".", "/opt/dkit/etc"},
		Filenames: []string{"dkit"},
		Required:  false,
	})

# Convenience Methods

Quick access patterns for common operations:

	// Short aliases for frequent operations
	algo := cfg.S("hash.algorithm", "sha256")              // GetString
	size := cfg.I("copy.buffer_size", 8192)                // GetInt
	force := cfg.B("copy.overwrite", false)                // GetBool
	interval := cfg.D("progress.interval", 500*time.Millisecond) // GetDuration
	ratio := cfg.F("scan.sample_ratio", 1.0)               // GetFloat
	excludes := cfg.SS("scan.exclude", []string{})         // GetStringSlice

# Error Handling Patterns

All configuration operations return structured dkit errors with context:

	cfg, err := dkitconfig.Load("nonexistent.toml")
	if err != nil {
		if dkitErr, ok := err.(*dkiterror.Error); ok {
			switch dkitErr.Code() {
			case dkiterror.CodeMissingConfig:
				dkitlog.Warn("Config file missing, using defaults")
				cfg = createDefaultConfig()
			case dkiterror.CodeInvalidConfig:
				dkitlog.Error("Config syntax error", dkitlog.Err(dkitErr))
				return err
			default:
				dkitlog.Error("Unexpected config error", dkitlog.Err(err))
				return err
			}
		}
	}

# Struct Binding

Bind configuration sections directly to Go structs:

	type CopyConfig struct {
		BufferSize int      `config:"buffer_size" validate:"required"`
		Overwrite  bool     `config:"overwrite"`
		Exclude    []string `config:"exclude"`
	}

	var copyCfg CopyConfig
	if err := cfg.BindToStruct("copy", &copyCfg); err != nil {
		return err
	}

# Integration with dkit

The config package integrates with the other dkit packages:

	import (
		dkitconfig "github.com/msto63/dkit/core/config"
		dkitlog "github.com/msto63/dkit/core/log"
		"github.com/msto63/dkit/utils/stringx"
	)

	// Load configuration
	cfg, err := dkitconfig.Load("dkit.toml")
	if err != nil {
		dkitlog.Fatal("Config error", dkitlog.Err(err))
	}

	// Validate required fields using stringx
	workDir := cfg.GetString("paths.workdir")
	if stringx.IsBlank(workDir) {
		dkitlog.Fatal("Work directory cannot be empty")
	}

# Performance Characteristics

The config package is optimized for production use:

• File Loading: O(1) with caching, sub-millisecond for repeated access
• Value Access: O(1) lookup with type conversion caching
• Environment Variables: Cached with 5-minute TTL to reduce OS calls
• Path Resolution: Cached dot-notation parsing for nested keys
• Memory Usage: ~1KB baseline + configuration data size
• Hot-Reloading: Native fsnotify events, polling only as fallback
• Thread Safety: Lock-free reads, optimized write synchronization

# Thread Safety Guarantees

All operations are thread-safe and support concurrent access:

• Configuration loading and parsing: Thread-safe
• Value access (Get* methods): Lock-free concurrent reads
• Environment variable lookups: Cached and thread-safe
• Configuration updates: Atomic updates with proper synchronization
• Change notifications: Safe concurrent callback execution

For additional examples and advanced usage patterns, see the package tests.
*/
package config
