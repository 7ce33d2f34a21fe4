// File: doc.go
// Title: Config Package Documentation
// Description: Documents the configuration loader for TOML and YAML files
//              with environment overrides.
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-07-16
//
// Change History:
// - 2026-07-16 v0.1.0: Initial package documentation

/*
Package config loads application configuration from TOML or YAML files.

Values are addressed by dot-notation paths ("prompts.applied") through
typed accessors with caller-supplied defaults. When an EnvPrefix is
configured, environment variables override file values: the path
"log.level" with prefix "CALC" is overridden by CALC_LOG_LEVEL.
*/
package config
