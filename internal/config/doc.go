// Package config provides application configuration loaded from environment
// variables (FUNDPULSE_ prefix), an optional .env file and an optional YAML
// config file, plus centralized filesystem path resolution for the two CSV
// inputs and the report/log output directories.
package config
