// Package config provides configuration structures and utilities for the
// SEO auditor. It defines the audit options populated from CLI flags and
// optional YAML configuration files, along with report output preferences.
package config
