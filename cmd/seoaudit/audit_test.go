package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/Bandit-AI/seo-auditor/internal/config"
	"github.com/Bandit-AI/seo-auditor/internal/model"
)

// TestNewAuditCmd tests the audit command creation.
func TestNewAuditCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "audit [url]" {
			t.Errorf("expected use 'audit [url]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has timeout flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("timeout")
		if flag == nil {
			t.Fatal("expected timeout flag")
		}
		if flag.Shorthand != "t" {
			t.Errorf("expected shorthand 't', got %q", flag.Shorthand)
		}
	})

	t.Run("has user-agent flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("user-agent")
		if flag == nil {
			t.Fatal("expected user-agent flag")
		}
		if flag.Shorthand != "u" {
			t.Errorf("expected shorthand 'u', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultUserAgent {
			t.Errorf("expected default %q, got %q", config.DefaultUserAgent, flag.DefValue)
		}
	})

	t.Run("has concurrency flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("concurrency")
		if flag == nil {
			t.Fatal("expected concurrency flag")
		}
		if flag.Shorthand != "n" {
			t.Errorf("expected shorthand 'n', got %q", flag.Shorthand)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})

	t.Run("has json flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("json")
		if flag == nil {
			t.Fatal("expected json flag")
		}
		if flag.Shorthand != "j" {
			t.Errorf("expected shorthand 'j', got %q", flag.Shorthand)
		}
	})

	t.Run("has markdown flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("markdown")
		if flag == nil {
			t.Fatal("expected markdown flag")
		}
		if flag.Shorthand != "m" {
			t.Errorf("expected shorthand 'm', got %q", flag.Shorthand)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
	})

	t.Run("does not have depth flag (audits one page per target)", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("depth")
		if flag != nil {
			t.Error("depth flag should not exist (the auditor never crawls)")
		}
	})
}

// TestGetVerboseFlag tests the verbose flag retrieval.
func TestGetVerboseFlag(t *testing.T) {
	t.Run("returns false when flag not set", func(t *testing.T) {
		cmd := NewAuditCmd()
		result := getVerboseFlag(cmd)
		if result {
			t.Error("expected false when flag not set")
		}
	})

	t.Run("returns value from parent verbose flag", func(t *testing.T) {
		root := NewRootCmd()
		// Set verbose flag to true
		_ = root.PersistentFlags().Set("verbose", "true")

		// Get audit subcommand
		auditCmd, _, err := root.Find([]string{"audit"})
		if err != nil {
			t.Fatalf("failed to find audit command: %v", err)
		}

		result := getVerboseFlag(auditCmd)
		if !result {
			t.Error("expected true from parent verbose flag")
		}
	})
}

// TestBuildConfig tests configuration building from flags and config files.
func TestBuildConfig(t *testing.T) {
	t.Run("builds config with default values", func(t *testing.T) {
		cmd := NewAuditCmd()
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg == nil {
			t.Fatal("expected non-nil config")
		}
		if len(cfg.Targets) != 1 || cfg.Targets[0] != "https://example.com" {
			t.Errorf("expected targets [https://example.com], got %v", cfg.Targets)
		}
		if cfg.Timeout != config.DefaultTimeout {
			t.Errorf("expected timeout %v, got %v", config.DefaultTimeout, cfg.Timeout)
		}
		if cfg.Concurrency != config.DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", config.DefaultConcurrency, cfg.Concurrency)
		}
		if cfg.JSONReport {
			t.Error("expected JSONReport to be false")
		}
	})

	t.Run("builds config with custom timeout", func(t *testing.T) {
		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("timeout", "5s")
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Timeout != 5*time.Second {
			t.Errorf("expected timeout 5s, got %v", cfg.Timeout)
		}
	})

	t.Run("builds config with custom concurrency", func(t *testing.T) {
		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("concurrency", "2")
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Concurrency != 2 {
			t.Errorf("expected concurrency 2, got %d", cfg.Concurrency)
		}
	})

	t.Run("builds config with custom user agent", func(t *testing.T) {
		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("user-agent", "TestBot/1.0")
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.UserAgent != "TestBot/1.0" {
			t.Errorf("expected UserAgent 'TestBot/1.0', got %q", cfg.UserAgent)
		}
	})

	t.Run("builds config with JSON flag", func(t *testing.T) {
		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("json", "true")
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.JSONReport {
			t.Error("expected JSONReport to be true")
		}
	})

	t.Run("builds config with multiple targets", func(t *testing.T) {
		cmd := NewAuditCmd()
		cfg, err := buildConfig(cmd, []string{
			"https://example.com",
			"https://example.com/pricing",
			"https://example.com/blog",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cfg.Targets) != 3 {
			t.Errorf("expected 3 targets, got %d", len(cfg.Targets))
		}
	})

	t.Run("builds config with valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "seoaudit.yaml")

		// Create a valid config file
		content := []byte(`
userAgent: FileBot/3.0
timeoutSeconds: 42
`)
		if err := os.WriteFile(configPath, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("config", configPath)
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.UserAgent != "FileBot/3.0" {
			t.Errorf("expected UserAgent 'FileBot/3.0', got %q", cfg.UserAgent)
		}
		if cfg.Timeout != 42*time.Second {
			t.Errorf("expected timeout 42s, got %v", cfg.Timeout)
		}
	})

	t.Run("flags the user set override file values", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "seoaudit.yaml")

		content := []byte(`
userAgent: FileBot/3.0
timeoutSeconds: 42
`)
		if err := os.WriteFile(configPath, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("config", configPath)
		_ = cmd.Flags().Set("timeout", "5s")
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Timeout != 5*time.Second {
			t.Errorf("expected flag timeout 5s to win, got %v", cfg.Timeout)
		}
		if cfg.UserAgent != "FileBot/3.0" {
			t.Errorf("expected file user agent to survive, got %q", cfg.UserAgent)
		}
	})

	t.Run("format flag replaces file format", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "seoaudit.yaml")

		content := []byte("format: markdown\n")
		if err := os.WriteFile(configPath, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("config", configPath)
		_ = cmd.Flags().Set("json", "true")
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.JSONReport {
			t.Error("expected JSONReport to be true")
		}
		if cfg.MarkdownReport {
			t.Error("expected MarkdownReport to be replaced by the json flag")
		}
	})

	t.Run("uses file targets when no arguments given", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "seoaudit.yaml")

		content := []byte(`
targets:
  - https://file.example.com
`)
		if err := os.WriteFile(configPath, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("config", configPath)
		cfg, err := buildConfig(cmd, []string{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cfg.Targets) != 1 || cfg.Targets[0] != "https://file.example.com" {
			t.Errorf("expected targets from file, got %v", cfg.Targets)
		}
	})

	t.Run("returns error for invalid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yaml")

		// Create an invalid config file
		content := []byte(`{invalid yaml`)
		if err := os.WriteFile(configPath, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("config", configPath)
		_, err := buildConfig(cmd, []string{"https://example.com"})
		if err == nil {
			t.Fatal("expected error for invalid config file")
		}
	})

	t.Run("returns error for missing explicit config file", func(t *testing.T) {
		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("config", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := buildConfig(cmd, []string{"https://example.com"})
		if err == nil {
			t.Fatal("expected error for missing explicit config file")
		}
		if !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("expected 'configuration file not found' error, got %v", err)
		}
	})

	t.Run("builds config with output file", func(t *testing.T) {
		cmd := NewAuditCmd()
		_ = cmd.Flags().Set("output", "/tmp/report.json")
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.ReportFile != "/tmp/report.json" {
			t.Errorf("expected ReportFile '/tmp/report.json', got %q", cfg.ReportFile)
		}
	})
}

// TestFailedTargetsError tests the exit error derivation.
func TestFailedTargetsError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when nothing failed", func(t *testing.T) {
		t.Parallel()
		if err := failedTargetsError(0, 3); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("reports the failure count", func(t *testing.T) {
		t.Parallel()
		err := failedTargetsError(2, 3)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "2 of 3 audits failed") {
			t.Errorf("expected '2 of 3 audits failed', got %v", err)
		}
	})
}

// sampleResult builds a small completed audit for output tests.
func sampleResult() *model.AuditResult {
	title := "Example Domain"

	return &model.AuditResult{
		URL:     "https://example.com",
		Success: true,
		Score:   85,
		Checks: map[string]model.CheckResult{
			model.CheckTitle: model.TitleResult{Text: &title, Length: 14},
			model.CheckLinks: model.LinksResult{Internal: 4, External: 1, Unusual: 0},
		},
		Findings: model.FindingSet{
			Critical: []model.Finding{},
			Warning: []model.Finding{
				{Severity: model.SeverityWarning, Message: "Title too short (14 chars) - aim for 50-60"},
			},
			Passed: []model.Finding{
				{Severity: model.SeverityPassed, Message: "Found 4 internal, 1 external links"},
			},
		},
	}
}

// TestOutputReport tests the report output functionality.
func TestOutputReport(t *testing.T) {
	t.Run("outputs JSON report to file", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "report.json")

		cfg := &config.Config{
			JSONReport: true,
			ReportFile: outputPath,
		}

		err := outputReport(cfg, sampleResult())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify file exists
		if _, err := os.Stat(outputPath); os.IsNotExist(err) {
			t.Error("expected output file to be created")
		}

		// Verify JSON content
		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}

		var result map[string]interface{}
		if err := json.Unmarshal(content, &result); err != nil {
			t.Fatalf("failed to parse JSON: %v", err)
		}

		if result["url"] != "https://example.com" {
			t.Errorf("expected url 'https://example.com', got %v", result["url"])
		}
		if result["score"] != float64(85) {
			t.Errorf("expected score 85, got %v", result["score"])
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "subdir", "nested", "report.json")

		cfg := &config.Config{
			JSONReport: true,
			ReportFile: outputPath,
		}

		err := outputReport(cfg, sampleResult())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := os.Stat(outputPath); os.IsNotExist(err) {
			t.Error("expected output file to be created in nested directory")
		}
	})

	t.Run("outputs Markdown report to file", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "report.md")

		cfg := &config.Config{
			MarkdownReport: true,
			ReportFile:     outputPath,
		}

		err := outputReport(cfg, sampleResult())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}

		if !bytes.Contains(content, []byte("SEO Audit Report")) {
			t.Error("expected Markdown report title")
		}
	})

	t.Run("outputs text report to file", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "report.txt")

		cfg := &config.Config{
			ReportFile: outputPath,
		}

		err := outputReport(cfg, sampleResult())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify text content
		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}

		if !bytes.Contains(content, []byte("https://example.com")) {
			t.Error("expected report to contain the audited URL")
		}
		if !bytes.Contains(content, []byte("85/100")) {
			t.Error("expected report to contain the score")
		}
	})

	t.Run("outputs to stdout when no file specified", func(t *testing.T) {
		cfg := &config.Config{
			ReportFile: "",
		}

		// This should not fail - just outputs to stdout
		err := outputReport(cfg, sampleResult())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("file has secure permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file permissions work differently on Windows")
		}

		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "report.txt")

		cfg := &config.Config{
			ReportFile: outputPath,
		}

		if err := outputReport(cfg, sampleResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(outputPath)
		if err != nil {
			t.Fatalf("failed to stat file: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected permissions 0600, got %o", perm)
		}
	})
}
