package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestResolveBuildInfo(t *testing.T) {
	t.Parallel()

	meta := resolveBuildInfo()
	// All fields resolve to something: an ldflags value, module build
	// info, or the documented fallback.
	if meta.version == "" {
		t.Error("resolveBuildInfo() returned empty version")
	}
	if meta.commit == "" {
		t.Error("resolveBuildInfo() returned empty commit")
	}
	if meta.date == "" {
		t.Error("resolveBuildInfo() returned empty date")
	}
}

func TestShortHash(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		revision string
		want     string
	}{
		{
			name:     "full hash trimmed to seven characters",
			revision: "0123456789abcdef0123456789abcdef01234567",
			want:     "0123456",
		},
		{
			name:     "short value kept as is",
			revision: "abc",
			want:     "abc",
		},
		{
			name:     "empty value kept as is",
			revision: "",
			want:     "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := shortHash(tc.revision); got != tc.want {
				t.Errorf("shortHash(%q) = %q, want %q", tc.revision, got, tc.want)
			}
		})
	}
}

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("is named version with a description", func(t *testing.T) {
		t.Parallel()

		cmd := NewVersionCmd()
		if cmd.Use != "version" {
			t.Errorf("Use = %q, want %q", cmd.Use, "version")
		}
		if cmd.Short == "" {
			t.Error("Short is empty")
		}
	})

	t.Run("prints version, commit, and build date", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		output := buf.String()
		for _, want := range []string{"seoaudit version", "commit:", "built:"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q: %q", want, output)
			}
		}
	})
}
