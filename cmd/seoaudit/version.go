package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata injected at release time via ldflags. A plain go install
// leaves them empty and resolveBuildInfo falls back to the module build
// information the toolchain embeds.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildMetadata is the resolved version information printed by the
// version command.
type buildMetadata struct {
	version string
	commit  string
	date    string
}

// resolveBuildInfo fills in any metadata the ldflags left empty from
// debug.ReadBuildInfo. Commit hashes are shortened to seven characters.
func resolveBuildInfo() buildMetadata {
	meta := buildMetadata{version: version, commit: commit, date: date}

	info, ok := debug.ReadBuildInfo()
	if ok {
		if meta.version == "" {
			meta.version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if meta.commit == "" {
					meta.commit = shortHash(setting.Value)
				}
			case "vcs.time":
				if meta.date == "" {
					meta.date = setting.Value
				}
			}
		}
	}

	if meta.version == "" {
		meta.version = "(devel)"
	}
	if meta.commit == "" {
		meta.commit = "unknown"
	}
	if meta.date == "" {
		meta.date = "unknown"
	}
	return meta
}

// shortHash trims a VCS revision to the conventional seven characters.
func shortHash(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of seoaudit.`,
		Run: func(cmd *cobra.Command, _ []string) {
			meta := resolveBuildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "seoaudit version %s\n", meta.version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", meta.commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", meta.date)
		},
	}
}
