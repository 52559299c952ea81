// Package version carries the build information of the sde binary itself
// and the product version record used by the configuration file and the
// version bumper builder.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time through -ldflags; releases inject the real values.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// GetVersion returns the version of the sde binary. Without an injected
// ldflags value it falls back to the module build info, then to the VCS
// revision recorded there.
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				return "dev-" + setting.Value[:7]
			}
		}
	}

	return "dev"
}

// GetGitCommit returns the git revision the binary was built from.
func GetGitCommit() string {
	if GitCommit != "" && GitCommit != "unknown" {
		return GitCommit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}

// GetShortVersion formats the binary version for single-line display,
// e.g. "1.2.0 (abc1234)".
func GetShortVersion() string {
	binaryVersion := GetVersion()
	commit := GetGitCommit()

	if commit == "unknown" || len(commit) < 7 {
		return binaryVersion
	}

	if binaryVersion == "dev" {
		return "dev-" + commit[:7]
	}

	return fmt.Sprintf("%s (%s)", binaryVersion, commit[:7])
}

// GetDetailedVersion formats the full build information, one field per
// line, for the version command's --detailed output.
func GetDetailedVersion() string {
	parts := []string{fmt.Sprintf("Version: %s", GetVersion())}

	if commit := GetGitCommit(); commit != "unknown" {
		parts = append(parts, fmt.Sprintf("Commit: %s", commit))
	}

	parts = append(parts,
		fmt.Sprintf("Go: %s", runtime.Version()),
		fmt.Sprintf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH))

	return strings.Join(parts, "\n")
}
