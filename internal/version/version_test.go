package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withInjectedBuildInfo(t *testing.T, binaryVersion, commit string) {
	t.Helper()

	oldVersion, oldCommit := Version, GitCommit
	t.Cleanup(func() {
		Version, GitCommit = oldVersion, oldCommit
	})

	Version = binaryVersion
	GitCommit = commit
}

func TestGetVersionPrefersInjectedValue(t *testing.T) {
	withInjectedBuildInfo(t, "1.2.0", "unknown")
	assert.Equal(t, "1.2.0", GetVersion())
}

func TestGetShortVersionWithCommit(t *testing.T) {
	withInjectedBuildInfo(t, "1.2.0", "abc1234def5678")
	assert.Equal(t, "1.2.0 (abc1234)", GetShortVersion())
}

func TestGetShortVersionDevBuild(t *testing.T) {
	withInjectedBuildInfo(t, "dev", "abc1234def5678")

	// Release info may leak in from the module build info of the test
	// binary; only the injected-commit shape is pinned here.
	if GetVersion() == "dev" {
		assert.Equal(t, "dev-abc1234", GetShortVersion())
	}
}

func TestGetDetailedVersion(t *testing.T) {
	withInjectedBuildInfo(t, "1.2.0", "abc1234def5678")

	detailed := GetDetailedVersion()
	assert.Contains(t, detailed, "Version: 1.2.0")
	assert.Contains(t, detailed, "Commit: abc1234def5678")
	assert.Contains(t, detailed, "Go: "+runtime.Version())
	assert.Contains(t, detailed, "Platform: "+runtime.GOOS+"/"+runtime.GOARCH)
}
