package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichBuildInfo(t *testing.T) {
	t.Run("Fills runtime fields when empty", func(t *testing.T) {
		bi := enrichBuildInfo(Info{Version: "v1.0.0"})

		assert.Equal(t, "v1.0.0", bi.Version)
		assert.Equal(t, runtime.Version(), bi.GoVersion)
		assert.Equal(t, runtime.GOOS, bi.OS)
		assert.Equal(t, runtime.GOARCH, bi.Arch)
	})

	t.Run("Defaults to unknown without any metadata", func(t *testing.T) {
		orig := readBuildInfo
		readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
		defer func() { readBuildInfo = orig }()

		bi := enrichBuildInfo(Info{})
		assert.Equal(t, unknown, bi.Version)
		assert.Equal(t, unknown, bi.Commit)
	})
}

func TestInfoString(t *testing.T) {
	t.Run("Empty version", func(t *testing.T) {
		assert.Equal(t, unknown, Info{}.String())
	})

	t.Run("Commit hash is shortened to 7 chars", func(t *testing.T) {
		s := Info{Version: "v2.1.0", Commit: "f25b8bfabcdef123"}.String()
		assert.Contains(t, s, "commit: f25b8bf")
		assert.NotContains(t, s, "f25b8bfa")
	})
}

func TestGet(t *testing.T) {
	bi := Get()
	assert.NotEmpty(t, bi.Version)
	assert.NotEmpty(t, bi.GoVersion)
}
