package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Run("Dep", func(t *testing.T) {
		v := Extract(&debug.BuildInfo{
			Deps: []*debug.Module{
				{Path: "github.com/go-faster/tfs", Version: "v1.2.3"},
			},
		})
		require.Equal(t, Value{Major: 1, Minor: 2, Patch: 3, Raw: "v1.2.3"}, v)
	})
	t.Run("Prerelease", func(t *testing.T) {
		v := Extract(&debug.BuildInfo{
			Main: debug.Module{Path: "github.com/go-faster/tfs", Version: "v0.4.0-alpha"},
		})
		require.Equal(t, Value{Minor: 4, Name: "alpha", Raw: "v0.4.0-alpha"}, v)
	})
	t.Run("Dev", func(t *testing.T) {
		v := Extract(&debug.BuildInfo{})
		require.Equal(t, Value{Name: "dev", Raw: "0.0.1-dev"}, v)
	})
}

func TestGet(t *testing.T) {
	require.NotEmpty(t, Get().Raw)
}
