package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientLimiter(t *testing.T) {
	l := NewClientLimiter(Config{RequestsPerSecond: 1, BurstSize: 2})

	require.True(t, l.Get("a").Allow())
	require.True(t, l.Get("a").Allow())
	require.False(t, l.Get("a").Allow(), "burst exhausted")

	// Separate clients get separate buckets.
	require.True(t, l.Get("b").Allow())

	// Same key returns the same limiter.
	require.Same(t, l.Get("a"), l.Get("a"))
}
