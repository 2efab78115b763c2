package repository

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// unreachableAddr returns an address that refuses connections.
func unreachableAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestRedisCache_BackendErrorsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cache := NewRedisCache(unreachableAddr(t), "test:", time.Minute, zap.New(core))
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, ok := cache.Get(ctx, "recommendation:10")
	assert.False(t, ok)

	entries := logs.FilterMessage("redis get failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "recommendation:10", entries[0].ContextMap()["key"])

	assert.Error(t, cache.Set(ctx, "recommendation:10", "v"))
	assert.Error(t, cache.Ping(ctx))
}
