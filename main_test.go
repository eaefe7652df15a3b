package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStopsOnCancel(t *testing.T) {
	a := newTestAPI(t)
	a.addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, a) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServeCmdFlags(t *testing.T) {
	cmd := newServeCmd()

	for _, name := range []string{"addr", "static-dir", "debug"} {
		require.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, defaultAddr, cmd.Flags().Lookup("addr").DefValue)
}
