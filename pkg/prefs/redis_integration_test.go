//go:build integration

package prefs

import (
	"context"
	"os"
	"testing"
)

func TestRedisStoreIntegration(t *testing.T) {
	addr := os.Getenv("WRISTSCALE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("WRISTSCALE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	s, err := NewRedisStore(ctx, RedisOptions{Addr: addr, Prefix: "wristscale:test:" + t.Name() + ":"})
	if err != nil {
		t.Fatalf("NewRedisStore() error: %v", err)
	}
	defer s.Close()
	defer s.rdb.Del(ctx, s.prefix+KeyTheme)

	if _, ok, err := s.Get(ctx, KeyTheme); ok || err != nil {
		t.Errorf("Get() on fresh prefix = ok %v, err %v", ok, err)
	}
	if got, err := ToggleTheme(ctx, s); err != nil || got != "light" {
		t.Errorf("ToggleTheme() = %q, %v; want light", got, err)
	}
	if got, _ := Theme(ctx, s); got != "light" {
		t.Errorf("Theme() = %q, want light", got)
	}
}
