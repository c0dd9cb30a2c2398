package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNewLoginThrottle_Defaults(t *testing.T) {
	th := NewLoginThrottle(nil, 0, 0)
	if th.maxAttempts != defaultMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", defaultMaxAttempts, th.maxAttempts)
	}
	if th.window != defaultWindow {
		t.Fatalf("expected %s window, got %s", defaultWindow, th.window)
	}

	th = NewLoginThrottle(nil, 3, time.Minute)
	if th.maxAttempts != 3 || th.window != time.Minute {
		t.Fatalf("unexpected limits: %d %s", th.maxAttempts, th.window)
	}
}

func TestLoginThrottle_Key(t *testing.T) {
	th := NewLoginThrottle(nil, 0, 0)
	if got := th.key("patient:jane@example.com"); got != "login:fail:patient:jane@example.com" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestLoginThrottle_UnreachableRedisReturnsErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()

	th := NewLoginThrottle(client, 5, time.Minute)
	ctx := context.Background()

	if _, err := th.Allowed(ctx, "k"); err == nil {
		t.Fatalf("expected error from Allowed")
	}
	if err := th.RecordFailure(ctx, "k"); err == nil {
		t.Fatalf("expected error from RecordFailure")
	}
	if err := th.Reset(ctx, "k"); err == nil {
		t.Fatalf("expected error from Reset")
	}
}
