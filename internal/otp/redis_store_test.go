package otp

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, ttl), mr
}

func TestIssueReplacesPriorCode(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t, 10*time.Minute)

	if err := store.Issue(ctx, "a@x.com", "111111"); err != nil {
		t.Fatalf("issue first: %v", err)
	}
	if err := store.Issue(ctx, "a@x.com", "222222"); err != nil {
		t.Fatalf("issue second: %v", err)
	}

	ok, err := store.Verify(ctx, "a@x.com", "111111")
	if err != nil {
		t.Fatalf("verify old: %v", err)
	}
	if ok {
		t.Fatal("old code must not verify after reissue")
	}

	ok, err = store.Verify(ctx, "a@x.com", "222222")
	if err != nil {
		t.Fatalf("verify new: %v", err)
	}
	if !ok {
		t.Fatal("new code must verify")
	}
}

func TestVerifyDoesNotConsume(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t, 10*time.Minute)

	if err := store.Issue(ctx, "a@x.com", "123456"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	for i := 0; i < 2; i++ {
		ok, err := store.Verify(ctx, "a@x.com", "123456")
		if err != nil {
			t.Fatalf("verify %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("verify %d: expected code to remain valid", i)
		}
	}
}

func TestVerifyFailsAfterExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t, 10*time.Minute)

	if err := store.Issue(ctx, "a@x.com", "123456"); err != nil {
		t.Fatalf("issue: %v", err)
	}

	mr.FastForward(10*time.Minute + time.Second)

	ok, err := store.Verify(ctx, "a@x.com", "123456")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("expired code must not verify")
	}
}

func TestVerifyUnknownEmailAndWrongCode(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t, 10*time.Minute)

	ok, err := store.Verify(ctx, "nobody@x.com", "123456")
	if err != nil || ok {
		t.Fatalf("expected (false, nil) for unknown email, got (%v, %v)", ok, err)
	}

	if err := store.Issue(ctx, "a@x.com", "123456"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	ok, err = store.Verify(ctx, "a@x.com", "654321")
	if err != nil || ok {
		t.Fatalf("expected (false, nil) for wrong code, got (%v, %v)", ok, err)
	}
}

func TestInvalidateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t, 10*time.Minute)

	if err := store.Issue(ctx, "a@x.com", "123456"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := store.Invalidate(ctx, "a@x.com"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if err := store.Invalidate(ctx, "a@x.com"); err != nil {
		t.Fatalf("second invalidate: %v", err)
	}

	ok, err := store.Verify(ctx, "a@x.com", "123456")
	if err != nil || ok {
		t.Fatalf("expected invalidated code to fail, got (%v, %v)", ok, err)
	}
}

func TestConcurrentIssueLeavesSingleRecord(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t, 10*time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, err := GenerateCode()
			if err != nil {
				t.Errorf("generate: %v", err)
				return
			}
			if err := store.Issue(ctx, "a@x.com", code); err != nil {
				t.Errorf("issue: %v", err)
			}
		}(i)
	}
	wg.Wait()

	keys := mr.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected exactly one live record, got %d: %v", len(keys), keys)
	}
}

func TestGenerateCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		if strings.HasPrefix(code, "0") {
			t.Fatalf("code must not collapse leading digits, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-numeric code %q", code)
			}
		}
	}
}
