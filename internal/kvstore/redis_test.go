package kvstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeRedis answers the command subset from an in-memory map, optionally
// failing every command.
type fakeRedis struct {
	data map[string]string
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewRedisStore(newFakeRedis())

	// An absent key is not an error.
	if _, ok, err := store.Get(ctx, "adminData"); err != nil || ok {
		t.Fatalf("Get absent = ok=%v err=%v; want absent", ok, err)
	}

	if err := store.Set(ctx, "adminData", `{"heroImages":[]}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := store.Get(ctx, "adminData")
	if err != nil || !ok || v != `{"heroImages":[]}` {
		t.Fatalf("Get = %q ok=%v err=%v; want stored value", v, ok, err)
	}

	if err := store.Delete(ctx, "adminData"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "adminData"); ok {
		t.Error("key still present after delete")
	}

	// Deleting an absent key succeeds.
	if err := store.Delete(ctx, "adminData"); err != nil {
		t.Errorf("Delete absent: %v", err)
	}
}

func TestRedisStore_Errors(t *testing.T) {
	ctx := context.Background()
	broken := newFakeRedis()
	broken.err = errors.New("connection refused")
	store := NewRedisStore(broken)

	if _, _, err := store.Get(ctx, "adminData"); err == nil {
		t.Error("Get: expected error")
	}
	if err := store.Set(ctx, "adminData", "v"); err == nil {
		t.Error("Set: expected error")
	}
	if err := store.Delete(ctx, "adminData"); err == nil {
		t.Error("Delete: expected error")
	}
}
