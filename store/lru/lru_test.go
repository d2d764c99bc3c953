package lru

import (
	"context"
	"testing"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	s, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok, err := s.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}

	// The store must hand back exactly the bytes it was given; the TTL is a
	// hint it may ignore, the never-expires sentinel included.
	raw := []byte{0x00, 0x53, 0x54, 0xff}
	if ok, err := s.Set(ctx, "k", raw, 1, starsays.NeverExpires); !ok || err != nil {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	b, ok, err := s.Get(ctx, "k")
	if !ok || err != nil || string(b) != string(raw) {
		t.Fatalf("Get: ok=%v err=%v b=%x", ok, err, b)
	}

	if ok, err := s.Set(ctx, "k", []byte("v2"), 1, 0); !ok || err != nil {
		t.Fatalf("overwrite: ok=%v err=%v", ok, err)
	}
	if b, _, _ := s.Get(ctx, "k"); string(b) != "v2" {
		t.Fatalf("overwrite not visible, got %q", b)
	}

	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	s, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, _ = s.Set(ctx, "a", []byte("1"), 1, 0)
	_, _ = s.Set(ctx, "b", []byte("2"), 1, 0)
	_, _, _ = s.Get(ctx, "a") // freshen a; b is now the eviction candidate
	_, _ = s.Set(ctx, "c", []byte("3"), 1, 0)

	if _, ok, _ := s.Get(ctx, "b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	if _, ok, _ := s.Get(ctx, "a"); !ok {
		t.Fatalf("expected a to survive")
	}
	if _, ok, _ := s.Get(ctx, "c"); !ok {
		t.Fatalf("expected c to be resident")
	}
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for size 0")
	}
}

func TestClosePurges(t *testing.T) {
	ctx := context.Background()
	s, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, _ = s.Set(ctx, "k", []byte("v"), 1, 0)
	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("Close should purge entries")
	}
}
