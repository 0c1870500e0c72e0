package text

import (
	"errors"
	"sync"
	"testing"
)

func TestCacheGetOrCreate(t *testing.T) {
	cache := NewCache[string, int](0) // Unlimited

	if _, ok := cache.Get("key1"); ok {
		t.Error("Expected Get to return false for non-existent key")
	}

	createCount := 0
	create := func() (int, error) {
		createCount++
		return 42, nil
	}

	for n := 0; n < 3; n++ {
		val, err := cache.GetOrCreate("key1", create)
		if err != nil || val != 42 {
			t.Fatalf("GetOrCreate = (%v, %v), want (42, nil)", val, err)
		}
	}
	if createCount != 1 {
		t.Errorf("Expected create to be called once, got %d", createCount)
	}
	if val, ok := cache.Get("key1"); !ok || val != 42 {
		t.Errorf("Get = (%v, %v), want (42, true)", val, ok)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	cache := NewCache[string, int](0)
	boom := errors.New("boom")

	if _, err := cache.GetOrCreate("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("failed create must not be stored, Len() = %d", cache.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	cache := NewCache[int, int](8)
	for i := 0; i < 8; i++ {
		_, _ = cache.GetOrCreate(i, func() (int, error) { return i, nil })
	}
	// Touch 0 so it survives the next eviction.
	cache.Get(0)

	_, _ = cache.GetOrCreate(100, func() (int, error) { return 100, nil })

	if got := cache.Len(); got != 6 {
		t.Errorf("Len() after eviction = %d, want 6", got)
	}
	if _, ok := cache.Get(0); !ok {
		t.Error("recently used key 0 was evicted")
	}
	if _, ok := cache.Get(100); !ok {
		t.Error("newest key was evicted")
	}
	if _, ok := cache.Get(1); ok {
		t.Error("oldest key 1 should have been evicted")
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache[string, int](0)
	_, _ = cache.GetOrCreate("a", func() (int, error) { return 1, nil })
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	cache := NewCache[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := (g + i) % 32
				v, err := cache.GetOrCreate(key, func() (int, error) { return key * 2, nil })
				if err != nil || v != key*2 {
					t.Errorf("GetOrCreate(%d) = (%d, %v)", key, v, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCacheDelete(t *testing.T) {
	cache := NewCache[int, string](0)
	for i := 0; i < 6; i++ {
		_, _ = cache.GetOrCreate(i, func() (string, error) { return "v", nil })
	}

	cache.Delete(0)
	cache.Delete(42)
	if _, ok := cache.Get(0); ok {
		t.Error("deleted key still present")
	}

	n := cache.DeleteFunc(func(k int, _ string) bool { return k%2 == 0 })
	if n != 2 {
		t.Errorf("DeleteFunc removed %d entries, want 2", n)
	}
	if got := cache.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
