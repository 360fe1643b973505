package cache

import (
	"testing"
	"time"
)

func TestLRU_GetSet(t *testing.T) {
	c := New[float64](2, time.Minute)

	c.Set("USD", 73.21)
	got, ok := c.Get("USD")
	if !ok || got != 73.21 {
		t.Fatalf("Get(USD) = %v, %v; want 73.21, true", got, ok)
	}

	if _, ok := c.Get("EUR"); ok {
		t.Error("Get(EUR) should miss")
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // refresh a
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should survive eviction")
	}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
}

func TestLRU_ExpiresEntries(t *testing.T) {
	c := New[int](10, 10*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Error("expired entry should miss")
	}
}
