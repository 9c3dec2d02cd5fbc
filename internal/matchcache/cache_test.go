package matchcache

import (
	"path/filepath"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	if got := Key("dune", "1965"); got != "dune|1965" {
		t.Fatalf("Key = %q", got)
	}
	if got := Key("dune", ""); got != "dune" {
		t.Fatalf("Key without year = %q", got)
	}
	if got := Key("dune", "  "); got != "dune" {
		t.Fatalf("Key with blank year = %q", got)
	}
}

func TestCacheStoreAndLookup(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "match_cache.json")
	cache := NewCache(cachePath, nil)

	entry := Entry{
		Key:      "dune|1965",
		VolumeID: "abc",
		Title:    "Dune",
		Year:     "1965",
	}
	if err := cache.Store(entry); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	found, ok := cache.Lookup("dune|1965")
	if !ok {
		t.Fatal("Lookup failed to find stored entry")
	}
	if found.VolumeID != "abc" {
		t.Errorf("VolumeID mismatch: got %q, want %q", found.VolumeID, "abc")
	}
	if found.CachedAt.IsZero() {
		t.Error("Store should stamp CachedAt when unset")
	}
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "match_cache.json")

	first := NewCache(cachePath, nil)
	if err := first.Store(Entry{Key: "dune", VolumeID: "abc", Title: "Dune"}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	second := NewCache(cachePath, nil)
	if _, ok := second.Lookup("dune"); !ok {
		t.Fatal("entry not found after reload")
	}
}

func TestCacheLookupNotFound(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "match_cache.json"), nil)
	if _, ok := cache.Lookup("missing"); ok {
		t.Error("Lookup should return false for absent entry")
	}
	if _, ok := cache.Lookup("  "); ok {
		t.Error("Lookup should return false for blank key")
	}
}

func TestCacheStoreValidation(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "match_cache.json"), nil)
	if err := cache.Store(Entry{VolumeID: "abc"}); err == nil {
		t.Error("expected error for empty key")
	}
	if err := cache.Store(Entry{Key: "dune"}); err == nil {
		t.Error("expected error for empty volume id")
	}
}

func TestCacheRemove(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "match_cache.json"), nil)
	if err := cache.Store(Entry{Key: "dune", VolumeID: "abc"}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := cache.Remove("dune"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := cache.Lookup("dune"); ok {
		t.Error("entry still present after Remove")
	}
	if err := cache.Remove("dune"); err == nil {
		t.Error("expected error removing absent key")
	}
}

func TestCacheListNewestFirst(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "match_cache.json"), nil)
	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	if err := cache.Store(Entry{Key: "old", VolumeID: "a", CachedAt: older}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := cache.Store(Entry{Key: "new", VolumeID: "b", CachedAt: newer}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	entries := cache.List()
	if len(entries) != 2 {
		t.Fatalf("List returned %d entries", len(entries))
	}
	if entries[0].Key != "new" || entries[1].Key != "old" {
		t.Fatalf("unexpected order: %q then %q", entries[0].Key, entries[1].Key)
	}
}

func TestCacheClearAndCount(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "match_cache.json"), nil)
	if err := cache.Store(Entry{Key: "dune", VolumeID: "abc"}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if cache.Count() != 1 {
		t.Fatalf("Count = %d", cache.Count())
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if cache.Count() != 0 {
		t.Fatalf("Count after Clear = %d", cache.Count())
	}
}

func TestCacheDisabledWithEmptyPath(t *testing.T) {
	cache := NewCache("", nil)
	if err := cache.Store(Entry{Key: "dune", VolumeID: "abc"}); err != nil {
		t.Fatalf("Store on disabled cache should be a no-op, got %v", err)
	}
	if _, ok := cache.Lookup("dune"); ok {
		t.Error("disabled cache should never report hits")
	}
	if cache.Count() != 0 {
		t.Fatalf("Count = %d", cache.Count())
	}
}
