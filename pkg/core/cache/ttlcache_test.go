package cache

import (
	"testing"
	"time"
)

func TestSetThenGet(t *testing.T) {
	c := New(DefaultTTL)

	data := map[string]string{"siren": "662042449"}
	c.Set(NamespaceFinances, "662042449", data)

	got, ok := c.Get(NamespaceFinances, "662042449")
	if !ok {
		t.Fatal("expected immediate hit after Set")
	}
	if got.(map[string]string)["siren"] != "662042449" {
		t.Errorf("cache returned wrong value: %v", got)
	}
}

func TestKeysAreCaseInsensitive(t *testing.T) {
	c := New(DefaultTTL)
	c.Set(NamespaceCompanies, "BNP Paribas", "662042449")

	if _, ok := c.Get(NamespaceCompanies, "bnp paribas"); !ok {
		t.Error("expected hit for lowercased key")
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New(1 * time.Hour)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c.SetClock(func() time.Time { return now })

	c.Set(NamespaceFinances, "123456789", "payload")

	// Just before expiry: still a hit.
	now = base.Add(1*time.Hour - time.Second)
	if _, ok := c.Get(NamespaceFinances, "123456789"); !ok {
		t.Fatal("expected hit before TTL elapsed")
	}

	// At exactly TTL: guaranteed miss, entry evicted.
	now = base.Add(1 * time.Hour)
	if _, ok := c.Get(NamespaceFinances, "123456789"); ok {
		t.Fatal("expected miss at TTL boundary")
	}
	if c.Len(NamespaceFinances) != 0 {
		t.Errorf("expected stale entry to be evicted, namespace holds %d entries", c.Len(NamespaceFinances))
	}
}

func TestSetRefreshesTimestamp(t *testing.T) {
	c := New(1 * time.Hour)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c.SetClock(func() time.Time { return now })

	c.Set(NamespaceDetails, "552120222", "old")

	now = base.Add(50 * time.Minute)
	c.Set(NamespaceDetails, "552120222", "new")

	// 70 minutes after the first write, 20 after the second.
	now = base.Add(70 * time.Minute)
	got, ok := c.Get(NamespaceDetails, "552120222")
	if !ok {
		t.Fatal("expected hit, Set should have refreshed the timestamp")
	}
	if got.(string) != "new" {
		t.Errorf("expected overwritten value, got %v", got)
	}
}

func TestClearNamespace(t *testing.T) {
	c := New(DefaultTTL)
	c.Set(NamespaceManagement, "a", 1)
	c.Set(NamespaceDocuments, "b", 2)

	c.Clear(NamespaceManagement)
	if _, ok := c.Get(NamespaceManagement, "a"); ok {
		t.Error("cleared namespace should miss")
	}
	if _, ok := c.Get(NamespaceDocuments, "b"); !ok {
		t.Error("untouched namespace should still hit")
	}

	c.Clear()
	if _, ok := c.Get(NamespaceDocuments, "b"); ok {
		t.Error("full clear should wipe every namespace")
	}
}
