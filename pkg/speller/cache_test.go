package speller

import "testing"

func TestCachePutGet(t *testing.T) {
	c := NewCache(10)
	c.Put("koira", ResultOk)
	c.Put("helsinki", ResultCapitalizeFirst)

	if r, ok := c.Get("koira"); !ok || r != ResultOk {
		t.Errorf("koira: got %v, %v", r, ok)
	}
	if r, ok := c.Get("helsinki"); !ok || r != ResultCapitalizeFirst {
		t.Errorf("helsinki: got %v, %v", r, ok)
	}
	if _, ok := c.Get("kissa"); ok {
		t.Error("unexpected hit for kissa")
	}
}

func TestCacheSkipsNegativeResults(t *testing.T) {
	c := NewCache(10)
	c.Put("xyzzy", ResultFailed)
	c.Put("koIra", ResultCapitalizationError)

	if c.Len() != 0 {
		t.Errorf("cached %d entries, want 0", c.Len())
	}
}

func TestCacheSkipsLongWords(t *testing.T) {
	c := NewCache(10)
	c.Put("lyhyt", ResultOk)
	c.Put("epäjärjestelmällisyys", ResultOk)

	if c.Len() != 1 {
		t.Errorf("cached %d entries, want 1", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(1)
	c.Put("eka", ResultOk)
	c.Put("toka", ResultOk)

	if c.Len() != 1 {
		t.Fatalf("cached %d entries, want 1", c.Len())
	}
	if _, ok := c.Get("eka"); ok {
		t.Error("eka survived eviction")
	}
	if _, ok := c.Get("toka"); !ok {
		t.Error("toka missing")
	}
}

func TestCacheEvictsOldestAccess(t *testing.T) {
	c := NewCache(2)
	c.Put("eka", ResultOk)
	c.Put("toka", ResultOk)
	c.Get("eka")
	c.Put("kolmas", ResultOk)

	if _, ok := c.Get("eka"); !ok {
		t.Error("recently read entry evicted")
	}
	if _, ok := c.Get("toka"); ok {
		t.Error("oldest entry survived")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(10)
	c.Put("koira", ResultOk)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("cache not empty after clear: %d", c.Len())
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := NewCache(10)
	c.Put("koira", ResultCapitalizeFirst)
	c.Put("koira", ResultOk)
	if r, _ := c.Get("koira"); r != ResultOk {
		t.Errorf("got %v, want ok", r)
	}
	if c.Len() != 1 {
		t.Errorf("len %d, want 1", c.Len())
	}
}
