package httputil

import (
	"errors"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"simple", "key1", map[string]string{"foo": "bar"}},
		{"string", "key2", "test"},
		{"coordinate key", "maven:org.example:lib:1.0.0", "pom data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}

			var result any
			switch tt.value.(type) {
			case map[string]string:
				result = &map[string]string{}
			case string:
				result = new(string)
			}

			ok, err := c.Get(tt.key, result)
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if !ok {
				t.Fatal("Get() returned false for existing key")
			}
		})
	}
}

func TestCache_Miss(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	var result string
	ok, err := c.Get("missing", &result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() returned true for missing key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 10*time.Millisecond)

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var res string
	ok, err := c.Get("key", &res)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}

	time.Sleep(20 * time.Millisecond)

	ok, err = c.Get("key", &res)
	if ok {
		t.Error("Get() returned true for expired entry")
	}
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestCache_NoExpiration(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 0)

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var res string
	ok, err := c.Get("key", &res)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}
}

func TestCache_Namespace(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	maven := c.Namespace("maven:")
	github := c.Namespace("github:")

	if err := maven.Set("key", "maven-value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := github.Set("key", "github-value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var got string
	if ok, _ := maven.Get("key", &got); !ok || got != "maven-value" {
		t.Errorf("maven namespace Get() = %q, %v", got, ok)
	}
	if ok, _ := github.Get("key", &got); !ok || got != "github-value" {
		t.Errorf("github namespace Get() = %q, %v", got, ok)
	}

	// The parent cache sees neither key unprefixed.
	if ok, _ := c.Get("key", &got); ok {
		t.Error("parent cache should miss on un-namespaced key")
	}
}
