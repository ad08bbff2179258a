package storage

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.Read(CartKey); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unwritten key, got %v", err)
	}

	if err := s.Write(CartKey, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := s.Read(CartKey)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != `[{"id":"1"}]` {
		t.Errorf("unexpected slot value %q", data)
	}

	if err := s.Delete(CartKey); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Read(CartKey); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if _, err := s.Read(OrdersKey); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unwritten key, got %v", err)
	}

	if err := s.Write(OrdersKey, []byte(`[]`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := s.Read(OrdersKey)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("unexpected slot value %q", data)
	}

	// deleting a missing key is a no-op
	if err := s.Delete("never-written"); err != nil {
		t.Errorf("delete of missing key should not fail: %v", err)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first := NewFileStore(dir)
	if err := first.Write(SessionKey("42", CartKey), []byte(`[{"id":"7","qty":2}]`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	second := NewFileStore(dir)
	data, err := second.Read(SessionKey("42", CartKey))
	if err != nil {
		t.Fatalf("read after reopen failed: %v", err)
	}
	if string(data) != `[{"id":"7","qty":2}]` {
		t.Errorf("unexpected slot value %q", data)
	}
}

func TestSessionKey(t *testing.T) {
	if got := SessionKey("", CartKey); got != CartKey {
		t.Errorf("anonymous session should keep the bare key, got %q", got)
	}
	if got := SessionKey("42", CartKey); got != "42/"+CartKey {
		t.Errorf("unexpected scoped key %q", got)
	}
}

func TestFileStorePathSanitized(t *testing.T) {
	s := NewFileStore("/data")
	p := s.path(SessionKey("../evil", CartKey))
	if !strings.HasPrefix(p, "/data"+string(filepath.Separator)) {
		t.Errorf("path must stay under the data dir, got %q", p)
	}
	if strings.Contains(p, "..") {
		t.Errorf("dot segments must be neutralized, got %q", p)
	}
}
