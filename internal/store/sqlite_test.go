package store_test

import (
	"path/filepath"
	"testing"

	"github.com/shrek198/thrive-well-tracker/internal/store"
)

func newTestSQLiteKV(t *testing.T) *store.SQLiteKV {
	t.Helper()
	kv, err := store.OpenSQLiteKV(filepath.Join(t.TempDir(), "thrive.db"))
	if err != nil {
		t.Fatalf("open sqlite kv: %v", err)
	}
	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Errorf("close sqlite kv: %v", err)
		}
	})
	return kv
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	t.Parallel()
	kv := newTestSQLiteKV(t)

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("expected missing key to be (false, nil), got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(store.KeyWorkouts, []byte(`[{"id":"w1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, ok, err := kv.Get(store.KeyWorkouts)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || string(raw) != `[{"id":"w1"}]` {
		t.Fatalf("unexpected value: ok=%v raw=%s", ok, raw)
	}

	// Set on an existing key overwrites.
	if err := kv.Set(store.KeyWorkouts, []byte("[]")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	raw, _, err = kv.Get(store.KeyWorkouts)
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("expected overwritten value, got %s", raw)
	}

	if err := kv.Delete(store.KeyWorkouts); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(store.KeyWorkouts); ok {
		t.Fatalf("expected key gone after delete")
	}
}

func TestSQLiteKVKeys(t *testing.T) {
	t.Parallel()
	kv := newTestSQLiteKV(t)

	for _, key := range []string{store.KeyMeals, store.KeyWorkouts, store.KeyProfile} {
		if err := kv.Set(key, []byte("[]")); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	keys, err := kv.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %v", keys)
	}
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "thrive.db")

	kv, err := store.OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("open sqlite kv: %v", err)
	}
	if err := kv.Set(store.KeyMeals, []byte(`["x"]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := store.OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen sqlite kv: %v", err)
	}
	defer reopened.Close()
	raw, ok, err := reopened.Get(store.KeyMeals)
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if string(raw) != `["x"]` {
		t.Fatalf("unexpected value after reopen: %s", raw)
	}
}
