package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/roomportal/internal/prefs"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open("file:" + filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return store
}

func TestStore_MissingVisitor(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	_, ok, err := store.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected no record for an unknown visitor")
	}
}

func TestStore_PutThenGet(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	want := prefs.Preferences{Language: prefs.LanguageEnglish, HighContrast: true, FontSize: 45}
	if err := store.Put(ctx, "visitor-1", want); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	got, ok, err := store.Get(ctx, "visitor-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a stored record")
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestStore_PutOverwritesExistingRecord(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	first := prefs.Preferences{Language: prefs.LanguagePolish, FontSize: 20}
	second := prefs.Preferences{Language: prefs.LanguageEnglish, HighContrast: true, FontSize: 30}
	if err := store.Put(ctx, "visitor-1", first); err != nil {
		t.Fatalf("first Put returned error: %v", err)
	}
	if err := store.Put(ctx, "visitor-1", second); err != nil {
		t.Fatalf("second Put returned error: %v", err)
	}

	got, ok, err := store.Get(ctx, "visitor-1")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if got != second {
		t.Fatalf("expected the later record %+v, got %+v", second, got)
	}
}
