package storage

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openBackends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "wellmind.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreBackends(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			var got doc
			found, err := store.Load("missing", &got)
			if err != nil {
				t.Fatalf("Load(missing) error = %v", err)
			}
			if found {
				t.Fatal("Load(missing) reported a document")
			}

			if err := store.Save("buddy", doc{Name: "Buddy", Count: 1}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := store.Save("buddy", doc{Name: "Buddy", Count: 2}); err != nil {
				t.Fatalf("Save (overwrite): %v", err)
			}

			found, err = store.Load("buddy", &got)
			if err != nil || !found {
				t.Fatalf("Load(buddy) = %v, %v", found, err)
			}
			if got.Count != 2 {
				t.Errorf("Count = %d, want 2 after overwrite", got.Count)
			}
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := first.Save("wellmind-journal", doc{Name: "entries", Count: 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore (reopen): %v", err)
	}
	var got doc
	if found, err := second.Load("wellmind-journal", &got); err != nil || !found {
		t.Fatalf("Load after reopen = %v, %v", found, err)
	}
	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestFileStoreCorruptDocumentIsIOError(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := os.WriteFile(store.Path("broken"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var got doc
	_, err = store.Load("broken", &got)
	if !IsIOError(err) {
		t.Fatalf("Load(broken) error = %v, want *IOError", err)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "wellmind.db")

	first, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := first.Save("wellmind-companion", doc{Name: "Buddy", Count: 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite (reopen): %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	var got doc
	if found, err := second.Load("wellmind-companion", &got); err != nil || !found {
		t.Fatalf("Load after reopen = %v, %v", found, err)
	}
	if got.Name != "Buddy" || got.Count != 7 {
		t.Errorf("got %+v", got)
	}
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestApplyMigrationsOnce(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "wellmind.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	migrations := fstest.MapFS{
		"m/001_counter.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE counter (n INTEGER);\n-- +migrate Down\nDROP TABLE counter;\n")},
	}
	for i := 0; i < 2; i++ {
		if err := ApplyMigrations(store.db, migrations, "m"); err != nil {
			t.Fatalf("ApplyMigrations run %d: %v", i+1, err)
		}
	}

	var applied int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied migrations = %d, want 2 (embedded + test)", applied)
	}
}

func TestExtractUpMigration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no markers", "CREATE TABLE t (x INT);", "CREATE TABLE t (x INT);"},
		{"up only", "-- +migrate Up\nSELECT 1;", "\nSELECT 1;"},
		{"up and down", "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;", "\nSELECT 1;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractUpMigration(tt.content); got != tt.want {
				t.Errorf("ExtractUpMigration() = %q, want %q", got, tt.want)
			}
		})
	}
}
