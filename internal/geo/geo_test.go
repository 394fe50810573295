package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"convreport/internal/model"
)

func TestOpenMissingDatabase(t *testing.T) {
	r, err := Open(filepath.Join(t.TempDir(), "absent.mmdb"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Fatal("expected nil resolver for missing database")
	}
	// nil resolver must be safe to use
	r.Close()
	if got := r.Country("203.0.113.7"); got != "" {
		t.Errorf("Country() on nil resolver = %q, want empty", got)
	}
}

func TestOpenCorruptDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mmdb")
	if err := os.WriteFile(path, []byte("not an mmdb"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for corrupt database")
	}
}

func TestEnrichNilResolver(t *testing.T) {
	convs := []model.Conversation{
		{ID: "c1", IP: "203.0.113.7"},
		{ID: "c2", IP: "203.0.113.8", Country: "Romania"},
	}
	want := append([]model.Conversation(nil), convs...)

	Enrich(convs, nil)

	if diff := cmp.Diff(want, convs); diff != "" {
		t.Errorf("Enrich(nil) changed conversations (-want +got):\n%s", diff)
	}
}
