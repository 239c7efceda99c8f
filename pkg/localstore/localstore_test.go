package localstore

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exp := int64(1_700_000_000_000)
	records := []Record{
		{Value: "4006381333931", Title: "Pens", ScannedAt: 100, Source: "camera", HasProductInfo: true},
		{Value: "5000112637922", Title: "Cola", ScannedAt: 200, ExpiresAt: &exp, Source: "file"},
	}
	for _, rec := range records {
		if err := s.Append(ctx, rec); err != nil {
			t.Fatalf("Append(%q) error = %v", rec.Value, err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(got))
	}

	// Most recent scan first.
	if got[0].Value != "5000112637922" {
		t.Errorf("List()[0].Value = %q, want most recent scan", got[0].Value)
	}
	if got[0].ExpiresAt == nil || *got[0].ExpiresAt != exp {
		t.Error("List() dropped expires_at")
	}
	if got[1].HasProductInfo != true {
		t.Error("List() dropped has_product_info")
	}
}

func TestAppendUpsertsByValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Append(ctx, Record{Value: "A", Title: "first", ScannedAt: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(ctx, Record{Value: "A", Title: "second", ScannedAt: 99}); err != nil {
		t.Fatal(err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d records after duplicate append, want 1", len(got))
	}
	if got[0].Title != "second" {
		t.Errorf("List()[0].Title = %q, want the later write", got[0].Title)
	}
	// The creation timestamp is immutable across re-scans.
	if got[0].ScannedAt != 1 {
		t.Errorf("List()[0].ScannedAt = %d, want the original scan time 1", got[0].ScannedAt)
	}
}

func TestAppendEmptyValue(t *testing.T) {
	s := newTestStore(t)
	if err := s.Append(context.Background(), Record{}); err == nil {
		t.Error("Append() with empty value should return an error")
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Append(ctx, Record{Value: "A", ScannedAt: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(ctx, "A"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("List() returned %d records after remove, want 0", len(got))
	}

	// Removing a missing value is not an error.
	if err := s.Remove(ctx, "missing"); err != nil {
		t.Errorf("Remove() of missing value error = %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !got.AddToHistory {
		t.Error("GetSettings() default AddToHistory = false, want true")
	}

	want := Settings{AddToHistory: false, ContinueScanning: true, Formats: []string{"ean_13", "qr_code"}}
	if err := s.Configure(ctx, want); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	got, err = s.GetSettings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.ContinueScanning != true || got.AddToHistory != false {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
	if len(got.Formats) != 2 || got.Formats[0] != "ean_13" {
		t.Errorf("GetSettings() formats = %v, want %v", got.Formats, want.Formats)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scans.db")
	ctx := context.Background()

	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Append(ctx, Record{Value: "A", Title: "kept", ScannedAt: 1}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "kept" {
		t.Errorf("List() after reopen = %+v, want the persisted record", got)
	}
}
