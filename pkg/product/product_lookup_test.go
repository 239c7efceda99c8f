package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("barcode"); got != "4006381333931" {
			t.Errorf("barcode query = %q", got)
		}
		w.Write([]byte(`{"title":"Stabilo Pens","brand":"Stabilo","description":"Fine liners","images":["https://img.example/p.jpg"]}`))
	}))
	defer srv.Close()

	c := NewLookupClient(srv.URL)
	info, err := c.Lookup(context.Background(), "4006381333931")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if info == nil {
		t.Fatal("Lookup() = nil, want product info")
	}
	if info.Title != "Stabilo Pens" || info.Brand != "Stabilo" {
		t.Errorf("Lookup() = %+v", info)
	}
	if info.ImageURL != "https://img.example/p.jpg" {
		t.Errorf("Lookup() imageURL = %q, want first of images array", info.ImageURL)
	}
}

func TestLookupAliasFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"alias":"Generic Soda"}`))
	}))
	defer srv.Close()

	info, err := NewLookupClient(srv.URL).Lookup(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if info == nil || info.Title != "Generic Soda" {
		t.Errorf("Lookup() = %+v, want alias used as title", info)
	}
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	info, err := NewLookupClient(srv.URL).Lookup(context.Background(), "000")
	if err != nil {
		t.Fatalf("Lookup() miss should not error, got %v", err)
	}
	if info != nil {
		t.Errorf("Lookup() = %+v, want nil on miss", info)
	}
}

func TestLookupEmptyPayloadIsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	info, err := NewLookupClient(srv.URL).Lookup(context.Background(), "000")
	if err != nil {
		t.Fatal(err)
	}
	if info != nil {
		t.Errorf("Lookup() = %+v, want nil for empty metadata", info)
	}
}

func TestLookupUnconfigured(t *testing.T) {
	info, err := NewLookupClient("").Lookup(context.Background(), "4006381333931")
	if err != nil || info != nil {
		t.Errorf("Lookup() with no base URL = (%+v, %v), want (nil, nil)", info, err)
	}
}
