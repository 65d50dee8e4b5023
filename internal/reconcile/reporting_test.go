package reconcile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPReportingStoreUpsertBatch(t *testing.T) {
	var received upsertRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewHTTPReportingStore(srv.URL, 5*time.Second)
	rows := []Row{{ItemID: "item-1", Subject: "Math", WeaknessKey: "Math/a/b"}}
	if err := s.UpsertBatch(context.Background(), rows); err != nil {
		t.Fatalf("upsert batch: %v", err)
	}
	if len(received.Rows) != 1 || received.Rows[0].ItemID != "item-1" {
		t.Fatalf("server received unexpected rows: %+v", received.Rows)
	}
}

func TestHTTPReportingStoreNon2xxFailsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "schema mismatch", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	s := NewHTTPReportingStore(srv.URL, 5*time.Second)
	err := s.UpsertBatch(context.Background(), []Row{{ItemID: "item-1"}})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestHTTPReportingStoreEmptyBatchNoCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewHTTPReportingStore(srv.URL, 5*time.Second)
	if err := s.UpsertBatch(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Fatal("empty batch must not call the reporting store")
	}
}
