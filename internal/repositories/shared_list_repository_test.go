package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"shoplist/internal/models"
)

func TestSharedListRoundTrip(t *testing.T) {
	repo := NewSharedListRepository()
	ctx := context.Background()

	records := []json.RawMessage{
		json.RawMessage(`{"id":1,"name":"Eggs","quantity":2,"category":"Dairy"}`),
		json.RawMessage(`{"id":2,"name":"Bread","quantity":1,"category":"Bakery"}`),
	}

	id, err := repo.CreateSnapshot(ctx, records)
	if err != nil {
		t.Fatalf("CreateSnapshot: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a non-empty id")
	}

	got, err := repo.GetSnapshot(ctx, id)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		if string(got[i]) != string(records[i]) {
			t.Fatalf("record %d changed: want %s, got %s", i, records[i], got[i])
		}
	}
}

func TestSharedListPreservesUnknownFields(t *testing.T) {
	repo := NewSharedListRepository()
	ctx := context.Background()

	record := json.RawMessage(`{"id":7,"name":"Jam","note":"the good one"}`)
	id, err := repo.CreateSnapshot(ctx, []json.RawMessage{record})
	if err != nil {
		t.Fatalf("CreateSnapshot: %v", err)
	}

	got, err := repo.GetSnapshot(ctx, id)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if string(got[0]) != string(record) {
		t.Fatalf("expected stored record returned verbatim, got %s", got[0])
	}
}

func TestSharedListUnknownID(t *testing.T) {
	repo := NewSharedListRepository()

	_, err := repo.GetSnapshot(context.Background(), "no-such-id")
	if !errors.Is(err, models.ErrSharedListNotFound) {
		t.Fatalf("expected ErrSharedListNotFound, got %v", err)
	}
}

func TestSharedListIDsAreUnique(t *testing.T) {
	repo := NewSharedListRepository()
	ctx := context.Background()

	records := []json.RawMessage{json.RawMessage(`{"id":1}`)}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := repo.CreateSnapshot(ctx, records)
		if err != nil {
			t.Fatalf("CreateSnapshot: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d snapshots", id, i)
		}
		seen[id] = true
	}
}
