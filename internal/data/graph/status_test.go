package graph

import (
	"context"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

func TestGetBookStatusNoRows(t *testing.T) {
	gw := &fakeGateway{}
	store := newTestStore(t, gw)

	status, err := store.GetBookStatus(context.Background(), "USER-1", "BOOK-1")
	if err != nil {
		t.Fatalf("GetBookStatus: %v", err)
	}
	if status.Status != StatusNone || status.Rating != 0 {
		t.Fatalf("status = %+v, want none/0", status)
	}
}

func TestGetBookStatusMapsRow(t *testing.T) {
	gw := &fakeGateway{}
	gw.results = append(gw.results, []*db.Record{
		makeRecord([]string{"status", "rating"}, []any{"reading", int64(4)}),
	})
	store := newTestStore(t, gw)

	status, err := store.GetBookStatus(context.Background(), "USER-1", "BOOK-7")
	if err != nil {
		t.Fatalf("GetBookStatus: %v", err)
	}
	if status.Status != StatusReading || status.Rating != 4 {
		t.Fatalf("status = %+v", status)
	}
}

func TestSetBookStatusSequence(t *testing.T) {
	gw := &fakeGateway{}
	store := newTestStore(t, gw)

	if err := store.SetBookStatus(context.Background(), "USER-1", "BOOK-7", StatusReading); err != nil {
		t.Fatalf("SetBookStatus: %v", err)
	}

	if len(gw.queries) != 3 {
		t.Fatalf("query count = %d, want 3", len(gw.queries))
	}
	if !strings.Contains(gw.queries[0], "DELETE r") {
		t.Fatalf("first query should clear old edges: %s", gw.queries[0])
	}
	if !strings.Contains(gw.queries[1], "[:READING") {
		t.Fatalf("second query should create READING edge: %s", gw.queries[1])
	}
	if !strings.Contains(gw.queries[2], "HISTORY_ENTRY") {
		t.Fatalf("third query should append history: %s", gw.queries[2])
	}
	if gw.params[2]["action"] != "started" {
		t.Fatalf("history action = %v, want started", gw.params[2]["action"])
	}
	entryID, _ := gw.params[2]["entryId"].(string)
	if !strings.HasPrefix(entryID, "ENTRY-") {
		t.Fatalf("entry id = %q, want ENTRY- prefix", entryID)
	}
}

func TestSetBookStatusNoneOnlyClears(t *testing.T) {
	gw := &fakeGateway{}
	store := newTestStore(t, gw)

	if err := store.SetBookStatus(context.Background(), "USER-1", "BOOK-7", StatusNone); err != nil {
		t.Fatalf("SetBookStatus: %v", err)
	}
	if len(gw.queries) != 1 {
		t.Fatalf("query count = %d, want 1 (clear only)", len(gw.queries))
	}
}

func TestSetBookStatusHistoryActions(t *testing.T) {
	cases := map[string]string{
		StatusReading:    "started",
		StatusFinished:   "finished",
		StatusWantToRead: "want-to-read",
	}
	for status, action := range cases {
		gw := &fakeGateway{}
		store := newTestStore(t, gw)
		if err := store.SetBookStatus(context.Background(), "USER-1", "BOOK-1", status); err != nil {
			t.Fatalf("SetBookStatus(%s): %v", status, err)
		}
		if got := gw.params[2]["action"]; got != action {
			t.Fatalf("action for %s = %v, want %s", status, got, action)
		}
	}
}

func TestRateBookReturnsStoredRating(t *testing.T) {
	gw := &fakeGateway{}
	gw.results = append(gw.results, []*db.Record{
		makeRecord([]string{"rating"}, []any{int64(5)}),
	})
	store := newTestStore(t, gw)

	rating, err := store.RateBook(context.Background(), "USER-1", "BOOK-1", 5)
	if err != nil {
		t.Fatalf("RateBook: %v", err)
	}
	if rating != 5 {
		t.Fatalf("rating = %d, want 5", rating)
	}
	if gw.params[0]["rating"] != int64(5) {
		t.Fatalf("rating param = %v", gw.params[0]["rating"])
	}
	if !strings.Contains(gw.queries[0], "MERGE (u)-[r:RATES]->(b)") {
		t.Fatalf("rate query should upsert: %s", gw.queries[0])
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusReading, StatusFinished, StatusWantToRead, StatusNone} {
		if !ValidStatus(s) {
			t.Fatalf("ValidStatus(%s) = false", s)
		}
	}
	if ValidStatus("abandoned") {
		t.Fatalf("ValidStatus(abandoned) = true")
	}
}
