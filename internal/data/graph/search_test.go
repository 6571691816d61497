package graph

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

func TestSearchShortQuerySkipsStore(t *testing.T) {
	gw := &fakeGateway{}
	store := newTestStore(t, gw)

	// "é" is one character in two bytes; the gate counts runes, not bytes.
	for _, q := range []string{"", "d", "  a  ", "é"} {
		results, err := store.Search(context.Background(), q, 10)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if len(results.Books) != 0 || len(results.Authors) != 0 || len(results.Genres) != 0 {
			t.Fatalf("Search(%q) should be empty, got %+v", q, results)
		}
	}
	if len(gw.queries) != 0 {
		t.Fatalf("short queries should not reach the store, got %d queries", len(gw.queries))
	}
}

func TestSearchGroupsByKind(t *testing.T) {
	gw := &fakeGateway{}
	gw.results = append(gw.results, []*db.Record{
		makeRecord(
			[]string{"book", "author", "genre", "kind"},
			[]any{bookNode("BOOK-1", "Dune"), dbtype.Node{Props: map[string]any{"id": "AUTHOR-1", "name": "Frank Herbert"}}, nil, "book"},
		),
		makeRecord(
			[]string{"book", "author", "genre", "kind"},
			[]any{nil, dbtype.Node{Props: map[string]any{"id": "AUTHOR-2", "name": "Dan Simmons"}}, nil, "author"},
		),
		makeRecord(
			[]string{"book", "author", "genre", "kind"},
			[]any{nil, nil, dbtype.Node{Props: map[string]any{"id": "GENRE-1", "name": "Science Fiction"}}, "genre"},
		),
	})
	store := newTestStore(t, gw)

	results, err := store.Search(context.Background(), "dune", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results.Books) != 1 || results.Books[0].Title != "Dune" || results.Books[0].Author != "Frank Herbert" {
		t.Fatalf("books = %+v", results.Books)
	}
	if len(results.Authors) != 1 || results.Authors[0].Name != "Dan Simmons" {
		t.Fatalf("authors = %+v", results.Authors)
	}
	if len(results.Genres) != 1 || results.Genres[0].Name != "Science Fiction" {
		t.Fatalf("genres = %+v", results.Genres)
	}
}

func TestSearchMissingAuthorFallsBack(t *testing.T) {
	gw := &fakeGateway{}
	gw.results = append(gw.results, []*db.Record{
		makeRecord(
			[]string{"book", "author", "genre", "kind"},
			[]any{bookNode("BOOK-2", "Anonymous Work"), nil, nil, "book"},
		),
	})
	store := newTestStore(t, gw)

	results, err := store.Search(context.Background(), "anon", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results.Books[0].Author != "Unknown Author" {
		t.Fatalf("author fallback = %q", results.Books[0].Author)
	}
}

func TestSuggestShortQuerySkipsStore(t *testing.T) {
	gw := &fakeGateway{}
	store := newTestStore(t, gw)

	for _, q := range []string{"x", "ü"} {
		suggestions, err := store.Suggest(context.Background(), q, 5)
		if err != nil {
			t.Fatalf("Suggest(%q): %v", q, err)
		}
		if len(suggestions) != 0 {
			t.Fatalf("Suggest(%q) = %v, want empty", q, suggestions)
		}
	}
	if len(gw.queries) != 0 {
		t.Fatalf("short query should not reach the store")
	}
}

func TestSuggestMapsTriples(t *testing.T) {
	gw := &fakeGateway{}
	gw.results = append(gw.results, []*db.Record{
		makeRecord([]string{"text", "kind", "id"}, []any{"Dune", "book", "BOOK-1"}),
		makeRecord([]string{"text", "kind", "id"}, []any{"Fantasy", "genre", "GENRE-2"}),
	})
	store := newTestStore(t, gw)

	suggestions, err := store.Suggest(context.Background(), "du", 5)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("suggestion count = %d", len(suggestions))
	}
	if suggestions[0].Text != "Dune" || suggestions[0].Type != "book" || suggestions[0].ID != "BOOK-1" {
		t.Fatalf("suggestions[0] = %+v", suggestions[0])
	}
}
