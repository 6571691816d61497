package graph

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

func TestAsIntCoercions(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{int64(7), 7},
		{int(3), 3},
		{float64(4.9), 4},
		{"12", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asInt(tc.in); got != tc.want {
			t.Fatalf("asInt(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAsFloatCoercions(t *testing.T) {
	if got := asFloat(int64(4)); got != 4.0 {
		t.Fatalf("asFloat(int64) = %v, want 4", got)
	}
	if got := asFloat(3.5); got != 3.5 {
		t.Fatalf("asFloat(float64) = %v, want 3.5", got)
	}
	if got := asFloat(nil); got != 0 {
		t.Fatalf("asFloat(nil) = %v, want 0", got)
	}
}

func TestAsTime(t *testing.T) {
	ref := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := asTime(ref); !got.Equal(ref) {
		t.Fatalf("asTime(time.Time) = %v, want %v", got, ref)
	}
	if got := asTime("2025-06-01T12:00:00Z"); !got.Equal(ref) {
		t.Fatalf("asTime(RFC3339) = %v, want %v", got, ref)
	}
	if got := asTime("not a timestamp"); !got.IsZero() {
		t.Fatalf("asTime(garbage) = %v, want zero", got)
	}
	if got := asTime(nil); !got.IsZero() {
		t.Fatalf("asTime(nil) = %v, want zero", got)
	}
}

func TestNodeProps(t *testing.T) {
	node := dbtype.Node{Props: map[string]any{"id": "BOOK-1"}}
	props := nodeProps(node)
	if props == nil || props["id"] != "BOOK-1" {
		t.Fatalf("nodeProps(node) = %v", props)
	}
	if nodeProps(nil) != nil {
		t.Fatalf("nodeProps(nil) should be nil")
	}
	if nodeProps("oops") != nil {
		t.Fatalf("nodeProps(non-node) should be nil")
	}
}

func TestStringSliceDropsNonStrings(t *testing.T) {
	in := []any{"Fantasy", int64(3), "", "Mystery"}
	got := stringSlice(in)
	if len(got) != 2 || got[0] != "Fantasy" || got[1] != "Mystery" {
		t.Fatalf("stringSlice = %v", got)
	}
}

func TestNodeSlice(t *testing.T) {
	in := []any{
		dbtype.Node{Props: map[string]any{"id": "BOOK-1", "title": "Dune"}},
		"not a node",
		dbtype.Node{Props: map[string]any{"id": "BOOK-2", "title": "Hyperion"}},
	}
	got := nodeSlice(in)
	if len(got) != 2 {
		t.Fatalf("nodeSlice length = %d, want 2", len(got))
	}
	if got[1]["id"] != "BOOK-2" {
		t.Fatalf("nodeSlice[1] = %v", got[1])
	}
}

func TestBookFromProps(t *testing.T) {
	book := bookFromProps(map[string]any{
		"id":            "BOOK-9",
		"title":         "Dune",
		"publishedYear": int64(1965),
	})
	if book.ID != "BOOK-9" || book.Title != "Dune" || book.PublishedYear != 1965 {
		t.Fatalf("bookFromProps = %+v", book)
	}
}
