package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
)

func authorDetailRecord() *db.Record {
	return makeRecord(
		[]string{"a", "authorBooks"},
		[]any{
			dbtype.Node{Props: map[string]any{"id": "AUTHOR-1", "name": "Ursula K. Le Guin", "birthYear": int64(1929), "deathYear": int64(2018)}},
			[]any{
				bookNode("BOOK-1", "The Dispossessed"),
				bookNode("BOOK-2", "The Left Hand of Darkness"),
			},
		},
	)
}

func TestGetAuthorByIDNotFound(t *testing.T) {
	gw := &fakeGateway{}
	store := newTestStore(t, gw)

	_, err := store.GetAuthorByID(context.Background(), "AUTHOR-404")
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(gw.calls()) != 1 {
		t.Fatalf("missing author should stop after the primary query, got %d", len(gw.calls()))
	}
}

func TestGetAuthorByIDMapsBooksAndSimilar(t *testing.T) {
	gw := &fakeGateway{}
	gw.results = append(gw.results,
		[]*db.Record{authorDetailRecord()},
		[]*db.Record{
			makeRecord(
				[]string{"similar", "genreOverlap"},
				[]any{dbtype.Node{Props: map[string]any{"id": "AUTHOR-2", "name": "Octavia Butler"}}, int64(3)},
			),
		},
	)
	store := newTestStore(t, gw)

	detail, err := store.GetAuthorByID(context.Background(), "AUTHOR-1")
	if err != nil {
		t.Fatalf("GetAuthorByID: %v", err)
	}
	if detail.Name != "Ursula K. Le Guin" || detail.BirthYear != 1929 || detail.DeathYear != 2018 {
		t.Fatalf("author = %+v", detail.Author)
	}
	if len(detail.Books) != 2 || detail.Books[0].Title != "The Dispossessed" {
		t.Fatalf("books = %+v", detail.Books)
	}
	if len(detail.SimilarAuthors) != 1 || detail.SimilarAuthors[0].Name != "Octavia Butler" {
		t.Fatalf("similar authors = %+v", detail.SimilarAuthors)
	}
}

func TestGetAuthorByIDSimilarFailureDegrades(t *testing.T) {
	gw := &fakeGateway{
		results: [][]*db.Record{{authorDetailRecord()}},
		err:     errors.New("transient"),
		errFrom: 2,
	}
	store := newTestStore(t, gw)

	detail, err := store.GetAuthorByID(context.Background(), "AUTHOR-1")
	if err != nil {
		t.Fatalf("similar-authors failure must not fail the page: %v", err)
	}
	if len(detail.SimilarAuthors) != 0 {
		t.Fatalf("failed follow-up should leave an empty collection, got %+v", detail.SimilarAuthors)
	}
	if len(detail.Books) != 2 {
		t.Fatalf("primary record should still be mapped, got %+v", detail.Books)
	}
}
