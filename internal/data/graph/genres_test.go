package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
)

func genreDetailRecord() *db.Record {
	return makeRecord(
		[]string{"g", "bookCount"},
		[]any{dbtype.Node{Props: map[string]any{"id": "GENRE-1", "name": "Science Fiction"}}, int64(42)},
	)
}

func TestGetGenreByIDNotFound(t *testing.T) {
	gw := &fakeGateway{}
	store := newTestStore(t, gw)

	_, err := store.GetGenreByID(context.Background(), "GENRE-404")
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(gw.calls()) != 1 {
		t.Fatalf("missing genre should stop after the primary query, got %d", len(gw.calls()))
	}
}

func TestGetGenreByIDMapsFollowUps(t *testing.T) {
	gw := &fakeGateway{
		resultFor: map[string][]*db.Record{
			genreByIDQuery: {genreDetailRecord()},
			genreReaderCountQuery: {
				makeRecord([]string{"readerCount"}, []any{int64(17)}),
			},
			genreBooksQuery: {
				makeRecord(
					[]string{"b", "authorName", "avgRating", "ratingsCount", "readersCount"},
					[]any{bookNode("BOOK-1", "Dune"), "Frank Herbert", 4.2, int64(9), int64(4)},
				),
			},
			genreAuthorsQuery: {
				makeRecord(
					[]string{"a", "bookCount"},
					[]any{dbtype.Node{Props: map[string]any{"id": "AUTHOR-1", "name": "Frank Herbert"}}, int64(6)},
				),
			},
			relatedGenresQuery: {
				makeRecord(
					[]string{"related", "commonBooks"},
					[]any{dbtype.Node{Props: map[string]any{"id": "GENRE-2", "name": "Adventure"}}, int64(5)},
				),
			},
		},
	}
	store := newTestStore(t, gw)

	detail, err := store.GetGenreByID(context.Background(), "GENRE-1")
	if err != nil {
		t.Fatalf("GetGenreByID: %v", err)
	}
	if detail.Name != "Science Fiction" || detail.BookCount != 42 {
		t.Fatalf("genre = %+v", detail)
	}
	if detail.ReaderCount != 17 {
		t.Fatalf("reader count = %d", detail.ReaderCount)
	}
	if len(detail.Books) != 1 || detail.Books[0].Author != "Frank Herbert" || detail.Books[0].AverageRating != 4.2 {
		t.Fatalf("books = %+v", detail.Books)
	}
	if len(detail.PopularAuthors) != 1 || detail.PopularAuthors[0].BookCount != 6 {
		t.Fatalf("popular authors = %+v", detail.PopularAuthors)
	}
	if len(detail.RelatedGenres) != 1 || detail.RelatedGenres[0].Name != "Adventure" {
		t.Fatalf("related genres = %+v", detail.RelatedGenres)
	}
	if got := len(gw.calls()); got != 5 {
		t.Fatalf("query count = %d, want primary plus four follow-ups", got)
	}
}

func TestGetGenreByIDFollowUpFailuresDegrade(t *testing.T) {
	gw := &fakeGateway{
		resultFor: map[string][]*db.Record{genreByIDQuery: {genreDetailRecord()}},
		err:       errors.New("transient"),
		errFrom:   2,
	}
	store := newTestStore(t, gw)

	detail, err := store.GetGenreByID(context.Background(), "GENRE-1")
	if err != nil {
		t.Fatalf("follow-up failures must not fail the page: %v", err)
	}
	if detail.ReaderCount != 0 || len(detail.Books) != 0 || len(detail.PopularAuthors) != 0 || len(detail.RelatedGenres) != 0 {
		t.Fatalf("failed follow-ups should leave empty collections, got %+v", detail)
	}
	if detail.Name != "Science Fiction" || detail.BookCount != 42 {
		t.Fatalf("primary record should still be mapped, got %+v", detail)
	}
}
