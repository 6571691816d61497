package graph

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
)

func bookDetailRecord() *db.Record {
	return makeRecord(
		[]string{"b", "a", "genres", "avgRating", "ratingsCount", "readersCount", "finishedCount", "adaptations"},
		[]any{
			bookNode("BOOK-1", "Dune"),
			dbtype.Node{Props: map[string]any{"id": "AUTHOR-1", "name": "Frank Herbert"}},
			[]any{"Science Fiction", "Adventure"},
			4.5,
			int64(12),
			int64(3),
			int64(7),
			[]any{dbtype.Node{Props: map[string]any{"id": "MOVIE-1", "title": "Dune: Part One"}}},
		},
	)
}

func TestGetBookByIDNotFound(t *testing.T) {
	gw := &fakeGateway{}
	store := newTestStore(t, gw)

	_, err := store.GetBookByID(context.Background(), "BOOK-404", "")
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(gw.calls()) != 1 {
		t.Fatalf("missing book should stop after the primary query, got %d", len(gw.calls()))
	}
}

func TestGetBookByIDMapsPrimaryRecord(t *testing.T) {
	gw := &fakeGateway{}
	gw.results = append(gw.results, []*db.Record{bookDetailRecord()})
	store := newTestStore(t, gw)

	detail, err := store.GetBookByID(context.Background(), "BOOK-1", "")
	if err != nil {
		t.Fatalf("GetBookByID: %v", err)
	}
	if detail.Title != "Dune" || detail.Author != "Frank Herbert" || detail.AuthorID != "AUTHOR-1" {
		t.Fatalf("detail = %+v", detail)
	}
	if len(detail.Genres) != 2 || detail.Genres[0] != "Science Fiction" {
		t.Fatalf("genres = %v", detail.Genres)
	}
	if detail.AverageRating != 4.5 || detail.RatingsCount != 12 || detail.ReadersCount != 3 || detail.FinishedCount != 7 {
		t.Fatalf("aggregates = %+v", detail)
	}
	if len(detail.Adaptations) != 1 || detail.Adaptations[0].Title != "Dune: Part One" {
		t.Fatalf("adaptations = %+v", detail.Adaptations)
	}
	if len(detail.FriendsReading) != 0 {
		t.Fatalf("anonymous viewer should see no friends, got %+v", detail.FriendsReading)
	}
	for _, q := range gw.calls() {
		if strings.Contains(q, "FRIEND") {
			t.Fatalf("anonymous viewer should not trigger the friend query")
		}
	}
}

func TestGetBookByIDRunsFriendQueryForViewer(t *testing.T) {
	gw := &fakeGateway{}
	gw.resultFor = map[string][]*db.Record{bookByIDQuery: {bookDetailRecord()}}
	store := newTestStore(t, gw)

	detail, err := store.GetBookByID(context.Background(), "BOOK-1", "USER-1")
	if err != nil {
		t.Fatalf("GetBookByID: %v", err)
	}
	if detail.FriendsReading == nil {
		t.Fatalf("friends reading should never be nil")
	}
	var sawFriends bool
	for i, q := range gw.calls() {
		if strings.Contains(q, "[:FRIEND]") {
			sawFriends = true
			if gw.params[i]["userId"] != "USER-1" || gw.params[i]["bookId"] != "BOOK-1" {
				t.Fatalf("friend query params = %v", gw.params[i])
			}
		}
	}
	if !sawFriends {
		t.Fatalf("signed-in viewer should trigger the friend query, got %v", gw.calls())
	}
}

func TestGetBookByIDFollowUpFailuresDegrade(t *testing.T) {
	gw := &fakeGateway{
		resultFor: map[string][]*db.Record{bookByIDQuery: {bookDetailRecord()}},
		err:       errors.New("transient"),
		errFrom:   2,
	}
	store := newTestStore(t, gw)

	detail, err := store.GetBookByID(context.Background(), "BOOK-1", "USER-1")
	if err != nil {
		t.Fatalf("follow-up failures must not fail the page: %v", err)
	}
	if len(detail.FriendsReading) != 0 || len(detail.SimilarBooks) != 0 {
		t.Fatalf("failed follow-ups should leave empty collections, got %+v", detail)
	}
	if detail.Title != "Dune" {
		t.Fatalf("primary record should still be mapped, got %+v", detail)
	}
}

func TestFriendsReadingMapsStatus(t *testing.T) {
	gw := &fakeGateway{}
	gw.results = append(gw.results, []*db.Record{
		makeRecord(
			[]string{"friend", "status"},
			[]any{dbtype.Node{Props: map[string]any{"id": "USER-2", "name": "Bea"}}, "READING"},
		),
		makeRecord(
			[]string{"friend", "status"},
			[]any{dbtype.Node{Props: map[string]any{"id": "USER-3", "name": "Cal"}}, "WANTS_TO_READ"},
		),
	})
	store := newTestStore(t, gw)

	friends, err := store.friendsReading(context.Background(), "USER-1", "BOOK-1")
	if err != nil {
		t.Fatalf("friendsReading: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("friend count = %d", len(friends))
	}
	if friends[0].Name != "Bea" || friends[0].Status != "reading" {
		t.Fatalf("friends[0] = %+v", friends[0])
	}
	if friends[1].Status != "want-to-read" {
		t.Fatalf("friends[1] = %+v", friends[1])
	}
}
