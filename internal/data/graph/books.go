package graph

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
)

const bookByIDQuery = `
MATCH (b:BOOK {id: $id})
OPTIONAL MATCH (b)<-[:WROTE]-(a:AUTHOR)
OPTIONAL MATCH (b)-[:BELONGS_TO]->(g:GENRE)
WITH b, a, collect(g.name) AS genres
OPTIONAL MATCH (:USER)-[r:RATES]->(b)
WITH b, a, genres, avg(r.rating) AS avgRating, count(r) AS ratingsCount
OPTIONAL MATCH (reading:USER)-[:READING]->(b)
WITH b, a, genres, avgRating, ratingsCount, count(reading) AS readersCount
OPTIONAL MATCH (finished:USER)-[:FINISHED]->(b)
WITH b, a, genres, avgRating, ratingsCount, readersCount, count(finished) AS finishedCount
OPTIONAL MATCH (b)-[:ADAPTED_TO]->(m:MOVIE)
RETURN b, a, genres, avgRating, ratingsCount, readersCount, finishedCount,
       collect(m) AS adaptations
`

const friendsReadingQuery = `
MATCH (u:USER {id: $userId})-[:FRIEND]->(friend:USER)-[r:READING|FINISHED|WANTS_TO_READ]->(b:BOOK {id: $bookId})
RETURN friend, type(r) AS status
LIMIT 5
`

const similarBooksQuery = `
MATCH (b:BOOK {id: $id})-[:BELONGS_TO]->(g:GENRE)<-[:BELONGS_TO]-(similar:BOOK)
WHERE similar.id <> $id
WITH similar, count(g) AS genreOverlap
OPTIONAL MATCH (similar)<-[:WROTE]-(a:AUTHOR)
RETURN similar, a.name AS authorName, genreOverlap
ORDER BY genreOverlap DESC, similar.id ASC
LIMIT 4
`

// GetBookByID fetches the primary book record, then the optional related
// collections (friends reading, similar books) as independent follow-up
// queries. A failed follow-up degrades to an empty collection.
func (s *Store) GetBookByID(ctx context.Context, id, viewerID string) (*domain.BookDetail, error) {
	records, err := s.gw.Read(ctx, bookByIDQuery, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("book %s: %w", id, err)
	}
	if len(records) == 0 {
		return nil, pkgerrors.ErrNotFound
	}

	rec := records[0]
	detail := &domain.BookDetail{
		Book:           bookFromProps(nodeProps(recordValue(rec, "b"))),
		Genres:         stringSlice(recordValue(rec, "genres")),
		AverageRating:  asFloat(recordValue(rec, "avgRating")),
		RatingsCount:   asInt(recordValue(rec, "ratingsCount")),
		ReadersCount:   asInt(recordValue(rec, "readersCount")),
		FinishedCount:  asInt(recordValue(rec, "finishedCount")),
		Adaptations:    []domain.Movie{},
		FriendsReading: []domain.FriendStatus{},
		SimilarBooks:   []domain.SimilarBook{},
	}
	if detail.Genres == nil {
		detail.Genres = []string{}
	}
	if author := nodeProps(recordValue(rec, "a")); author != nil {
		detail.Author = asString(author["name"])
		detail.AuthorID = asString(author["id"])
	}
	for _, props := range nodeSlice(recordValue(rec, "adaptations")) {
		detail.Adaptations = append(detail.Adaptations, movieFromProps(props))
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		friends, err := s.friendsReading(grpCtx, viewerID, id)
		if err != nil {
			if s.log != nil {
				s.log.Warn("friends-reading lookup failed, returning empty", "book_id", id, "error", err)
			}
			return nil
		}
		detail.FriendsReading = friends
		return nil
	})
	grp.Go(func() error {
		similar, err := s.similarBooks(grpCtx, id)
		if err != nil {
			if s.log != nil {
				s.log.Warn("similar-books lookup failed, returning empty", "book_id", id, "error", err)
			}
			return nil
		}
		detail.SimilarBooks = similar
		return nil
	})
	_ = grp.Wait()

	return detail, nil
}

func (s *Store) friendsReading(ctx context.Context, viewerID, bookID string) ([]domain.FriendStatus, error) {
	if viewerID == "" {
		return []domain.FriendStatus{}, nil
	}
	records, err := s.gw.Read(ctx, friendsReadingQuery, map[string]any{
		"userId": viewerID,
		"bookId": bookID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.FriendStatus, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.FriendStatus{
			User:   userFromProps(nodeProps(recordValue(rec, "friend"))),
			Status: statusFromRelType(asString(recordValue(rec, "status"))),
		})
	}
	return out, nil
}

func (s *Store) similarBooks(ctx context.Context, bookID string) ([]domain.SimilarBook, error) {
	records, err := s.gw.Read(ctx, similarBooksQuery, map[string]any{"id": bookID})
	if err != nil {
		return nil, err
	}
	out := make([]domain.SimilarBook, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.SimilarBook{
			Book:         bookFromProps(nodeProps(recordValue(rec, "similar"))),
			Author:       asString(recordValue(rec, "authorName")),
			GenreOverlap: asInt(recordValue(rec, "genreOverlap")),
		})
	}
	return out, nil
}
