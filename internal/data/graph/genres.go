package graph

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
)

const genreByIDQuery = `
MATCH (g:GENRE {id: $id})
OPTIONAL MATCH (g)<-[:BELONGS_TO]-(b:BOOK)
WITH g, count(b) AS bookCount
RETURN g, bookCount
`

const genreReaderCountQuery = `
MATCH (g:GENRE {id: $id})<-[:BELONGS_TO]-(:BOOK)<-[:RATES]-(u:USER)
RETURN count(DISTINCT u) AS readerCount
`

const genreBooksQuery = `
MATCH (g:GENRE {id: $id})<-[:BELONGS_TO]-(b:BOOK)
OPTIONAL MATCH (b)<-[:WROTE]-(a:AUTHOR)
OPTIONAL MATCH (b)<-[r:RATES]-(:USER)
WITH b, a, avg(r.rating) AS avgRating, count(r) AS ratingsCount
OPTIONAL MATCH (b)<-[:READING]-(reader:USER)
WITH b, a, avgRating, ratingsCount, count(reader) AS readersCount
RETURN b, a.name AS authorName, avgRating, ratingsCount, readersCount
ORDER BY b.id ASC
LIMIT 20
`

const genreAuthorsQuery = `
MATCH (g:GENRE {id: $id})<-[:BELONGS_TO]-(b:BOOK)<-[:WROTE]-(a:AUTHOR)
WITH a, count(b) AS bookCount
RETURN a, bookCount
ORDER BY bookCount DESC, a.id ASC
LIMIT 4
`

const relatedGenresQuery = `
MATCH (g:GENRE {id: $id})<-[:BELONGS_TO]-(b:BOOK)-[:BELONGS_TO]->(related:GENRE)
WHERE related.id <> $id
WITH related, count(b) AS commonBooks
RETURN related, commonBooks
ORDER BY commonBooks DESC, related.id ASC
LIMIT 5
`

// GetGenreByID fetches the genre node, then its related collections as
// independent follow-up queries so no single query grows unbounded. Each
// follow-up degrades to an empty collection on failure.
func (s *Store) GetGenreByID(ctx context.Context, id string) (*domain.GenreDetail, error) {
	records, err := s.gw.Read(ctx, genreByIDQuery, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("genre %s: %w", id, err)
	}
	if len(records) == 0 {
		return nil, pkgerrors.ErrNotFound
	}

	rec := records[0]
	detail := &domain.GenreDetail{
		Genre:          genreFromProps(nodeProps(recordValue(rec, "g"))),
		BookCount:      asInt(recordValue(rec, "bookCount")),
		Books:          []domain.GenreBook{},
		PopularAuthors: []domain.GenreAuthor{},
		RelatedGenres:  []domain.Genre{},
	}

	params := map[string]any{"id": id}
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		recs, err := s.gw.Read(grpCtx, genreReaderCountQuery, params)
		if err != nil || len(recs) == 0 {
			s.warnFollowUp("genre reader count", id, err)
			return nil
		}
		detail.ReaderCount = asInt(recordValue(recs[0], "readerCount"))
		return nil
	})
	grp.Go(func() error {
		recs, err := s.gw.Read(grpCtx, genreBooksQuery, params)
		if err != nil {
			s.warnFollowUp("genre books", id, err)
			return nil
		}
		for _, rec := range recs {
			detail.Books = append(detail.Books, domain.GenreBook{
				Book:          bookFromProps(nodeProps(recordValue(rec, "b"))),
				Author:        asString(recordValue(rec, "authorName")),
				AverageRating: asFloat(recordValue(rec, "avgRating")),
				RatingsCount:  asInt(recordValue(rec, "ratingsCount")),
				ReadersCount:  asInt(recordValue(rec, "readersCount")),
			})
		}
		return nil
	})
	grp.Go(func() error {
		recs, err := s.gw.Read(grpCtx, genreAuthorsQuery, params)
		if err != nil {
			s.warnFollowUp("genre authors", id, err)
			return nil
		}
		for _, rec := range recs {
			detail.PopularAuthors = append(detail.PopularAuthors, domain.GenreAuthor{
				Author:    authorFromProps(nodeProps(recordValue(rec, "a"))),
				BookCount: asInt(recordValue(rec, "bookCount")),
			})
		}
		return nil
	})
	grp.Go(func() error {
		recs, err := s.gw.Read(grpCtx, relatedGenresQuery, params)
		if err != nil {
			s.warnFollowUp("related genres", id, err)
			return nil
		}
		for _, rec := range recs {
			detail.RelatedGenres = append(detail.RelatedGenres, genreFromProps(nodeProps(recordValue(rec, "related"))))
		}
		return nil
	})
	_ = grp.Wait()

	return detail, nil
}

func (s *Store) warnFollowUp(what, id string, err error) {
	if err != nil && s.log != nil {
		s.log.Warn(what+" lookup failed, returning empty", "id", id, "error", err)
	}
}
