package graph

import (
	"context"
	"fmt"

	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
)

const authorByIDQuery = `
MATCH (a:AUTHOR {id: $id})
OPTIONAL MATCH (a)-[:WROTE]->(b:BOOK)
WITH a, collect(b) AS authorBooks
RETURN a, authorBooks
`

const similarAuthorsQuery = `
MATCH (a:AUTHOR {id: $id})-[:WROTE]->(:BOOK)-[:BELONGS_TO]->(g:GENRE)<-[:BELONGS_TO]-(:BOOK)<-[:WROTE]-(similar:AUTHOR)
WHERE similar.id <> $id
WITH similar, count(g) AS genreOverlap
RETURN similar, genreOverlap
ORDER BY genreOverlap DESC, similar.id ASC
LIMIT 4
`

func (s *Store) GetAuthorByID(ctx context.Context, id string) (*domain.AuthorDetail, error) {
	records, err := s.gw.Read(ctx, authorByIDQuery, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("author %s: %w", id, err)
	}
	if len(records) == 0 {
		return nil, pkgerrors.ErrNotFound
	}

	rec := records[0]
	detail := &domain.AuthorDetail{
		Author:         authorFromProps(nodeProps(recordValue(rec, "a"))),
		Books:          []domain.Book{},
		SimilarAuthors: []domain.Author{},
	}
	for _, props := range nodeSlice(recordValue(rec, "authorBooks")) {
		detail.Books = append(detail.Books, bookFromProps(props))
	}

	similar, err := s.gw.Read(ctx, similarAuthorsQuery, map[string]any{"id": id})
	if err != nil {
		if s.log != nil {
			s.log.Warn("similar-authors lookup failed, returning empty", "author_id", id, "error", err)
		}
		return detail, nil
	}
	for _, rec := range similar {
		detail.SimilarAuthors = append(detail.SimilarAuthors, authorFromProps(nodeProps(recordValue(rec, "similar"))))
	}
	return detail, nil
}

const authorByNameQuery = `
MATCH (a:AUTHOR)
WHERE toLower(a.name) CONTAINS toLower($name)
OPTIONAL MATCH (a)-[:WROTE]->(b:BOOK)
RETURN a, collect(b) AS books
LIMIT 1
`

// FindAuthorByName is the fuzzy lookup used by the chat fallback router.
func (s *Store) FindAuthorByName(ctx context.Context, name string) (*domain.AuthorDetail, error) {
	records, err := s.gw.Read(ctx, authorByNameQuery, map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("author by name %q: %w", name, err)
	}
	if len(records) == 0 {
		return nil, pkgerrors.ErrNotFound
	}
	rec := records[0]
	detail := &domain.AuthorDetail{
		Author:         authorFromProps(nodeProps(recordValue(rec, "a"))),
		Books:          []domain.Book{},
		SimilarAuthors: []domain.Author{},
	}
	for _, props := range nodeSlice(recordValue(rec, "books")) {
		detail.Books = append(detail.Books, bookFromProps(props))
	}
	return detail, nil
}
