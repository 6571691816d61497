package graph

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/booklovers/backend/internal/domain"
)

// MinQueryLength gates substring search: anything shorter returns an empty
// result without touching the store, avoiding broad scans on one-character
// input.
const MinQueryLength = 2

const searchQuery = `
CALL {
  MATCH (b:BOOK)
  WHERE toLower(b.title) CONTAINS toLower($query)
  OPTIONAL MATCH (b)<-[:WROTE]-(a:AUTHOR)
  RETURN b AS book, a AS author, NULL AS genre, 'book' AS kind
  UNION
  MATCH (a:AUTHOR)
  WHERE toLower(a.name) CONTAINS toLower($query)
  RETURN NULL AS book, a AS author, NULL AS genre, 'author' AS kind
  UNION
  MATCH (g:GENRE)
  WHERE toLower(g.name) CONTAINS toLower($query)
  RETURN NULL AS book, NULL AS author, g AS genre, 'genre' AS kind
}
RETURN book, author, genre, kind
LIMIT $limit
`

// Search runs three independent case-insensitive substring matches (book
// title, author name, genre name), unioned and capped at limit combined.
func (s *Store) Search(ctx context.Context, query string, limit int) (*domain.SearchResults, error) {
	empty := &domain.SearchResults{
		Books:   []domain.SearchBook{},
		Authors: []domain.Author{},
		Genres:  []domain.Genre{},
	}
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return empty, nil
	}

	records, err := s.gw.Read(ctx, searchQuery, map[string]any{
		"query": query,
		"limit": int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	results := empty
	for _, rec := range records {
		switch asString(recordValue(rec, "kind")) {
		case "book":
			book := domain.SearchBook{
				Book:   bookFromProps(nodeProps(recordValue(rec, "book"))),
				Author: "Unknown Author",
			}
			if author := nodeProps(recordValue(rec, "author")); author != nil {
				book.Author = asString(author["name"])
			}
			results.Books = append(results.Books, book)
		case "author":
			results.Authors = append(results.Authors, authorFromProps(nodeProps(recordValue(rec, "author"))))
		case "genre":
			results.Genres = append(results.Genres, genreFromProps(nodeProps(recordValue(rec, "genre"))))
		}
	}
	return results, nil
}

const suggestionsQuery = `
CALL {
  MATCH (b:BOOK)
  WHERE toLower(b.title) CONTAINS toLower($query)
  RETURN b.title AS text, 'book' AS kind, b.id AS id
  UNION
  MATCH (a:AUTHOR)
  WHERE toLower(a.name) CONTAINS toLower($query)
  RETURN a.name AS text, 'author' AS kind, a.id AS id
  UNION
  MATCH (g:GENRE)
  WHERE toLower(g.name) CONTAINS toLower($query)
  RETURN g.name AS text, 'genre' AS kind, g.id AS id
}
RETURN text, kind, id
LIMIT $limit
`

// Suggest returns flat typeahead triples; same short-query gate as Search.
func (s *Store) Suggest(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []domain.Suggestion{}, nil
	}

	records, err := s.gw.Read(ctx, suggestionsQuery, map[string]any{
		"query": query,
		"limit": int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("suggestions %q: %w", query, err)
	}

	out := make([]domain.Suggestion, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.Suggestion{
			Text: asString(recordValue(rec, "text")),
			Type: asString(recordValue(rec, "kind")),
			ID:   asString(recordValue(rec, "id")),
		})
	}
	return out, nil
}
