package graph

import (
	"context"
	"fmt"
	"math"

	"github.com/booklovers/backend/internal/domain"
)

// Score normalization. Raw traversal scores are unbounded; anything shown
// to a user must land in [0, 99] — never 100, which would imply certainty.

const maxMatchPercent = 99

// bookMatchPercent maps a raw recommendation score (weighted overlap counts
// plus the recency term) to a display percentage.
func bookMatchPercent(score float64) int {
	return clampPercent(int(math.Round(score * 10)))
}

// friendMatchPercent divides by the empirical score ceiling (50) before
// scaling to a percentage.
func friendMatchPercent(score float64) int {
	return clampPercent(int(math.Round(score / 50 * 100)))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > maxMatchPercent {
		return maxMatchPercent
	}
	return p
}

const recommendBooksQuery = `
MATCH (u:USER {id: $userId})-[:RATES]->(rated:BOOK)
WITH u, avg(rated.publishedYear) AS avgYear
MATCH (u)-[:RATES]->(:BOOK)-[:BELONGS_TO]->(g:GENRE)<-[:BELONGS_TO]-(rec:BOOK)
WHERE NOT EXISTS { MATCH (u)-[:RATES]->(rec) }
WITH u, rec, count(*) AS genreOverlap, avgYear
OPTIONAL MATCH (rec)-[:BELONGS_TO]->(t:THEME)<-[:PREFERS_THEME]-(u)
WITH u, rec, genreOverlap, count(t) AS themeOverlap, avgYear
OPTIONAL MATCH (rec)-[:WRITTEN_IN]->(l:LANGUAGE)<-[:PREFERS_LANGUAGE]-(u)
WITH rec, genreOverlap, themeOverlap, count(l) AS languageMatch, avgYear
OPTIONAL MATCH (rec)<-[:WROTE]-(a:AUTHOR)
WITH rec, a,
     genreOverlap * 3 + themeOverlap * 2 + languageMatch * 1 +
     (10 - abs(coalesce(rec.publishedYear, 2020) - coalesce(avgYear, 2020)) / 10) AS score
RETURN rec, a.name AS authorName, score
ORDER BY score DESC, rec.id ASC
LIMIT $limit
`

// RecommendBooks scores unrated books sharing genres with the user's rated
// set: genre overlap x3, theme overlap x2, language match x1, plus a recency
// term against the mean published year of the user's ratings. A user with no
// ratings gets an empty list, not an error.
func (s *Store) RecommendBooks(ctx context.Context, userID string, limit int) ([]domain.RecommendedBook, error) {
	records, err := s.gw.Read(ctx, recommendBooksQuery, map[string]any{
		"userId": userID,
		"limit":  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("recommend books for %s: %w", userID, err)
	}

	out := make([]domain.RecommendedBook, 0, len(records))
	for _, rec := range records {
		entry := domain.RecommendedBook{
			Book:         bookFromProps(nodeProps(recordValue(rec, "rec"))),
			Author:       asString(recordValue(rec, "authorName")),
			MatchPercent: bookMatchPercent(asFloat(recordValue(rec, "score"))),
		}
		if entry.Author == "" {
			entry.Author = "Unknown Author"
		}
		out = append(out, entry)
	}
	return out, nil
}

const trendingBooksQuery = `
MATCH (u:USER)-[r:RATES]->(b:BOOK)
WHERE r.timestamp > datetime() - duration('P30D')
WITH b, count(DISTINCT u) AS userCount, avg(r.rating) AS avgRating
WHERE userCount > $minRaters
OPTIONAL MATCH (b)<-[:WROTE]-(a:AUTHOR)
OPTIONAL MATCH (b)-[:BELONGS_TO]->(g:GENRE)
RETURN b, a.name AS authorName, collect(g.name) AS genres, userCount, avgRating
ORDER BY userCount * avgRating DESC, b.id ASC
LIMIT $limit
`

// TrendingBooks ranks books rated by more than minRaters distinct users in
// the trailing 30 days by userCount x avgRating.
func (s *Store) TrendingBooks(ctx context.Context, limit, minRaters int) ([]domain.TrendingBook, error) {
	records, err := s.gw.Read(ctx, trendingBooksQuery, map[string]any{
		"limit":     int64(limit),
		"minRaters": int64(minRaters),
	})
	if err != nil {
		return nil, fmt.Errorf("trending books: %w", err)
	}

	out := make([]domain.TrendingBook, 0, len(records))
	for _, rec := range records {
		genres := stringSlice(recordValue(rec, "genres"))
		if genres == nil {
			genres = []string{}
		}
		out = append(out, domain.TrendingBook{
			Book:    bookFromProps(nodeProps(recordValue(rec, "b"))),
			Author:  asString(recordValue(rec, "authorName")),
			Genres:  genres,
			Readers: asInt(recordValue(rec, "userCount")),
			Rating:  asFloat(recordValue(rec, "avgRating")),
		})
	}
	return out, nil
}

const currentlyReadingQuery = `
MATCH (u:USER {id: $userId})-[:HAS_HISTORY]->(rh:READING_HISTORY)-[:CONTAINS_ENTRY]->(he:HISTORY_ENTRY)
WHERE he.action = 'started' AND NOT EXISTS {
  MATCH (rh)-[:CONTAINS_ENTRY]->(finished:HISTORY_ENTRY)
  WHERE finished.action = 'finished' AND finished.timestamp > he.timestamp
}
MATCH (he)-[:REFERENCES_BOOK]->(b:BOOK)
OPTIONAL MATCH (b)<-[:WROTE]-(a:AUTHOR)
RETURN b, a.name AS authorName, he.timestamp AS startedAt
ORDER BY startedAt DESC
LIMIT 5
`

// CurrentlyReading derives the in-progress list from the append-only
// history: started entries with no later finished entry.
func (s *Store) CurrentlyReading(ctx context.Context, userID string) ([]domain.ReadingBook, error) {
	records, err := s.gw.Read(ctx, currentlyReadingQuery, map[string]any{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("currently reading for %s: %w", userID, err)
	}

	out := make([]domain.ReadingBook, 0, len(records))
	for _, rec := range records {
		entry := domain.ReadingBook{
			Book:      bookFromProps(nodeProps(recordValue(rec, "b"))),
			Author:    asString(recordValue(rec, "authorName")),
			StartedAt: asTime(recordValue(rec, "startedAt")),
		}
		if entry.Author == "" {
			entry.Author = "Unknown Author"
		}
		out = append(out, entry)
	}
	return out, nil
}

const recentlyAddedQuery = `
MATCH (b:BOOK)
WHERE b.publishedYear IS NOT NULL AND b.publishedYear >= $sinceYear
OPTIONAL MATCH (b)<-[:WROTE]-(a:AUTHOR)
RETURN b, a.name AS authorName
ORDER BY b.publishedYear DESC, b.id ASC
LIMIT $limit
`

func (s *Store) RecentlyAddedBooks(ctx context.Context, sinceYear, limit int) ([]domain.RecentBook, error) {
	records, err := s.gw.Read(ctx, recentlyAddedQuery, map[string]any{
		"sinceYear": int64(sinceYear),
		"limit":     int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("recently added books: %w", err)
	}

	out := make([]domain.RecentBook, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.RecentBook{
			Book:   bookFromProps(nodeProps(recordValue(rec, "b"))),
			Author: asString(recordValue(rec, "authorName")),
		})
	}
	return out, nil
}

const adaptationsQuery = `
MATCH (m:MOVIE)-[:ADAPTED_FROM]->(b:BOOK)
OPTIONAL MATCH (u:USER {id: $userId})-[r:RATES]->(b)
RETURN m, b, r IS NOT NULL AS hasRead
ORDER BY m.releaseYear DESC, m.id ASC
LIMIT $limit
`

func (s *Store) BookAdaptations(ctx context.Context, userID string, limit int) ([]domain.Adaptation, error) {
	records, err := s.gw.Read(ctx, adaptationsQuery, map[string]any{
		"userId": userID,
		"limit":  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("adaptations for %s: %w", userID, err)
	}

	out := make([]domain.Adaptation, 0, len(records))
	for _, rec := range records {
		book := nodeProps(recordValue(rec, "b"))
		out = append(out, domain.Adaptation{
			Movie:     movieFromProps(nodeProps(recordValue(rec, "m"))),
			BookID:    asString(book["id"]),
			BookTitle: asString(book["title"]),
			HasRead:   asBool(recordValue(rec, "hasRead")),
		})
	}
	return out, nil
}

const topGenresQuery = `
MATCH (u:USER {id: $userId})-[:RATES]->(b:BOOK)-[:BELONGS_TO]->(g:GENRE)
WITH g.name AS genre, count(*) AS bookCount
RETURN genre, bookCount
ORDER BY bookCount DESC, genre ASC
LIMIT $limit
`

// TopGenres is the rating-weighted genre histogram behind the chat "genres"
// reply and the profile page. Percentage uses the original fixed base of 10
// rated books.
func (s *Store) TopGenres(ctx context.Context, userID string, limit int) ([]domain.GenreStat, error) {
	records, err := s.gw.Read(ctx, topGenresQuery, map[string]any{
		"userId": userID,
		"limit":  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("top genres for %s: %w", userID, err)
	}

	out := make([]domain.GenreStat, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.GenreStat{
			Name:       asString(recordValue(rec, "genre")),
			Percentage: clampPercent(int(math.Round(asFloat(recordValue(rec, "bookCount")) / 10 * 100))),
		})
	}
	return out, nil
}
