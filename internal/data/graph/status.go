package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/booklovers/backend/internal/domain"
)

// Reading states and the relationship types backing them. The invariant is
// at most one status edge per (user, book) pair; the delete-then-create
// sequence below is two separate queries, so a crash in between leaves the
// pair with no edge, which reads back as StatusNone.
const (
	StatusReading    = "reading"
	StatusFinished   = "finished"
	StatusWantToRead = "want-to-read"
	StatusNone       = "none"
)

var statusRelTypes = map[string]string{
	StatusReading:    "READING",
	StatusFinished:   "FINISHED",
	StatusWantToRead: "WANTS_TO_READ",
}

var statusActions = map[string]string{
	StatusReading:    "started",
	StatusFinished:   "finished",
	StatusWantToRead: "want-to-read",
}

func statusFromRelType(relType string) string {
	switch relType {
	case "READING":
		return StatusReading
	case "FINISHED":
		return StatusFinished
	case "WANTS_TO_READ":
		return StatusWantToRead
	default:
		return StatusNone
	}
}

// ValidStatus reports whether s is an accepted status value, including none.
func ValidStatus(s string) bool {
	if s == StatusNone {
		return true
	}
	_, ok := statusRelTypes[s]
	return ok
}

const bookStatusQuery = `
MATCH (u:USER {id: $userId}), (b:BOOK {id: $bookId})
OPTIONAL MATCH (u)-[reading:READING]->(b)
OPTIONAL MATCH (u)-[finished:FINISHED]->(b)
OPTIONAL MATCH (u)-[wantToRead:WANTS_TO_READ]->(b)
OPTIONAL MATCH (u)-[r:RATES]->(b)
RETURN
  CASE
    WHEN reading IS NOT NULL THEN 'reading'
    WHEN finished IS NOT NULL THEN 'finished'
    WHEN wantToRead IS NOT NULL THEN 'want-to-read'
    ELSE 'none'
  END AS status,
  r.rating AS rating
`

func (s *Store) GetBookStatus(ctx context.Context, userID, bookID string) (*domain.BookStatus, error) {
	records, err := s.gw.Read(ctx, bookStatusQuery, map[string]any{
		"userId": userID,
		"bookId": bookID,
	})
	if err != nil {
		return nil, fmt.Errorf("book status %s/%s: %w", userID, bookID, err)
	}
	if len(records) == 0 {
		return &domain.BookStatus{Status: StatusNone}, nil
	}
	rec := records[0]
	return &domain.BookStatus{
		Status: asString(recordValue(rec, "status")),
		Rating: asInt(recordValue(rec, "rating")),
	}, nil
}

const clearStatusQuery = `
MATCH (u:USER {id: $userId})-[r:READING|FINISHED|WANTS_TO_READ]->(b:BOOK {id: $bookId})
DELETE r
`

const appendHistoryQuery = `
MATCH (u:USER {id: $userId}), (b:BOOK {id: $bookId})
MERGE (u)-[:HAS_HISTORY]->(rh:READING_HISTORY {id: "RH-" + u.id + "-" + b.id})
WITH u, b, rh
CREATE (he:HISTORY_ENTRY {
  id: $entryId,
  action: $action,
  timestamp: datetime(),
  context: "app"
})
CREATE (rh)-[:CONTAINS_ENTRY]->(he)
CREATE (he)-[:REFERENCES_BOOK]->(b)
`

// SetBookStatus deletes any prior status edge, creates the new one unless
// status is none, and appends a history entry. The three steps are separate
// queries and are not atomic; "no edge" reads back as none, so a partial
// write self-heals on the next read.
func (s *Store) SetBookStatus(ctx context.Context, userID, bookID, status string) error {
	if _, err := s.gw.Write(ctx, clearStatusQuery, map[string]any{
		"userId": userID,
		"bookId": bookID,
	}); err != nil {
		return fmt.Errorf("clear status %s/%s: %w", userID, bookID, err)
	}

	relType, ok := statusRelTypes[status]
	if !ok {
		// none: nothing to create, nothing to log in history.
		return nil
	}

	// Relationship types cannot be parameterized in Cypher; relType comes
	// from the fixed map above, never from caller input.
	createQuery := fmt.Sprintf(`
MATCH (u:USER {id: $userId}), (b:BOOK {id: $bookId})
CREATE (u)-[:%s {date: datetime()}]->(b)
`, relType)
	if _, err := s.gw.Write(ctx, createQuery, map[string]any{
		"userId": userID,
		"bookId": bookID,
	}); err != nil {
		return fmt.Errorf("create status %s/%s: %w", userID, bookID, err)
	}

	if _, err := s.gw.Write(ctx, appendHistoryQuery, map[string]any{
		"userId":  userID,
		"bookId":  bookID,
		"entryId": "ENTRY-" + uuid.NewString(),
		"action":  statusActions[status],
	}); err != nil {
		return fmt.Errorf("append history %s/%s: %w", userID, bookID, err)
	}
	return nil
}

const rateBookQuery = `
MATCH (u:USER {id: $userId}), (b:BOOK {id: $bookId})
MERGE (u)-[r:RATES]->(b)
ON CREATE SET r.rating = $rating, r.timestamp = datetime()
ON MATCH SET r.rating = $rating, r.timestamp = datetime()
RETURN r.rating AS rating
`

// RateBook upserts the singular rating edge; last write wins.
func (s *Store) RateBook(ctx context.Context, userID, bookID string, rating int64) (int64, error) {
	records, err := s.gw.Write(ctx, rateBookQuery, map[string]any{
		"userId": userID,
		"bookId": bookID,
		"rating": rating,
	})
	if err != nil {
		return 0, fmt.Errorf("rate book %s/%s: %w", userID, bookID, err)
	}
	if len(records) == 0 {
		return rating, nil
	}
	return asInt(recordValue(records[0], "rating")), nil
}
