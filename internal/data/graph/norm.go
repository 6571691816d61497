package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/booklovers/backend/internal/domain"
)

// The driver hands back loosely typed values: int64 for integers, float64
// for floats, dbtype.Node for nodes, nil for absent OPTIONAL MATCH results.
// All unwrapping happens here, once, at the mapper boundary.

func recordValue(rec *db.Record, key string) any {
	if rec == nil {
		return nil
	}
	v, ok := rec.Get(key)
	if !ok {
		return nil
	}
	return v
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	default:
		return 0
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case dbtype.LocalDateTime:
		return t.Time()
	case dbtype.Date:
		return t.Time()
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func asNode(v any) (dbtype.Node, bool) {
	n, ok := v.(dbtype.Node)
	return n, ok
}

func nodeProps(v any) map[string]any {
	if n, ok := asNode(v); ok {
		return n.Props
	}
	return nil
}

func nodeSlice(v any) []map[string]any {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if props := nodeProps(item); props != nil {
			out = append(out, props)
		}
	}
	return out
}

func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func bookFromProps(props map[string]any) domain.Book {
	return domain.Book{
		ID:            asString(props["id"]),
		Title:         asString(props["title"]),
		PublishedYear: asInt(props["publishedYear"]),
		Description:   asString(props["description"]),
		CoverURL:      asString(props["coverUrl"]),
	}
}

func authorFromProps(props map[string]any) domain.Author {
	return domain.Author{
		ID:          asString(props["id"]),
		Name:        asString(props["name"]),
		Nationality: asString(props["nationality"]),
		Bio:         asString(props["bio"]),
		BirthYear:   asInt(props["birthYear"]),
		DeathYear:   asInt(props["deathYear"]),
	}
}

func genreFromProps(props map[string]any) domain.Genre {
	return domain.Genre{
		ID:          asString(props["id"]),
		Name:        asString(props["name"]),
		Description: asString(props["description"]),
	}
}

func movieFromProps(props map[string]any) domain.Movie {
	return domain.Movie{
		ID:          asString(props["id"]),
		Title:       asString(props["title"]),
		ReleaseYear: asInt(props["releaseYear"]),
	}
}

func userFromProps(props map[string]any) domain.User {
	return domain.User{
		ID:                 asString(props["id"]),
		Name:               asString(props["name"]),
		FirstName:          asString(props["firstName"]),
		LastName:           asString(props["lastName"]),
		Email:              asString(props["email"]),
		Age:                asInt(props["age"]),
		Profession:         asString(props["profession"]),
		RelationshipStatus: asString(props["relationshipStatus"]),
		Hobbies:            asString(props["hobbies"]),
		ActivityLevel:      asString(props["activityLevel"]),
	}
}

func eventFromProps(props map[string]any) domain.Event {
	return domain.Event{
		ID:   asString(props["id"]),
		Name: asString(props["name"]),
		Date: asTime(props["date"]),
	}
}
