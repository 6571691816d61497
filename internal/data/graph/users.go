package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
)

const userByIDQuery = `
MATCH (u:USER {id: $id})
RETURN u
`

func (s *Store) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	records, err := s.gw.Read(ctx, userByIDQuery, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	if len(records) == 0 {
		return nil, pkgerrors.ErrNotFound
	}
	user := userFromProps(nodeProps(recordValue(records[0], "u")))
	return &user, nil
}

const userExistsQuery = `
MATCH (u:USER)
WHERE u.email = $email OR u.name = $name
RETURN count(u) AS count
`

func (s *Store) UserExists(ctx context.Context, email, name string) (bool, error) {
	records, err := s.gw.Read(ctx, userExistsQuery, map[string]any{
		"email": email,
		"name":  name,
	})
	if err != nil {
		return false, fmt.Errorf("user exists check: %w", err)
	}
	if len(records) == 0 {
		return false, nil
	}
	return asInt(recordValue(records[0], "count")) > 0, nil
}

// Labels eligible for counting; new ids are allocated as <PREFIX>-<count+1>
// following the dataset convention. Labels are interpolated from this fixed
// set only, never from caller input.
var countableLabels = map[string]bool{
	"USER":   true,
	"CITY":   true,
	"GENRE":  true,
	"AUTHOR": true,
	"THEME":  true,
}

func (s *Store) CountNodes(ctx context.Context, label string) (int64, error) {
	if !countableLabels[label] {
		return 0, fmt.Errorf("count nodes: %w: label %q", pkgerrors.ErrInvalidArgument, label)
	}
	query := fmt.Sprintf("MATCH (n:%s) RETURN count(n) AS count", label)
	records, err := s.gw.Read(ctx, query, nil)
	if err != nil {
		return 0, fmt.Errorf("count %s nodes: %w", label, err)
	}
	if len(records) == 0 {
		return 0, nil
	}
	return asInt(recordValue(records[0], "count")), nil
}

const createUserQuery = `
CREATE (u:USER {
  id: $id,
  name: $name,
  firstName: $firstName,
  lastName: $lastName,
  email: $email,
  passwordHash: $passwordHash,
  age: $age,
  profession: $profession,
  relationshipStatus: $relationshipStatus,
  hobbies: $hobbies,
  activityLevel: $activityLevel
})
RETURN u
`

func (s *Store) CreateUser(ctx context.Context, user domain.User, passwordHash string) (*domain.User, error) {
	records, err := s.gw.Write(ctx, createUserQuery, map[string]any{
		"id":                 user.ID,
		"name":               user.Name,
		"firstName":          user.FirstName,
		"lastName":           user.LastName,
		"email":              user.Email,
		"passwordHash":       passwordHash,
		"age":                user.Age,
		"profession":         user.Profession,
		"relationshipStatus": user.RelationshipStatus,
		"hobbies":            user.Hobbies,
		"activityLevel":      user.ActivityLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", user.ID, err)
	}
	if len(records) == 0 {
		return &user, nil
	}
	created := userFromProps(nodeProps(recordValue(records[0], "u")))
	return &created, nil
}

// Find-or-create lookups used by the optional registration linking steps.

func (s *Store) findIDByName(ctx context.Context, query, name string) (string, error) {
	records, err := s.gw.Read(ctx, query, map[string]any{"name": name})
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", pkgerrors.ErrNotFound
	}
	return asString(recordValue(records[0], "id")), nil
}

func (s *Store) FindCityIDByName(ctx context.Context, name string) (string, error) {
	return s.findIDByName(ctx, `MATCH (c:CITY {name: $name}) RETURN c.id AS id`, name)
}

func (s *Store) FindGenreIDByName(ctx context.Context, name string) (string, error) {
	return s.findIDByName(ctx, `MATCH (g:GENRE {name: $name}) RETURN g.id AS id`, name)
}

func (s *Store) FindAuthorIDByName(ctx context.Context, name string) (string, error) {
	return s.findIDByName(ctx, `MATCH (a:AUTHOR {name: $name}) RETURN a.id AS id`, name)
}

func (s *Store) FindThemeIDByName(ctx context.Context, name string) (string, error) {
	return s.findIDByName(ctx, `MATCH (t:THEME {name: $name}) RETURN t.id AS id`, name)
}

const createCityQuery = `
CREATE (c:CITY {id: $id, name: $name})
WITH c
MATCH (s:STATE {id: $stateId})
CREATE (c)-[:PART_OF]->(s)
`

func (s *Store) CreateCity(ctx context.Context, id, name, stateID string) error {
	if _, err := s.gw.Write(ctx, createCityQuery, map[string]any{
		"id":      id,
		"name":    name,
		"stateId": stateID,
	}); err != nil {
		return fmt.Errorf("create city %s: %w", id, err)
	}
	return nil
}

func (s *Store) CreateGenre(ctx context.Context, id, name, description string) error {
	if _, err := s.gw.Write(ctx, `CREATE (g:GENRE {id: $id, name: $name, description: $description})`, map[string]any{
		"id":          id,
		"name":        name,
		"description": description,
	}); err != nil {
		return fmt.Errorf("create genre %s: %w", id, err)
	}
	return nil
}

func (s *Store) CreateAuthorStub(ctx context.Context, id, name, nationality string) error {
	if _, err := s.gw.Write(ctx, `CREATE (a:AUTHOR {id: $id, name: $name, nationality: $nationality, bio: $bio})`, map[string]any{
		"id":          id,
		"name":        name,
		"nationality": nationality,
		"bio":         "Author of various works",
	}); err != nil {
		return fmt.Errorf("create author %s: %w", id, err)
	}
	return nil
}

func (s *Store) CreateTheme(ctx context.Context, id, name, description string) error {
	if _, err := s.gw.Write(ctx, `CREATE (t:THEME {id: $id, name: $name, description: $description})`, map[string]any{
		"id":          id,
		"name":        name,
		"description": description,
	}); err != nil {
		return fmt.Errorf("create theme %s: %w", id, err)
	}
	return nil
}

const linkUserCityQuery = `
MATCH (u:USER {id: $userId})
MATCH (c:CITY {id: $cityId})
CREATE (u)-[:LIVES_IN]->(c)
`

func (s *Store) LinkUserToCity(ctx context.Context, userID, cityID string) error {
	if _, err := s.gw.Write(ctx, linkUserCityQuery, map[string]any{
		"userId": userID,
		"cityId": cityID,
	}); err != nil {
		return fmt.Errorf("link user %s to city %s: %w", userID, cityID, err)
	}
	return nil
}

// PreferenceKind identifies a preference edge target. Strength is assigned
// at creation time and never updated afterwards.
type PreferenceKind string

const (
	PreferGenre  PreferenceKind = "genre"
	PreferAuthor PreferenceKind = "author"
	PreferTheme  PreferenceKind = "theme"
)

var preferenceEdges = map[PreferenceKind]struct {
	label   string
	relType string
}{
	PreferGenre:  {label: "GENRE", relType: "PREFERS_GENRE"},
	PreferAuthor: {label: "AUTHOR", relType: "PREFERS_AUTHOR"},
	PreferTheme:  {label: "THEME", relType: "PREFERS_THEME"},
}

func (s *Store) LinkPreference(ctx context.Context, userID string, kind PreferenceKind, targetID string, strength float64) error {
	edge, ok := preferenceEdges[kind]
	if !ok {
		return fmt.Errorf("link preference: %w: kind %q", pkgerrors.ErrInvalidArgument, kind)
	}
	query := fmt.Sprintf(`
MATCH (u:USER {id: $userId})
MATCH (t:%s {id: $targetId})
CREATE (u)-[:%s {strength: $strength}]->(t)
`, edge.label, edge.relType)
	if _, err := s.gw.Write(ctx, query, map[string]any{
		"userId":   userID,
		"targetId": targetID,
		"strength": strength,
	}); err != nil {
		return fmt.Errorf("link %s preference for %s: %w", kind, userID, err)
	}
	return nil
}

const createReadingContextQuery = `
CREATE (rc:READING_CONTEXT {
  id: $id,
  environment: $environment,
  environmentPreference: $environmentPreference,
  timeOfDay: $timeOfDay,
  timePreference: $timePreference,
  formatPreference: $formatPreference,
  readingDuration: $readingDuration,
  updateDate: $updateDate
})
WITH rc
MATCH (u:USER {id: $userId})
CREATE (u)-[:HAS_READING_CONTEXT]->(rc)
`

func (s *Store) CreateReadingContext(ctx context.Context, userID string, rc domain.ReadingContext) error {
	if _, err := s.gw.Write(ctx, createReadingContextQuery, map[string]any{
		"id":                    rc.ID,
		"environment":           rc.Environment,
		"environmentPreference": rc.EnvironmentPreference,
		"timeOfDay":             rc.TimeOfDay,
		"timePreference":        rc.TimePreference,
		"formatPreference":      rc.FormatPreference,
		"readingDuration":       rc.ReadingDuration,
		"updateDate":            time.Now().UTC().Format(time.RFC3339),
		"userId":                userID,
	}); err != nil {
		return fmt.Errorf("create reading context for %s: %w", userID, err)
	}
	return nil
}
