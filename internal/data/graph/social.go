package graph

import (
	"context"
	"fmt"

	"github.com/booklovers/backend/internal/domain"
)

const recommendFriendsQuery = `
MATCH (u:USER {id: $userId})-[:RATES]->(b:BOOK)<-[:RATES]-(other:USER)
WHERE NOT (u)-[:FRIEND|FOLLOWS]-(other) AND u <> other
WITH u, other, count(b) AS commonBooks
OPTIONAL MATCH (u)-[:PREFERS_GENRE]->(g:GENRE)<-[:PREFERS_GENRE]-(other)
WITH u, other, commonBooks, count(g) AS commonGenres
OPTIONAL MATCH (u)-[:PREFERS_THEME]->(t:THEME)<-[:PREFERS_THEME]-(other)
WITH u, other, commonBooks, commonGenres, count(t) AS commonThemes
OPTIONAL MATCH (u)-[:LIVES_IN]->(:CITY)-[:PART_OF]->(:STATE)<-[:PART_OF]-(:CITY)<-[:LIVES_IN]-(other)
WITH other, commonBooks, commonGenres, commonThemes, count(*) AS sameState
RETURN other,
       commonBooks * 2 + commonGenres * 3 + commonThemes * 2 + sameState * 1 AS matchScore,
       commonBooks
ORDER BY matchScore DESC, other.id ASC
LIMIT $limit
`

// RecommendFriends scores users sharing rating history with the subject,
// excluding existing friends/followings and the subject itself. Weights:
// common books x2, common genres x3, common themes x2, same state x1.
func (s *Store) RecommendFriends(ctx context.Context, userID string, limit int) ([]domain.FriendMatch, error) {
	records, err := s.gw.Read(ctx, recommendFriendsQuery, map[string]any{
		"userId": userID,
		"limit":  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("recommend friends for %s: %w", userID, err)
	}

	out := make([]domain.FriendMatch, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.FriendMatch{
			User:         userFromProps(nodeProps(recordValue(rec, "other"))),
			MatchPercent: friendMatchPercent(asFloat(recordValue(rec, "matchScore"))),
			CommonBooks:  asInt(recordValue(rec, "commonBooks")),
		})
	}
	return out, nil
}

const upcomingEventsQuery = `
MATCH (u:USER {id: $userId})-[:LIVES_IN]->(:CITY)-[:PART_OF]->(s:STATE)
MATCH (e:EVENT)-[:LOCATED_IN]->(ec:CITY)-[:PART_OF]->(s)
WHERE e.date > datetime()
WITH u, e, ec
OPTIONAL MATCH (e)-[:FEATURES]->(rb:BOOK)<-[:RATES]-(u)
WITH u, e, ec, count(rb) AS readRelevantBooks
OPTIONAL MATCH (e)-[:FEATURES]->(:BOOK)-[:BELONGS_TO]->(g:GENRE)<-[:PREFERS_GENRE]-(u)
WITH u, e, ec, readRelevantBooks, count(g) AS genreRelevance
OPTIONAL MATCH (u)-[:FRIEND]->(f:USER)-[:ATTENDED]->(e)
WITH e, ec, readRelevantBooks, genreRelevance, count(f) AS friendsAttending
RETURN e, ec.name AS cityName, friendsAttending,
       readRelevantBooks * 3 + genreRelevance * 2 + friendsAttending * 4 AS relevanceScore
ORDER BY e.date ASC, relevanceScore DESC, e.id ASC
LIMIT $limit
`

// UpcomingEvents returns future events in the user's state, soonest first,
// relevance-ranked within a date: read featured books x3, preferred genre
// overlap x2, friends attending x4.
func (s *Store) UpcomingEvents(ctx context.Context, userID string, limit int) ([]domain.Event, error) {
	records, err := s.gw.Read(ctx, upcomingEventsQuery, map[string]any{
		"userId": userID,
		"limit":  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("upcoming events for %s: %w", userID, err)
	}

	out := make([]domain.Event, 0, len(records))
	for _, rec := range records {
		event := eventFromProps(nodeProps(recordValue(rec, "e")))
		event.Location = asString(recordValue(rec, "cityName"))
		event.FriendsAttending = asInt(recordValue(rec, "friendsAttending"))
		out = append(out, event)
	}
	return out, nil
}
