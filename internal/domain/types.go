package domain

import "time"

// User is the USER node as returned by queries. IDs follow the USER-<n>
// convention; the node is created at registration and never deleted.
type User struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	Email              string `json:"email,omitempty"`
	Age                int64  `json:"age,omitempty"`
	Profession         string `json:"profession,omitempty"`
	RelationshipStatus string `json:"relationshipStatus,omitempty"`
	Hobbies            string `json:"hobbies,omitempty"`
	ActivityLevel      string `json:"activityLevel,omitempty"`
}

// Book carries the BOOK node properties. Rating aggregates live on
// BookDetail since they are computed at query time, not stored.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	PublishedYear int64  `json:"publishedYear,omitempty"`
	Description   string `json:"description,omitempty"`
	CoverURL      string `json:"coverUrl,omitempty"`
}

type Author struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
	Bio         string `json:"bio,omitempty"`
	BirthYear   int64  `json:"birthYear,omitempty"`
	DeathYear   int64  `json:"deathYear,omitempty"`
}

type Genre struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ReleaseYear int64  `json:"releaseYear,omitempty"`
}

// BookDetail is the full book page payload: the node plus related
// collections and query-time aggregates.
type BookDetail struct {
	Book
	Author         string         `json:"author,omitempty"`
	AuthorID       string         `json:"authorId,omitempty"`
	Genres         []string       `json:"genres"`
	AverageRating  float64        `json:"averageRating"`
	RatingsCount   int64          `json:"ratingsCount"`
	ReadersCount   int64          `json:"readersCount"`
	FinishedCount  int64          `json:"finishedCount"`
	Adaptations    []Movie        `json:"adaptations"`
	FriendsReading []FriendStatus `json:"friendsReading"`
	SimilarBooks   []SimilarBook  `json:"similarBooks"`
}

// FriendStatus is a friend of the viewing user plus that friend's reading
// state for the book in question.
type FriendStatus struct {
	User
	Status string `json:"status"`
}

type SimilarBook struct {
	Book
	Author       string `json:"author,omitempty"`
	GenreOverlap int64  `json:"genreOverlap"`
}

type AuthorDetail struct {
	Author
	Books          []Book   `json:"books"`
	SimilarAuthors []Author `json:"similarAuthors"`
}

type GenreBook struct {
	Book
	Author        string  `json:"author,omitempty"`
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int64   `json:"ratingsCount"`
	ReadersCount  int64   `json:"readersCount"`
}

type GenreAuthor struct {
	Author
	BookCount int64 `json:"bookCount"`
}

type GenreDetail struct {
	Genre
	BookCount      int64         `json:"bookCount"`
	ReaderCount    int64         `json:"readerCount"`
	Books          []GenreBook   `json:"books"`
	PopularAuthors []GenreAuthor `json:"popularAuthors"`
	RelatedGenres  []Genre       `json:"relatedGenres"`
}

// BookStatus is a user's current relationship to a book. Status is one of
// reading, finished, want-to-read or none; Rating is 0 when unrated.
type BookStatus struct {
	Status string `json:"status"`
	Rating int64  `json:"rating"`
}

// RecommendedBook is a scored recommendation candidate. MatchPercent is
// always within [0, 99]; raw scores are never exposed.
type RecommendedBook struct {
	Book
	Author       string `json:"author,omitempty"`
	MatchPercent int    `json:"matchPercent"`
}

type TrendingBook struct {
	Book
	Author  string   `json:"author,omitempty"`
	Genres  []string `json:"genres"`
	Readers int64    `json:"readers"`
	Rating  float64  `json:"rating"`
}

// FriendMatch is a friend-recommendation candidate. MatchPercent is within
// [0, 99]; CommonBooks is the shared-rating overlap count.
type FriendMatch struct {
	User
	MatchPercent int   `json:"matchPercent"`
	CommonBooks  int64 `json:"commonBooks"`
}

type Event struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location,omitempty"`
	FriendsAttending int64     `json:"friendsAttending"`
}

type ReadingBook struct {
	Book
	Author    string    `json:"author,omitempty"`
	StartedAt time.Time `json:"startedAt"`
}

type RecentBook struct {
	Book
	Author string `json:"author,omitempty"`
}

type Adaptation struct {
	Movie
	BookID    string `json:"bookId"`
	BookTitle string `json:"bookTitle"`
	HasRead   bool   `json:"hasRead"`
}

type GenreStat struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

type SearchBook struct {
	Book
	Author string `json:"author"`
}

type SearchResults struct {
	Books   []SearchBook `json:"books"`
	Authors []Author     `json:"authors"`
	Genres  []Genre      `json:"genres"`
}

type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ReadingContext captures a user's reading habits collected at
// registration. One node per user, id RC-<userId>.
type ReadingContext struct {
	ID                    string `json:"id"`
	Environment           string `json:"environment,omitempty"`
	EnvironmentPreference string `json:"environmentPreference,omitempty"`
	TimeOfDay             string `json:"timeOfDay,omitempty"`
	TimePreference        string `json:"timePreference,omitempty"`
	FormatPreference      string `json:"formatPreference,omitempty"`
	ReadingDuration       string `json:"readingDuration,omitempty"`
}

// ChatReply mirrors the agent service response contract. Type is one of
// recommendations, author, genres, friends, events, general or error; Data
// is an optional entity payload matching the corresponding mapper shape.
type ChatReply struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Data    any    `json:"data,omitempty"`
}
