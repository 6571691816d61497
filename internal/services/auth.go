package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/booklovers/backend/internal/data/graph"
	"github.com/booklovers/backend/internal/domain"
	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
	"github.com/booklovers/backend/internal/platform/apierr"
	"github.com/booklovers/backend/internal/platform/logger"
)

// RegisterInput is the multi-step registration form payload. Only Email and
// Name are required; everything else feeds optional linking steps.
type RegisterInput struct {
	Email              string   `json:"email"`
	Name               string   `json:"name"`
	Password           string   `json:"password,omitempty"`
	FirstName          string   `json:"firstName,omitempty"`
	LastName           string   `json:"lastName,omitempty"`
	Age                int64    `json:"age,omitempty"`
	Profession         string   `json:"profession,omitempty"`
	RelationshipStatus string   `json:"relationshipStatus,omitempty"`
	Hobbies            string   `json:"hobbies,omitempty"`
	ActivityLevel      string   `json:"activityLevel,omitempty"`
	City               string   `json:"city,omitempty"`
	State              string   `json:"state,omitempty"`
	GenrePreferences   []string `json:"genrePreferences,omitempty"`
	AuthorPreferences  []string `json:"authorPreferences,omitempty"`
	ThemePreferences   []string `json:"themePreferences,omitempty"`
	ReadingEnvironment string   `json:"readingEnvironment,omitempty"`
	ReadingTime        string   `json:"readingTime,omitempty"`
	FormatPreference   string   `json:"formatPreference,omitempty"`
	ReadingDuration    string   `json:"readingDuration,omitempty"`
}

// AuthResult bundles the signed token with the user it represents.
type AuthResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type AuthService interface {
	SignIn(ctx context.Context, userID string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	VerifyToken(tokenString string) (string, error)
}

type authService struct {
	store     *graph.Store
	log       *logger.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(store *graph.Store, jwtSecret string, tokenTTL time.Duration, log *logger.Logger) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{
		store:     store,
		log:       log.With("service", "AuthService"),
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// SignIn resolves a user by id and issues a token. There is no password
// check on this path; accounts are looked up by their public USER-<n> id.
func (s *authService) SignIn(ctx context.Context, userID string) (*AuthResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id required: %w", pkgerrors.ErrInvalidArgument)
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	s.log.Info("user signed in", "user_id", user.ID)
	return &AuthResult{Token: token, User: *user}, nil
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if input.Email == "" || input.Name == "" {
		return nil, fmt.Errorf("email and name required: %w", pkgerrors.ErrInvalidArgument)
	}

	exists, err := s.store.UserExists(ctx, input.Email, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("user with this email or name: %w", pkgerrors.ErrAlreadyExists)
	}

	count, err := s.store.CountNodes(ctx, "USER")
	if err != nil {
		return nil, err
	}
	userID := fmt.Sprintf("USER-%d", count+1)

	var passwordHash string
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		passwordHash = string(hashed)
	}

	activity := input.ActivityLevel
	if activity == "" {
		activity = "Medium"
	}
	user, err := s.store.CreateUser(ctx, domain.User{
		ID:                 userID,
		Name:               input.Name,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		Age:                input.Age,
		Profession:         input.Profession,
		RelationshipStatus: input.RelationshipStatus,
		Hobbies:            input.Hobbies,
		ActivityLevel:      activity,
	}, passwordHash)
	if err != nil {
		return nil, err
	}

	// Optional linking steps are isolated on purpose: a failed city, genre,
	// author or theme connection is logged and skipped, never aborting the
	// registration that already created the user node.
	s.linkLocation(ctx, userID, input.City, input.State)
	for _, name := range input.GenrePreferences {
		s.linkGenre(ctx, userID, name)
	}
	for _, name := range input.AuthorPreferences {
		s.linkAuthor(ctx, userID, name)
	}
	for _, name := range input.ThemePreferences {
		s.linkTheme(ctx, userID, name)
	}
	s.createReadingContext(ctx, userID, input)

	token, err := s.issueToken(userID)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", userID)
	return &AuthResult{Token: token, User: *user}, nil
}

func (s *authService) linkLocation(ctx context.Context, userID, city, state string) {
	city = strings.TrimSpace(city)
	if city == "" {
		return
	}

	cityID, err := s.store.FindCityIDByName(ctx, city)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		count, cErr := s.store.CountNodes(ctx, "CITY")
		if cErr != nil {
			s.log.Warn("location link skipped", "user_id", userID, "error", cErr)
			return
		}
		cityID = fmt.Sprintf("CITY-%d", count+1)
		stateID := strings.TrimSpace(state)
		if stateID == "" {
			stateID = "STATE-1"
		}
		if cErr := s.store.CreateCity(ctx, cityID, city, stateID); cErr != nil {
			s.log.Warn("location link skipped", "user_id", userID, "error", cErr)
			return
		}
	} else if err != nil {
		s.log.Warn("location link skipped", "user_id", userID, "error", err)
		return
	}

	if err := s.store.LinkUserToCity(ctx, userID, cityID); err != nil {
		s.log.Warn("location link skipped", "user_id", userID, "error", err)
	}
}

func (s *authService) linkGenre(ctx context.Context, userID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	genreID, err := s.store.FindGenreIDByName(ctx, name)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		count, cErr := s.store.CountNodes(ctx, "GENRE")
		if cErr != nil {
			s.log.Warn("genre link skipped", "user_id", userID, "genre", name, "error", cErr)
			return
		}
		genreID = fmt.Sprintf("GENRE-%d", count+1)
		desc := fmt.Sprintf("Books in the %s category", name)
		if cErr := s.store.CreateGenre(ctx, genreID, name, desc); cErr != nil {
			s.log.Warn("genre link skipped", "user_id", userID, "genre", name, "error", cErr)
			return
		}
	} else if err != nil {
		s.log.Warn("genre link skipped", "user_id", userID, "genre", name, "error", err)
		return
	}

	if err := s.store.LinkPreference(ctx, userID, graph.PreferGenre, genreID, preferenceStrength()); err != nil {
		s.log.Warn("genre link skipped", "user_id", userID, "genre", name, "error", err)
	}
}

func (s *authService) linkAuthor(ctx context.Context, userID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	authorID, err := s.store.FindAuthorIDByName(ctx, name)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		count, cErr := s.store.CountNodes(ctx, "AUTHOR")
		if cErr != nil {
			s.log.Warn("author link skipped", "user_id", userID, "author", name, "error", cErr)
			return
		}
		authorID = fmt.Sprintf("AUTHOR-%d", count+1)
		if cErr := s.store.CreateAuthorStub(ctx, authorID, name, "Unknown"); cErr != nil {
			s.log.Warn("author link skipped", "user_id", userID, "author", name, "error", cErr)
			return
		}
	} else if err != nil {
		s.log.Warn("author link skipped", "user_id", userID, "author", name, "error", err)
		return
	}

	if err := s.store.LinkPreference(ctx, userID, graph.PreferAuthor, authorID, preferenceStrength()); err != nil {
		s.log.Warn("author link skipped", "user_id", userID, "author", name, "error", err)
	}
}

func (s *authService) linkTheme(ctx context.Context, userID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	themeID, err := s.store.FindThemeIDByName(ctx, name)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		count, cErr := s.store.CountNodes(ctx, "THEME")
		if cErr != nil {
			s.log.Warn("theme link skipped", "user_id", userID, "theme", name, "error", cErr)
			return
		}
		themeID = fmt.Sprintf("THEME-%d", count+1)
		desc := fmt.Sprintf("Books exploring the theme of %s", name)
		if cErr := s.store.CreateTheme(ctx, themeID, name, desc); cErr != nil {
			s.log.Warn("theme link skipped", "user_id", userID, "theme", name, "error", cErr)
			return
		}
	} else if err != nil {
		s.log.Warn("theme link skipped", "user_id", userID, "theme", name, "error", err)
		return
	}

	if err := s.store.LinkPreference(ctx, userID, graph.PreferTheme, themeID, preferenceStrength()); err != nil {
		s.log.Warn("theme link skipped", "user_id", userID, "theme", name, "error", err)
	}
}

func (s *authService) createReadingContext(ctx context.Context, userID string, input RegisterInput) {
	environment := input.ReadingEnvironment
	if environment == "" {
		environment = "home, cafe, commute"
	}
	timeOfDay := input.ReadingTime
	if timeOfDay == "" {
		timeOfDay = "morning, evening, weekend"
	}
	duration := input.ReadingDuration
	if duration == "" {
		duration = "45min"
	}

	format := input.FormatPreference
	formatPrefs := map[string]int{
		"physical":  3,
		"ebook":     3,
		"audiobook": 2,
	}
	if _, ok := formatPrefs[format]; ok {
		formatPrefs[format] = 5
	}

	rc := domain.ReadingContext{
		ID:                    "RC-" + userID,
		Environment:           environment,
		EnvironmentPreference: rankedPrefsJSON(environment),
		TimeOfDay:             timeOfDay,
		TimePreference:        rankedPrefsJSON(timeOfDay),
		FormatPreference:      mustJSON(formatPrefs),
		ReadingDuration:       duration,
	}
	if err := s.store.CreateReadingContext(ctx, userID, rc); err != nil {
		s.log.Warn("reading context skipped", "user_id", userID, "error", err)
	}
}

// rankedPrefsJSON turns a comma-separated list into a JSON weight map, the
// first entries weighted highest (5, 4, 3 cycling).
func rankedPrefsJSON(list string) string {
	prefs := map[string]int{}
	for i, part := range strings.Split(list, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			prefs[trimmed] = 5 - i%3
		}
	}
	return mustJSON(prefs)
}

func mustJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// preferenceStrength picks 0.7, 0.8 or 0.9 at random for new preference
// edges.
func preferenceStrength() float64 {
	return float64(rand.Intn(3)+7) / 10
}

type tokenClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (s *authService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a bearer token and returns the user id it carries.
func (s *authService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", apierr.New(http.StatusUnauthorized, "invalid_token", fmt.Errorf("parse token: %w", err))
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", apierr.New(http.StatusUnauthorized, "invalid_token", errors.New("invalid token claims"))
	}
	return claims.UserID, nil
}
