package catalog

import (
	"context"
	"errors"
	"strings"
)

const creditsLimit = 5

// Sentinel errors for recommendation input validation.
var (
	ErrUnknownMood  = errors.New("invalid mood")
	ErrUnknownGenre = errors.New("invalid genre name(s)")
)

// Service wraps the catalog connector with the mood mapping and response
// enrichment the API exposes.
type Service struct {
	client       Client
	imageBaseURL string
}

// NewService builds a catalog service. imageBaseURL prefixes poster and
// backdrop paths into absolute URLs.
func NewService(client Client, imageBaseURL string) *Service {
	return &Service{client: client, imageBaseURL: strings.TrimSuffix(imageBaseURL, "/")}
}

// Trending passes through this week's trending movies.
func (s *Service) Trending(ctx context.Context) (Page, error) {
	return s.client.Trending(ctx)
}

// Upcoming passes through the upcoming-movies page.
func (s *Service) Upcoming(ctx context.Context) (Page, error) {
	return s.client.Upcoming(ctx)
}

// Similar lists movies similar to the given one, with absolute image URLs.
func (s *Service) Similar(ctx context.Context, movieID string) ([]Movie, error) {
	page, err := s.client.Similar(ctx, movieID)
	if err != nil {
		return nil, err
	}
	for i := range page.Results {
		s.addImageURLs(&page.Results[i])
	}
	return page.Results, nil
}

// Search runs a free-text search, with absolute image URLs on each result.
func (s *Service) Search(ctx context.Context, query string) (Page, error) {
	page, err := s.client.Search(ctx, query)
	if err != nil {
		return Page{}, err
	}
	for i := range page.Results {
		s.addImageURLs(&page.Results[i])
	}
	return page, nil
}

// Recommendation is the result of a mood/genre recommendation request.
type Recommendation struct {
	Mood           string   `json:"mood"`
	SelectedGenres []string `json:"selectedGenres"`
	AllGenres      []int    `json:"allGenres"`
	Movies         Page     `json:"movies"`
}

// Recommend merges the genres implied by the mood with the two picked genres,
// de-duplicates them and asks the catalog for popular matches. Each result is
// annotated with the selectable genre names it belongs to.
func (s *Service) Recommend(ctx context.Context, mood, genre1, genre2 string) (Recommendation, error) {
	implied, ok := moodGenres[normalizeMood(mood)]
	if !ok {
		return Recommendation{}, ErrUnknownMood
	}
	id1, ok1 := genreIDs[genre1]
	id2, ok2 := genreIDs[genre2]
	if !ok1 || !ok2 {
		return Recommendation{}, ErrUnknownGenre
	}

	all := append(append([]int{}, implied...), id1, id2)
	seen := make(map[int]bool, len(all))
	merged := all[:0]
	for _, id := range all {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}

	page, err := s.client.Discover(ctx, merged)
	if err != nil {
		return Recommendation{}, err
	}
	for i := range page.Results {
		page.Results[i].GenreNames = genreNames(page.Results[i].GenreIDs)
	}

	return Recommendation{
		Mood:           mood,
		SelectedGenres: []string{genre1, genre2},
		AllGenres:      append(append([]int{}, implied...), id1, id2),
		Movies:         page,
	}, nil
}

// MovieRecord groups the full details, capped credits and director for one movie.
type MovieRecord struct {
	Director string  `json:"director"`
	Details  Details `json:"details"`
	Credits  Credits `json:"credits"`
}

// Movie fetches details plus credits, caps the credit lists and names the
// director when one is credited.
func (s *Service) Movie(ctx context.Context, movieID string) (MovieRecord, error) {
	details, err := s.client.Details(ctx, movieID)
	if err != nil {
		return MovieRecord{}, err
	}
	credits, err := s.client.Credits(ctx, movieID)
	if err != nil {
		return MovieRecord{}, err
	}

	ids := make([]int, len(details.Genres))
	for i, g := range details.Genres {
		ids[i] = g.ID
	}
	details.GenreNames = genreNames(ids)
	details.PosterURL = s.imageURL(details.PosterPath)
	details.BackdropURL = s.imageURL(details.BackdropPath)

	director := ""
	for _, member := range credits.Crew {
		if member.Job == "Director" {
			director = member.Name
			break
		}
	}

	if len(credits.Cast) > creditsLimit {
		credits.Cast = credits.Cast[:creditsLimit]
	}
	if len(credits.Crew) > creditsLimit {
		credits.Crew = credits.Crew[:creditsLimit]
	}

	return MovieRecord{Director: director, Details: details, Credits: credits}, nil
}

// ImageURL exposes the absolute image URL for a catalog path.
func (s *Service) ImageURL(path string) string {
	return s.imageURL(path)
}

func (s *Service) addImageURLs(m *Movie) {
	m.PosterURL = s.imageURL(m.PosterPath)
	m.BackdropURL = s.imageURL(m.BackdropPath)
}

func (s *Service) imageURL(path string) string {
	if path == "" {
		return ""
	}
	return s.imageBaseURL + path
}

func genreNames(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name := GenreName(id); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func normalizeMood(mood string) string {
	if mood == "" {
		return ""
	}
	return strings.ToUpper(mood[:1]) + strings.ToLower(mood[1:])
}
