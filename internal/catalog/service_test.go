package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type recordingClient struct {
	StaticClient
	discoverGenres []int
}

func (c *recordingClient) Discover(ctx context.Context, ids []int) (Page, error) {
	c.discoverGenres = ids
	return c.StaticClient.Discover(ctx, ids)
}

func TestRecommendMergesGenres(t *testing.T) {
	client := &recordingClient{}
	svc := NewService(client, "https://img.example")

	rec, err := svc.Recommend(context.Background(), "Happy", "Comedy", "Drama")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	// Happy implies Action(28), Comedy(35), Animation(16); Comedy repeats and
	// is dropped from the discover query.
	if !reflect.DeepEqual(client.discoverGenres, []int{28, 35, 16, 18}) {
		t.Fatalf("unexpected discover genres: %v", client.discoverGenres)
	}
	if !reflect.DeepEqual(rec.AllGenres, []int{28, 35, 16, 35, 18}) {
		t.Fatalf("unexpected allGenres: %v", rec.AllGenres)
	}
	if !reflect.DeepEqual(rec.SelectedGenres, []string{"Comedy", "Drama"}) {
		t.Fatalf("unexpected selectedGenres: %v", rec.SelectedGenres)
	}
}

func TestRecommendNormalizesMoodCase(t *testing.T) {
	svc := NewService(&recordingClient{}, "https://img.example")

	if _, err := svc.Recommend(context.Background(), "hAPPY", "Comedy", "Drama"); err != nil {
		t.Fatalf("mixed-case mood: %v", err)
	}
}

func TestRecommendRejectsUnknownInput(t *testing.T) {
	svc := NewService(&recordingClient{}, "https://img.example")

	if _, err := svc.Recommend(context.Background(), "Bored", "Comedy", "Drama"); !errors.Is(err, ErrUnknownMood) {
		t.Fatalf("expected unknown mood, got %v", err)
	}
	if _, err := svc.Recommend(context.Background(), "Happy", "Comedy", "Western"); !errors.Is(err, ErrUnknownGenre) {
		t.Fatalf("expected unknown genre, got %v", err)
	}
}

func TestRecommendAnnotatesGenreNames(t *testing.T) {
	svc := NewService(&recordingClient{}, "https://img.example")

	rec, err := svc.Recommend(context.Background(), "Happy", "Comedy", "Drama")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	for _, m := range rec.Movies.Results {
		if len(m.GenreIDs) > 0 && len(m.GenreNames) == 0 {
			t.Fatalf("movie %q missing genre names", m.Title)
		}
	}
}

func TestSimilarAddsImageURLs(t *testing.T) {
	svc := NewService(StaticClient{}, "https://img.example/")

	movies, err := svc.Similar(context.Background(), "101")
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if len(movies) == 0 {
		t.Fatal("expected results")
	}
	if movies[0].PosterURL != "https://img.example/drama.jpg" {
		t.Fatalf("unexpected poster url: %s", movies[0].PosterURL)
	}
	if movies[0].BackdropURL != "https://img.example/drama-bg.jpg" {
		t.Fatalf("unexpected backdrop url: %s", movies[0].BackdropURL)
	}
}

func TestMovieCapsCreditsAndFindsDirector(t *testing.T) {
	svc := NewService(StaticClient{}, "https://img.example")

	record, err := svc.Movie(context.Background(), "101")
	if err != nil {
		t.Fatalf("movie: %v", err)
	}
	if record.Director != "Greta Helm" {
		t.Fatalf("unexpected director: %s", record.Director)
	}
	if len(record.Credits.Cast) > creditsLimit {
		t.Fatalf("cast not capped: %d", len(record.Credits.Cast))
	}
	if !reflect.DeepEqual(record.Details.GenreNames, []string{"Drama"}) {
		t.Fatalf("unexpected genre names: %v", record.Details.GenreNames)
	}
	if record.Details.PosterURL != "https://img.example/drama.jpg" {
		t.Fatalf("unexpected poster url: %s", record.Details.PosterURL)
	}
}

func TestImageURLEmptyPath(t *testing.T) {
	svc := NewService(StaticClient{}, "https://img.example")
	if got := svc.ImageURL(""); got != "" {
		t.Fatalf("empty path must stay empty, got %q", got)
	}
}
