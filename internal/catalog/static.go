package catalog

import "context"

// StaticClient simulates the catalog with canned data. Used in development
// without an API token and as a test double.
type StaticClient struct{}

var staticMovies = []Movie{
	{ID: 101, Title: "Static Drama", Overview: "A quiet film.", PosterPath: "/drama.jpg", BackdropPath: "/drama-bg.jpg", ReleaseDate: "2024-01-12", GenreIDs: []int{18}},
	{ID: 102, Title: "Static Action", Overview: "A loud film.", PosterPath: "/action.jpg", BackdropPath: "/action-bg.jpg", ReleaseDate: "2024-03-01", GenreIDs: []int{28, 35}},
}

func staticPage() Page {
	results := make([]Movie, len(staticMovies))
	copy(results, staticMovies)
	return Page{Page: 1, Results: results, TotalPages: 1, TotalResults: len(results)}
}

// Trending returns the canned page.
func (StaticClient) Trending(_ context.Context) (Page, error) { return staticPage(), nil }

// Upcoming returns the canned page with a date window.
func (StaticClient) Upcoming(_ context.Context) (Page, error) {
	page := staticPage()
	page.Dates = &DateRange{Minimum: "2024-01-01", Maximum: "2024-12-31"}
	return page, nil
}

// Similar returns the canned page.
func (StaticClient) Similar(_ context.Context, _ string) (Page, error) { return staticPage(), nil }

// Search returns the canned page.
func (StaticClient) Search(_ context.Context, _ string) (Page, error) { return staticPage(), nil }

// Discover returns the canned page.
func (StaticClient) Discover(_ context.Context, _ []int) (Page, error) { return staticPage(), nil }

// Details returns a canned record for any ID.
func (StaticClient) Details(_ context.Context, _ string) (Details, error) {
	return Details{
		ID:           101,
		Title:        "Static Drama",
		Overview:     "A quiet film.",
		PosterPath:   "/drama.jpg",
		BackdropPath: "/drama-bg.jpg",
		ReleaseDate:  "2024-01-12",
		Runtime:      104,
		Genres:       []Genre{{ID: 18, Name: "Drama"}},
	}, nil
}

// Credits returns a canned cast and crew.
func (StaticClient) Credits(_ context.Context, _ string) (Credits, error) {
	return Credits{
		Cast: []CastMember{
			{Name: "Ana Lead", Character: "Protagonist"},
			{Name: "Ben Second", Character: "Friend"},
			{Name: "Cleo Third", Character: "Rival"},
			{Name: "Dan Fourth", Character: "Mentor"},
			{Name: "Eve Fifth", Character: "Stranger"},
			{Name: "Fay Sixth", Character: "Neighbour"},
		},
		Crew: []CrewMember{
			{Name: "Greta Helm", Job: "Director"},
			{Name: "Hank Words", Job: "Writer"},
		},
	}, nil
}
