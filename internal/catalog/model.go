package catalog

// Movie is a catalog entry as returned inside list responses.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`

	// Enriched fields, absent in the upstream payload.
	GenreNames  []string `json:"genre_names,omitempty"`
	PosterURL   string   `json:"posterUrl,omitempty"`
	BackdropURL string   `json:"backdropUrl,omitempty"`
}

// DateRange brackets an upcoming-movies window.
type DateRange struct {
	Maximum string `json:"maximum"`
	Minimum string `json:"minimum"`
}

// Page is one page of catalog results.
type Page struct {
	Dates        *DateRange `json:"dates,omitempty"`
	Page         int        `json:"page"`
	Results      []Movie    `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// Genre is a catalog genre reference.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Details is the full record for a single movie.
type Details struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	Runtime      int     `json:"runtime"`
	Genres       []Genre `json:"genres"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`

	GenreNames  []string `json:"genre_names,omitempty"`
	PosterURL   string   `json:"posterUrl,omitempty"`
	BackdropURL string   `json:"backdropUrl,omitempty"`
}

// CastMember is an actor credit.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

// CrewMember is a production credit.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits groups the cast and crew of a movie.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// moodGenres maps a mood to the catalog genre IDs it implies.
var moodGenres = map[string][]int{
	"Sad":      {18, 27, 53},  // Drama, Horror, Thriller
	"Romantic": {10749, 35},   // Romance, Comedy
	"Relaxed":  {878, 16},     // Science Fiction, Animation
	"Happy":    {28, 35, 16},  // Action, Comedy, Animation
}

// genreIDs maps the selectable genre names to catalog IDs.
var genreIDs = map[string]int{
	"Action":          28,
	"Animation":       16,
	"Comedy":          35,
	"Drama":           18,
	"Horror":          27,
	"Romance":         10749,
	"Science Fiction": 878,
	"Thriller":        53,
}

// GenreName resolves a catalog genre ID back to its selectable name, or ""
// when the ID is outside the selectable set.
func GenreName(id int) string {
	for name, gid := range genreIDs {
		if gid == id {
			return name
		}
	}
	return ""
}
