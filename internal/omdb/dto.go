package omdb

// rawItem is one entry of the upstream Search array.
type rawItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// searchResponse is the upstream envelope for search queries.
// Response is "True"/"False"; a non-empty Error indicates failure.
type searchResponse struct {
	Search       []rawItem `json:"Search"`
	TotalResults string    `json:"totalResults"`
	Response     string    `json:"Response"`
	Error        string    `json:"Error"`
}

// rawRating is a per-source rating on a detail response.
type rawRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// detailResponse is the upstream envelope for detail queries. The
// same Response/Error convention applies.
type detailResponse struct {
	Title      string      `json:"Title"`
	Year       string      `json:"Year"`
	Rated      string      `json:"Rated"`
	Released   string      `json:"Released"`
	Runtime    string      `json:"Runtime"`
	Genre      string      `json:"Genre"`
	Director   string      `json:"Director"`
	Writer     string      `json:"Writer"`
	Actors     string      `json:"Actors"`
	Plot       string      `json:"Plot"`
	Language   string      `json:"Language"`
	Country    string      `json:"Country"`
	Awards     string      `json:"Awards"`
	Poster     string      `json:"Poster"`
	Ratings    []rawRating `json:"Ratings"`
	ImdbRating string      `json:"imdbRating"`
	ImdbVotes  string      `json:"imdbVotes"`
	ImdbID     string      `json:"imdbID"`
	Type       string      `json:"Type"`
	BoxOffice  string      `json:"BoxOffice"`
	Response   string      `json:"Response"`
	Error      string      `json:"Error"`
}
