package source

// SearchResult is one hit of a show search, ranked by Score.
type SearchResult struct {
	Score float64 `json:"score"`
	Show  *Show   `json:"show"`
}
