package weblate

// Project is one entry of GET api/projects/.
type Project struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Web     string `json:"web"`
	URL     string `json:"url"`
	WebURL  string `json:"web_url"`
	Website string `json:"website,omitempty"`
}

// ProjectsPage is the paginated envelope of GET api/projects/.
type ProjectsPage struct {
	Count    int       `json:"count"`
	Next     string    `json:"next"`
	Previous string    `json:"previous"`
	Results  []Project `json:"results"`
}

// ProjectStats is the response of GET api/projects/<slug>/statistics/.
type ProjectStats struct {
	Name              string  `json:"name"`
	URL               string  `json:"url"`
	Total             int     `json:"total"`
	TotalWords        int     `json:"total_words"`
	Translated        int     `json:"translated"`
	TranslatedWords   int     `json:"translated_words"`
	TranslatedPercent float64 `json:"translated_percent"`
	Approved          int     `json:"approved"`
	ApprovedWords     int     `json:"approved_words"`
	Fuzzy             int     `json:"fuzzy"`
	FuzzyWords        int     `json:"fuzzy_words"`
	Failing           int     `json:"failing"`
	Suggestions       int     `json:"suggestions"`
	Comments          int     `json:"comments"`
	Languages         int     `json:"languages"`
	LastChange        string  `json:"last_change"`
}
