package models

// DescriptionPlaceholder replaces a missing repository description
const DescriptionPlaceholder = "No description available"

// RepositoryDescriptor is a repository as returned by the GitHub listing endpoint.
// Nullable upstream fields are pointers; updated_at is kept as sent.
type RepositoryDescriptor struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Language        *string `json:"language"`
	Homepage        *string `json:"homepage"`
	HTMLURL         string  `json:"html_url"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	UpdatedAt       string  `json:"updated_at"`
}

// Project is the display-ready form of a repository descriptor
type Project struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveLink     string   `json:"liveLink"`
	GithubLink   string   `json:"githubLink"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
	UpdatedAt    string   `json:"updatedAt"`
}

// HasLiveDemo reports whether a live-demo control should be rendered
func (p Project) HasLiveDemo() bool {
	return p.LiveLink != ""
}
