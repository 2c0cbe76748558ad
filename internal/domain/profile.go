package domain

import "time"

// AccountProfile is the subset of a GitHub user record the card needs.
type AccountProfile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
}

// DisplayName returns the profile name, or the login when no name is set.
func (p *AccountProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// RepositorySummary carries the per-repository figures used for aggregation.
type RepositorySummary struct {
	Stars    int    `json:"stars"`
	Forks    int    `json:"forks"`
	Language string `json:"language"`
}
