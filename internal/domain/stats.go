// Package domain contains the core data structures and domain logic for the application.
package domain

// LanguageShare is one entry of the ranked language row on a card.
type LanguageShare struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// RepoStats holds the figures derived from an account's repositories.
// Languages is the full tally; TopLanguages is the ranked subset shown on the card.
type RepoStats struct {
	TotalStars   int             `json:"total_stars"`
	TotalForks   int             `json:"total_forks"`
	Languages    map[string]int  `json:"languages"`
	TopLanguages []LanguageShare `json:"top_languages"`
}
