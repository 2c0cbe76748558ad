// Package usecase contains the business logic of the application.
package usecase

import (
	"log"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-profile-card/internal/domain"
)

// TopLanguageCount is the number of languages shown on a card.
const TopLanguageCount = 5

// Aggregator derives card statistics from an account's repositories.
type Aggregator struct {
	logger *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(logger *log.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate sums stars and forks and ranks the primary languages.
//
// Languages are ranked by repository count, descending. Ties keep the order in
// which a language first appears in repos, so with the gateway's ordering the
// language of the more recently updated repository wins.
// Percentages are relative to the full tally, not only to the shown languages.
func (a *Aggregator) Aggregate(repos []domain.RepositorySummary) *domain.RepoStats {
	result := &domain.RepoStats{Languages: make(map[string]int)}

	var firstSeen []string
	for _, repo := range repos {
		result.TotalStars += repo.Stars
		result.TotalForks += repo.Forks
		if repo.Language == "" {
			continue
		}
		if _, ok := result.Languages[repo.Language]; !ok {
			firstSeen = append(firstSeen, repo.Language)
		}
		result.Languages[repo.Language]++
	}

	sort.SliceStable(firstSeen, func(i, j int) bool {
		return result.Languages[firstSeen[i]] > result.Languages[firstSeen[j]]
	})

	counts := make([]float64, 0, len(firstSeen))
	for _, lang := range firstSeen {
		counts = append(counts, float64(result.Languages[lang]))
	}
	total, err := stats.Sum(counts)
	if err != nil || total == 0 {
		result.TopLanguages = []domain.LanguageShare{}
		a.logger.Printf("Usecase: aggregated %d repositories, no languages.\n", len(repos))
		return result
	}

	top := firstSeen[:min(TopLanguageCount, len(firstSeen))]
	result.TopLanguages = make([]domain.LanguageShare, 0, len(top))
	for _, lang := range top {
		count := result.Languages[lang]
		percent, _ := stats.Round(float64(count)/total*100, 0)
		result.TopLanguages = append(result.TopLanguages, domain.LanguageShare{
			Name:    lang,
			Count:   count,
			Percent: int(percent),
		})
	}
	a.logger.Printf("Usecase: aggregated %d repositories, %d languages.\n", len(repos), len(firstSeen))
	return result
}
