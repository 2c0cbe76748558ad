package usecase

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/github-profile-card/internal/domain"
)

// TestAggregator_Aggregate uses a table-driven approach to test the aggregator.
func TestAggregator_Aggregate(t *testing.T) {
	testCases := []struct {
		name           string
		repos          []domain.RepositorySummary
		expectedStars  int
		expectedForks  int
		expectedTally  map[string]int
		expectedRanked []domain.LanguageShare
	}{
		{
			name: "happy path - sums counters and ranks languages",
			repos: []domain.RepositorySummary{
				{Stars: 10, Forks: 1, Language: "Go"},
				{Stars: 5, Forks: 0, Language: "Python"},
				{Stars: 0, Forks: 2, Language: "Go"},
				{Stars: 1, Forks: 0, Language: ""},
			},
			expectedStars: 16,
			expectedForks: 3,
			expectedTally: map[string]int{"Go": 2, "Python": 1},
			expectedRanked: []domain.LanguageShare{
				{Name: "Go", Count: 2, Percent: 67},
				{Name: "Python", Count: 1, Percent: 33},
			},
		},
		{
			name:           "empty case - no repositories",
			repos:          nil,
			expectedTally:  map[string]int{},
			expectedRanked: []domain.LanguageShare{},
		},
		{
			name: "ties keep first-seen order",
			repos: []domain.RepositorySummary{
				{Language: "Rust"},
				{Language: "Go"},
				{Language: "Go"},
				{Language: "Rust"},
				{Language: "C"},
			},
			expectedTally: map[string]int{"Rust": 2, "Go": 2, "C": 1},
			expectedRanked: []domain.LanguageShare{
				{Name: "Rust", Count: 2, Percent: 40},
				{Name: "Go", Count: 2, Percent: 40},
				{Name: "C", Count: 1, Percent: 20},
			},
		},
		{
			name: "only top five shown, percentages over the full tally",
			repos: []domain.RepositorySummary{
				{Language: "A"}, {Language: "A"}, {Language: "A"},
				{Language: "B"}, {Language: "B"},
				{Language: "C"}, {Language: "D"}, {Language: "E"}, {Language: "F"}, {Language: "G"},
			},
			expectedTally: map[string]int{"A": 3, "B": 2, "C": 1, "D": 1, "E": 1, "F": 1, "G": 1},
			expectedRanked: []domain.LanguageShare{
				{Name: "A", Count: 3, Percent: 30},
				{Name: "B", Count: 2, Percent: 20},
				{Name: "C", Count: 1, Percent: 10},
				{Name: "D", Count: 1, Percent: 10},
				{Name: "E", Count: 1, Percent: 10},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			aggregator := NewAggregator(log.New(io.Discard, "", 0))

			result := aggregator.Aggregate(tc.repos)

			assert.Equal(t, tc.expectedStars, result.TotalStars)
			assert.Equal(t, tc.expectedForks, result.TotalForks)
			assert.Equal(t, tc.expectedTally, result.Languages)
			assert.Equal(t, tc.expectedRanked, result.TopLanguages)
		})
	}
}

func TestAggregator_PercentagesNeverExceedFullTally(t *testing.T) {
	aggregator := NewAggregator(log.New(io.Discard, "", 0))
	langs := []string{"Go", "Go", "Go", "Rust", "Rust", "C", "Java", "PHP", "Ruby", "Ruby", "Swift", "Kotlin"}
	repos := make([]domain.RepositorySummary, 0, len(langs))
	for _, l := range langs {
		repos = append(repos, domain.RepositorySummary{Language: l})
	}

	result := aggregator.Aggregate(repos)

	sum := 0
	for _, share := range result.TopLanguages {
		sum += share.Percent
	}
	assert.Len(t, result.TopLanguages, TopLanguageCount)
	assert.Less(t, sum, 100)
}
