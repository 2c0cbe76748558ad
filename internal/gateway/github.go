// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client and avatar downloads.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"

	"github.com/naka-gawa/github-profile-card/internal/domain"
)

// RepoPageSize is the number of most recently updated repositories considered per account.
const RepoPageSize = 30

// maxAvatarBytes caps the avatar download; GitHub avatars are far below it.
const maxAvatarBytes = 2 << 20

const userAgent = "github-profile-card/1.0"

// ErrNotFound is returned when the account does not exist.
var ErrNotFound = errors.New("github account not found")

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchProfile(ctx context.Context, handle string) (*domain.AccountProfile, error)
	FetchRepositories(ctx context.Context, handle string) ([]domain.RepositorySummary, error)
	FetchAvatar(ctx context.Context, avatarURL string) ([]byte, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	httpClient *http.Client
	logger     *log.Logger
}

// NewGitHubGateway creates a gateway against the public GitHub API, or against
// baseURL when it is not empty.
func NewGitHubGateway(baseURL string, logger *log.Logger) (Fetcher, error) {
	httpClient := &http.Client{}
	restClient := github.NewClient(httpClient)
	restClient.UserAgent = userAgent
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GitHub API URL: %w", err)
		}
		restClient.BaseURL = u
	}
	return &GitHubGateway{
		restClient: restClient,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (g *GitHubGateway) FetchProfile(ctx context.Context, handle string) (*domain.AccountProfile, error) {
	g.logger.Printf("[1/3] Fetching profile for %s...\n", handle)
	// An empty user would make the client ask for the authenticated user instead.
	if handle == "" {
		return nil, ErrNotFound
	}
	user, resp, err := g.restClient.Users.Get(ctx, url.PathEscape(handle))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, handle)
		}
		return nil, fmt.Errorf("failed to fetch user with REST API: %w", err)
	}
	if user.GetLogin() == "" {
		return nil, fmt.Errorf("failed to fetch user with REST API: response for %s has no login", handle)
	}
	return &domain.AccountProfile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		Company:     strings.TrimPrefix(user.GetCompany(), "@"),
		Location:    user.GetLocation(),
		CreatedAt:   user.GetCreatedAt().Time,
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}, nil
}

// FetchRepositories returns a single page of the account's repositories, most recently updated first.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, handle string) ([]domain.RepositorySummary, error) {
	g.logger.Printf("[2/3] Fetching repositories for %s...\n", handle)
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: RepoPageSize},
	}
	repos, _, err := g.restClient.Repositories.ListByUser(ctx, url.PathEscape(handle), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories with REST API: %w", err)
	}
	summaries := make([]domain.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, domain.RepositorySummary{
			Stars:    repo.GetStargazersCount(),
			Forks:    repo.GetForksCount(),
			Language: repo.GetLanguage(),
		})
	}
	g.logger.Printf("Completed fetching %d repositories.\n", len(summaries))
	return summaries, nil
}

// FetchAvatar downloads the raw avatar image.
func (g *GitHubGateway) FetchAvatar(ctx context.Context, avatarURL string) ([]byte, error) {
	g.logger.Println("[3/3] Fetching avatar...")
	if avatarURL == "" {
		return nil, errors.New("avatar URL is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, avatarURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build avatar request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/*")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to download avatar: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read avatar body: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("avatar body is empty")
	}
	return data, nil
}
