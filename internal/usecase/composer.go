package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-profile-card/internal/domain"
	"github.com/naka-gawa/github-profile-card/internal/gateway"
	"github.com/naka-gawa/github-profile-card/internal/render"
)

// Messages shown on error documents.
const (
	MsgMissingHandle = "Please specify a GitHub username"
	MsgNotFound      = "GitHub user not found"
)

var (
	// ErrMissingHandle is reported when the handle is empty after trimming.
	ErrMissingHandle = errors.New("missing handle")
	// ErrAccountNotFound is reported when the profile could not be fetched.
	ErrAccountNotFound = errors.New("account not found")
)

// Default fetch budgets.
const (
	DefaultAPITimeout    = 10 * time.Second
	DefaultAvatarTimeout = 5 * time.Second
)

// Result is a rendered document. Err is nil for a profile card and names the
// failure for an error document; SVG is renderable in both cases.
type Result struct {
	SVG []byte
	Err error
}

// Composer builds profile cards from GitHub data.
type Composer struct {
	fetcher       gateway.Fetcher
	aggregator    *Aggregator
	logger        *log.Logger
	apiTimeout    time.Duration
	avatarTimeout time.Duration
}

// NewComposer creates a Composer. Non-positive timeouts fall back to the defaults.
func NewComposer(fetcher gateway.Fetcher, logger *log.Logger, apiTimeout, avatarTimeout time.Duration) *Composer {
	if apiTimeout <= 0 {
		apiTimeout = DefaultAPITimeout
	}
	if avatarTimeout <= 0 {
		avatarTimeout = DefaultAvatarTimeout
	}
	return &Composer{
		fetcher:       fetcher,
		aggregator:    NewAggregator(logger),
		logger:        logger,
		apiTimeout:    apiTimeout,
		avatarTimeout: avatarTimeout,
	}
}

// Compose renders the card for handle. It never fails: a missing handle or an
// unknown account yields an error document, and avatar or repository failures
// degrade to the fallback icon and an empty repository list.
func (c *Composer) Compose(ctx context.Context, handle string) Result {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return Result{SVG: render.ErrorDocument(MsgMissingHandle), Err: ErrMissingHandle}
	}
	c.logger.Printf("Usecase: composing card for %s...\n", handle)

	profileCtx, cancel := context.WithTimeout(ctx, c.apiTimeout)
	profile, err := c.fetcher.FetchProfile(profileCtx, handle)
	cancel()
	if err != nil {
		c.logger.Printf("Usecase: profile fetch failed: %v\n", err)
		return Result{SVG: render.ErrorDocument(MsgNotFound), Err: ErrAccountNotFound}
	}

	// Avatar and repositories are independent; each goroutine absorbs its own failure.
	var avatar string
	var repos []domain.RepositorySummary
	var eg errgroup.Group
	eg.Go(func() error {
		avatar = c.avatar(ctx, profile.AvatarURL)
		return nil
	})
	eg.Go(func() error {
		repos = c.repositories(ctx, handle)
		return nil
	})
	_ = eg.Wait()

	card := render.Card{
		Profile: profile,
		Stats:   c.aggregator.Aggregate(repos),
		Avatar:  avatar,
	}
	doc, err := card.Document()
	if err != nil {
		c.logger.Printf("Usecase: rendering failed: %v\n", err)
		return Result{SVG: render.ErrorDocument(MsgNotFound), Err: err}
	}
	c.logger.Println("Usecase: card complete.")
	return Result{SVG: doc}
}

func (c *Composer) avatar(ctx context.Context, avatarURL string) string {
	ctx, cancel := context.WithTimeout(ctx, c.avatarTimeout)
	defer cancel()

	data, err := c.fetcher.FetchAvatar(ctx, avatarURL)
	if err != nil {
		c.logger.Printf("Usecase: using fallback avatar: %v\n", err)
		return render.FallbackAvatar
	}
	uri, ok := render.AvatarDataURI(data)
	if !ok {
		c.logger.Println("Usecase: using fallback avatar: body is not an image")
		return render.FallbackAvatar
	}
	return uri
}

func (c *Composer) repositories(ctx context.Context, handle string) []domain.RepositorySummary {
	ctx, cancel := context.WithTimeout(ctx, c.apiTimeout)
	defer cancel()

	repos, err := c.fetcher.FetchRepositories(ctx, handle)
	if err != nil {
		c.logger.Printf("Usecase: continuing without repositories: %v\n", err)
		return nil
	}
	return repos
}
