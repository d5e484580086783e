// Package gateway provides a gateway to the GitHub REST API,
// limited to the two listing endpoints the reminder needs.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/jreidinger/pull-requests-reminder/internal/domain"
)

// pullRequestsPerPage is the page size of the single pull request listing request.
const pullRequestsPerPage = 100

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// ListRepositoriesPage returns one page of the organization's repositories.
	// An empty result means there are no more pages.
	ListRepositoriesPage(ctx context.Context, org string, page, perPage int) ([]domain.Repository, error)
	// ListPullRequests returns the open pull requests of the repository "owner/name".
	ListPullRequests(ctx context.Context, fullName string) ([]domain.PullRequest, error)
}

// Options configure the GitHub gateway.
type Options struct {
	// Token authenticates requests. Empty means anonymous requests.
	Token string
	// BaseURL overrides https://api.github.com/.
	BaseURL string
	// MaxSecondaryWait is the longest single sleep on a secondary rate limit.
	// Zero hands the limit straight back to the caller as an error.
	MaxSecondaryWait time.Duration
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     logr.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(opts Options, logger logr.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil,
		github_ratelimit.WithLimitDetectedCallback(func(cc *github_ratelimit.CallbackContext) {
			if cc.SleepUntil != nil {
				logger.Info("Secondary rate limit detected", "resetAt", cc.SleepUntil.Format(time.RFC3339))
			}
		}),
		github_ratelimit.WithSingleSleepLimit(opts.MaxSecondaryWait, func(cc *github_ratelimit.CallbackContext) {
			logger.Info("Secondary rate limit wait exceeds the configured maximum, giving up", "maxWait", opts.MaxSecondaryWait)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	httpClient := &http.Client{Transport: rateLimitWaiter}
	if opts.Token != "" {
		httpClient.Transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	} else {
		logger.Info("No API token configured, sending unauthenticated requests")
	}

	restClient := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("failed to parse api url %q: %w", opts.BaseURL, err)
		}
		restClient.BaseURL = baseURL
	}

	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// ListRepositoriesPage calls GET /orgs/{org}/repos?page={page}&per_page={perPage}.
func (g *GitHubGateway) ListRepositoriesPage(ctx context.Context, org string, page, perPage int) ([]domain.Repository, error) {
	g.logger.V(1).Info("Fetching repositories page", "org", org, "page", page, "perPage", perPage)
	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}
	repos, _, err := g.restClient.Repositories.ListByOrg(ctx, org, opts)
	if err != nil {
		endpoint := fmt.Sprintf("orgs/%s/repos", org)
		return nil, fmt.Errorf("failed to list repositories of %s (page %d): %w", org, page, classifyError(endpoint, err))
	}

	result := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, toRepository(repo))
	}
	return result, nil
}

// ListPullRequests calls GET /repos/{owner}/{repo}/pulls.
func (g *GitHubGateway) ListPullRequests(ctx context.Context, fullName string) ([]domain.PullRequest, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("invalid repository full name %q: %w", fullName, domain.ErrMalformedResponse)
	}

	g.logger.V(1).Info("Fetching pull requests", "repository", fullName)
	opts := &github.PullRequestListOptions{
		ListOptions: github.ListOptions{PerPage: pullRequestsPerPage},
	}
	prs, _, err := g.restClient.PullRequests.List(ctx, owner, name, opts)
	if err != nil {
		endpoint := fmt.Sprintf("repos/%s/pulls", fullName)
		return nil, fmt.Errorf("failed to list pull requests of %s: %w", fullName, classifyError(endpoint, err))
	}

	result := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		converted, err := toPullRequest(pr)
		if err != nil {
			return nil, fmt.Errorf("failed to decode pull requests of %s: %w", fullName, err)
		}
		result = append(result, converted)
	}
	return result, nil
}

func toRepository(repo *github.Repository) domain.Repository {
	return domain.Repository{
		Name:            repo.GetName(),
		FullName:        repo.GetFullName(),
		OpenIssuesCount: repo.GetOpenIssuesCount(),
	}
}

func toPullRequest(pr *github.PullRequest) (domain.PullRequest, error) {
	if pr.UpdatedAt == nil {
		return domain.PullRequest{}, fmt.Errorf("pull request %q has no updated_at: %w", pr.GetHTMLURL(), domain.ErrMalformedResponse)
	}
	labels := make([]domain.Label, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, domain.Label{Name: label.GetName()})
	}
	return domain.PullRequest{
		Title:     pr.GetTitle(),
		HTMLURL:   pr.GetHTMLURL(),
		UpdatedAt: pr.UpdatedAt.Time,
		Draft:     pr.GetDraft(),
		Labels:    labels,
	}, nil
}
