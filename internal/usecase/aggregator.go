// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/jreidinger/pull-requests-reminder/internal/domain"
	"github.com/jreidinger/pull-requests-reminder/internal/gateway"
)

const (
	// RepositoriesPerPage is the page size used when listing repositories.
	RepositoriesPerPage = 100
	// DefaultMaxPages bounds the repository listing when the API never returns an empty page.
	DefaultMaxPages = 1000
)

// Aggregator is the use case for collecting the repositories of an organization
// that may have pending pull requests.
type Aggregator struct {
	fetcher  gateway.Fetcher
	logger   logr.Logger
	maxPages int
}

// NewAggregator creates a new Aggregator instance. A non-positive maxPages means DefaultMaxPages.
func NewAggregator(fetcher gateway.Fetcher, logger logr.Logger, maxPages int) *Aggregator {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Aggregator{
		fetcher:  fetcher,
		logger:   logger,
		maxPages: maxPages,
	}
}

// Walk pages through the organization's repositories starting at page 1 until a
// page comes back empty. Every page is narrowed to the whitelist (when non-empty)
// and to repositories with open issues, and the survivors are handed to fn in
// fetch order. Pages with no survivors are skipped. Errors from the fetcher or
// from fn stop the walk and are returned as is.
func (a *Aggregator) Walk(ctx context.Context, org string, whitelist []string, fn func(page []domain.Repository) error) error {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, name := range whitelist {
		allowed[name] = struct{}{}
	}

	for page := 1; page <= a.maxPages; page++ {
		repos, err := a.fetcher.ListRepositoriesPage(ctx, org, page, RepositoriesPerPage)
		if err != nil {
			return err
		}
		if len(repos) == 0 {
			a.logger.V(1).Info("Reached the last repositories page", "org", org, "pages", page-1)
			return nil
		}

		candidates := make([]domain.Repository, 0, len(repos))
		for _, repo := range repos {
			if len(allowed) > 0 {
				if _, ok := allowed[repo.Name]; !ok {
					continue
				}
			}
			if !repo.AnyPullRequests() {
				continue
			}
			candidates = append(candidates, repo)
		}
		a.logger.V(1).Info("Repositories page filtered", "org", org, "page", page, "fetched", len(repos), "candidates", len(candidates))
		if len(candidates) == 0 {
			continue
		}
		if err := fn(candidates); err != nil {
			return err
		}
	}
	return fmt.Errorf("%s returned no empty page within %d pages: %w", org, a.maxPages, domain.ErrTooManyPages)
}

// RepositoriesWithPullRequests returns every repository Walk would visit, in fetch order.
func (a *Aggregator) RepositoriesWithPullRequests(ctx context.Context, org string, whitelist []string) ([]domain.Repository, error) {
	result := []domain.Repository{}
	err := a.Walk(ctx, org, whitelist, func(page []domain.Repository) error {
		result = append(result, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
