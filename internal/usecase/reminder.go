package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/jreidinger/pull-requests-reminder/internal/domain"
)

// Reminder builds the pending pull request report of an organization.
type Reminder struct {
	aggregator  *Aggregator
	filter      *Filter
	concurrency int
	logger      logr.Logger
}

// NewReminder creates a new Reminder. concurrency bounds how many repositories of
// a page have their pull requests fetched at the same time; values below 1 mean 1.
func NewReminder(aggregator *Aggregator, filter *Filter, concurrency int, logger logr.Logger) *Reminder {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Reminder{
		aggregator:  aggregator,
		filter:      filter,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run walks the organization and collects every repository with pending pull requests.
//
// An API request error (error status, rate limit) ends the run early without
// failing it: the returned report holds what was collected so far and its Err
// field is set. Any other error is returned and no report is produced.
func (r *Reminder) Run(ctx context.Context, org string, whitelist []string) (*domain.Report, error) {
	r.logger.Info("Collecting pending pull requests", "org", org, "whitelist", whitelist)
	report := &domain.Report{Organization: org}

	err := r.aggregator.Walk(ctx, org, whitelist, func(page []domain.Repository) error {
		blocks, err := r.processPage(ctx, page)
		report.Repositories = append(report.Repositories, blocks...)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrRequest) {
			return nil, err
		}
		r.logger.Error(err, "API request failed, stopping with a partial report", "org", org, "repositories", len(report.Repositories))
		report.Err = err
	}

	summary := Summarize(report)
	r.logger.Info("Collection complete", "org", org,
		"repositories", summary.Repositories,
		"pullRequests", summary.PullRequests,
		"medianDays", summary.MedianDays,
		"maxDays", summary.MaxDays,
		"truncated", report.Truncated())
	return report, nil
}

// processPage filters the repositories of one page and returns the non-empty
// results in page order. When a repository fails, the results of the
// repositories before it are returned together with its error, exactly as a
// sequential pass would, and repositories after it are not fetched if avoidable.
func (r *Reminder) processPage(ctx context.Context, page []domain.Repository) ([]domain.RepositoryReport, error) {
	results := make([][]domain.PendingPullRequest, len(page))
	errs := make([]error, len(page))

	var (
		mu           sync.Mutex
		firstFailure = len(page)
	)
	skip := func(i int) bool {
		mu.Lock()
		defer mu.Unlock()
		return i > firstFailure
	}

	var eg errgroup.Group
	eg.SetLimit(r.concurrency)
	for i, repo := range page {
		eg.Go(func() error {
			if skip(i) {
				return nil
			}
			results[i], errs[i] = r.filter.PendingPullRequests(ctx, repo)
			if errs[i] != nil {
				mu.Lock()
				if i < firstFailure {
					firstFailure = i
				}
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()

	blocks := make([]domain.RepositoryReport, 0, len(page))
	for i, repo := range page {
		if errs[i] != nil {
			return blocks, errs[i]
		}
		if len(results[i]) == 0 {
			continue
		}
		blocks = append(blocks, domain.RepositoryReport{Repository: repo, PullRequests: results[i]})
	}
	return blocks, nil
}
