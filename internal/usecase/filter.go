package usecase

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/jreidinger/pull-requests-reminder/internal/domain"
	"github.com/jreidinger/pull-requests-reminder/internal/gateway"
)

// Filter selects the pull requests of a repository that waited too long.
type Filter struct {
	fetcher gateway.Fetcher
	logger  logr.Logger
	now     func() time.Time
}

// NewFilter creates a new Filter. now defaults to time.Now.
func NewFilter(fetcher gateway.Fetcher, logger logr.Logger, now func() time.Time) *Filter {
	if now == nil {
		now = time.Now
	}
	return &Filter{
		fetcher: fetcher,
		logger:  logger,
		now:     now,
	}
}

// PendingPullRequests fetches the pull requests of repo and keeps the pending ones.
func (f *Filter) PendingPullRequests(ctx context.Context, repo domain.Repository) ([]domain.PendingPullRequest, error) {
	prs, err := f.fetcher.ListPullRequests(ctx, repo.FullName)
	if err != nil {
		return nil, err
	}
	now := f.now()
	pending := SelectPending(prs, now)
	f.logger.V(1).Info("Pull requests filtered", "repository", repo.FullName, "fetched", len(prs), "pending", len(pending), "threshold", domain.StaleThreshold(now))
	return pending, nil
}

// SelectPending drops drafts and keeps pull requests untouched for more than the
// threshold of now. The input order is preserved.
func SelectPending(prs []domain.PullRequest, now time.Time) []domain.PendingPullRequest {
	threshold := domain.StaleThreshold(now)
	pending := make([]domain.PendingPullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr.Draft {
			continue
		}
		days := pr.PendingDays(now)
		if days <= threshold {
			continue
		}
		pending = append(pending, domain.PendingPullRequest{PullRequest: pr, Days: days})
	}
	return pending
}
