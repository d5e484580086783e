package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jreidinger/pull-requests-reminder/internal/domain"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) ListRepositoriesPage(ctx context.Context, org string, page, perPage int) ([]domain.Repository, error) {
	args := m.Called(ctx, org, page, perPage)
	// The returned slice is nil when an error is simulated.
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *mockFetcher) ListPullRequests(ctx context.Context, fullName string) ([]domain.PullRequest, error) {
	args := m.Called(ctx, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PullRequest), args.Error(1)
}

// wednesday is a fixed evaluation instant with a threshold of 3 days.
var wednesday = time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func repo(name string, openIssues int) domain.Repository {
	return domain.Repository{Name: name, FullName: "acme/" + name, OpenIssuesCount: openIssues}
}

func reposNamed(prefix string, n int) []domain.Repository {
	repos := make([]domain.Repository, 0, n)
	for i := 0; i < n; i++ {
		repos = append(repos, repo(fmt.Sprintf("%s-%03d", prefix, i), 1))
	}
	return repos
}

// prAged returns a pull request last updated days (plus one hour) before now.
func prAged(title string, now time.Time, days int, labels ...string) domain.PullRequest {
	pr := domain.PullRequest{
		Title:     title,
		HTMLURL:   "https://github.com/acme/pull/" + title,
		UpdatedAt: now.Add(-time.Duration(days)*24*time.Hour - time.Hour),
		Labels:    []domain.Label{},
	}
	for _, name := range labels {
		pr.Labels = append(pr.Labels, domain.Label{Name: name})
	}
	return pr
}
