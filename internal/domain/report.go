package domain

// PendingPullRequest is a pull request that passed the staleness filter,
// together with the age it had when it was filtered.
type PendingPullRequest struct {
	PullRequest
	Days int `json:"pending_days"`
}

// RepositoryReport groups the pending pull requests of one repository.
type RepositoryReport struct {
	Repository   Repository           `json:"repository"`
	PullRequests []PendingPullRequest `json:"pull_requests"`
}

// Report is the result of one reminder run.
// Err is set when an API request error cut the run short; Repositories then
// holds everything collected before the failure.
type Report struct {
	Organization string             `json:"organization"`
	Repositories []RepositoryReport `json:"repositories"`
	Err          error              `json:"-"`
}

// Truncated reports whether the run stopped early because of an API request error.
func (r *Report) Truncated() bool {
	return r.Err != nil
}

// Summary holds aggregate numbers about a report.
type Summary struct {
	Repositories int     `json:"repositories"`
	PullRequests int     `json:"pull_requests"`
	MedianDays   float64 `json:"median_days"`
	MaxDays      float64 `json:"max_days"`
}
