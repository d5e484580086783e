package domain

import "time"

// Label is a label attached to a pull request.
type Label struct {
	Name string `json:"name"`
}

// PullRequest holds the fields of an open pull request needed by the digest.
type PullRequest struct {
	Title     string    `json:"title"`
	HTMLURL   string    `json:"html_url"`
	UpdatedAt time.Time `json:"updated_at"`
	Draft     bool      `json:"draft"`
	Labels    []Label   `json:"labels"`
}

// PendingDays returns the number of whole days since the last update, as seen at now.
func (pr PullRequest) PendingDays(now time.Time) int {
	return PendingDays(pr.UpdatedAt, now)
}

// PendingDays returns floor((now - updatedAt) in days). An update in the future counts as zero.
func PendingDays(updatedAt, now time.Time) int {
	elapsed := now.Sub(updatedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}

// StaleThreshold returns how many days a pull request may stay untouched before it
// is reported. On Monday and Tuesday the window is widened to cover the weekend.
func StaleThreshold(now time.Time) int {
	switch now.Weekday() {
	case time.Monday, time.Tuesday:
		return 5
	default:
		return 3
	}
}
