// Package domain contains the core data structures and domain logic for the application.
package domain

// Repository is a single repository of an organization as listed by the API.
type Repository struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	OpenIssuesCount int    `json:"open_issues_count"`
}

// AnyPullRequests reports whether the repository might have open pull requests.
// The listing endpoint only exposes a combined issue and pull request counter, so a
// repository with pull requests but a zero counter is skipped.
func (r Repository) AnyPullRequests() bool {
	return r.OpenIssuesCount > 0
}
