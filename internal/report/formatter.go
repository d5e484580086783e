// Package report renders a reminder run as the plain-text digest printed to the user.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jreidinger/pull-requests-reminder/internal/domain"
)

// LimitExceededSuffix is appended to the digest when an API request error cut the run short.
const LimitExceededSuffix = "\n\n ERROR: API query limit exceeded"

// Format renders the digest. Repositories without pending pull requests are
// skipped and an empty report renders as an empty string.
func Format(r *domain.Report) string {
	var b strings.Builder
	for _, repo := range r.Repositories {
		if len(repo.PullRequests) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\nPending requests in repository %s:\n", repo.Repository.Name)
		for _, pr := range repo.PullRequests {
			b.WriteString("  - ")
			for _, label := range pr.Labels {
				fmt.Fprintf(&b, "[%s] ", label.Name)
			}
			fmt.Fprintf(&b, "%s (%d days)\n", pr.Title, pr.Days)
			fmt.Fprintf(&b, "    %s\n\n", pr.HTMLURL)
		}
	}
	if r.Truncated() {
		b.WriteString(LimitExceededSuffix)
	}
	return b.String()
}

// Print writes the digest to w in a single write, terminated by a newline.
// Nothing is written for an empty digest.
func Print(w io.Writer, r *domain.Report) error {
	digest := Format(r)
	if digest == "" {
		return nil
	}
	if !strings.HasSuffix(digest, "\n") {
		digest += "\n"
	}
	_, err := io.WriteString(w, digest)
	return err
}
