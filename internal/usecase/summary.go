package usecase

import (
	"github.com/montanaflynn/stats"

	"github.com/jreidinger/pull-requests-reminder/internal/domain"
)

// Summarize computes how many pull requests the report lists and how old they are.
func Summarize(report *domain.Report) domain.Summary {
	summary := domain.Summary{Repositories: len(report.Repositories)}

	var days stats.Float64Data
	for _, repo := range report.Repositories {
		for _, pr := range repo.PullRequests {
			days = append(days, float64(pr.Days))
		}
	}
	summary.PullRequests = len(days)
	if len(days) == 0 {
		return summary
	}

	// Both only fail on empty input.
	summary.MedianDays, _ = stats.Median(days)
	summary.MaxDays, _ = stats.Max(days)
	return summary
}
