// Package notify implements the job-match notification service: scanning
// jobseeker profiles against a newly posted job and emailing each match.
package notify

import "strings"

// Matches reports whether a jobseeker profile matches a job's role field.
// The relation is a case-insensitive substring check: the job's role must
// occur somewhere inside the profile text. An empty profile never matches.
func Matches(profile, jobRole string) bool {
	if profile == "" {
		return false
	}
	return strings.Contains(strings.ToLower(profile), strings.ToLower(jobRole))
}
