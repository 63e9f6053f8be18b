// internal/app/samples.go
package app

import "github.com/llehouerou/notice/internal/alert"

// samples holds demo content per severity, cycled as notifications are shown.
var samples = map[alert.Severity][]alert.Content{
	alert.SeverityDefault: {
		{Title: "Heads up", Message: "Three files changed since your last sync."},
		{Title: "Reminder", Message: "Stand-up starts in ten minutes."},
	},
	alert.SeverityInfo: {
		{Title: "Update available", Message: "Version 2.4 can be installed on next restart."},
		{Title: "Indexing", Message: "Search results may be incomplete while the index rebuilds."},
	},
	alert.SeveritySuccess: {
		{Title: "Saved", Message: "Your changes were written to disk."},
		{Title: "Upload complete", Message: "report-q3.pdf is now shared with the team."},
	},
	alert.SeverityWarning: {
		{Title: "Low disk space", Message: "Less than 2 GB left on /home."},
		{Title: "Session expiring", Message: "You will be signed out in 5 minutes unless you continue."},
	},
	alert.SeverityError: {
		{Title: "Connection lost", Message: "The server stopped responding. Retrying in 30 seconds."},
		{Title: "Build failed", Message: "3 tests failed in internal/alert. See the log for details."},
	},
}

// sample returns the n-th demo content for sev.
func sample(sev alert.Severity, n int) alert.Content {
	list := samples[sev]
	if len(list) == 0 {
		return alert.Content{Message: "Something happened."}
	}
	return list[n%len(list)]
}
