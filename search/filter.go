// Package search derives the visible command list from a free-text query and
// a single selected platform.
package search

import (
	"strings"

	"github.com/fwojciec/cmdref"
)

// Filter returns the commands matching both query and platformID, in corpus
// order. An empty query matches every command; an empty platformID matches
// every platform. Text matching is a case-insensitive substring test against
// the name, description and subtitle only.
func Filter(commands []cmdref.Command, query, platformID string) []cmdref.Command {
	needle := strings.ToLower(query)
	results := make([]cmdref.Command, 0, len(commands))
	for _, cmd := range commands {
		if matchesText(cmd, needle) && matchesPlatform(cmd, platformID) {
			results = append(results, cmd)
		}
	}
	return results
}

// matchesText expects needle to be lowercased already.
func matchesText(cmd cmdref.Command, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(cmd.Name), needle) ||
		strings.Contains(strings.ToLower(cmd.Description), needle) ||
		strings.Contains(strings.ToLower(cmd.Subtitle), needle)
}

func matchesPlatform(cmd cmdref.Command, platformID string) bool {
	if platformID == "" {
		return true
	}
	return cmd.HasPlatform(platformID)
}
