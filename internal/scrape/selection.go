package scrape

import (
	"strings"

	"rojobs/internal/domain"
)

// ParseSelection turns the CLI source answer into source ids.
// "1".."4" or a source id pick one source, comma-separated lists pick
// several; "ALL", an empty answer or anything unrecognized means all (nil).
func ParseSelection(token string) []string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || token == "all" {
		return nil
	}

	var ids []string
	seen := map[string]bool{}
	for _, part := range strings.Split(token, ",") {
		part = strings.TrimSpace(part)
		id := ""
		for _, s := range domain.Catalog {
			if part == s.Menu || part == s.ID {
				id = s.ID
				break
			}
		}
		if id == "" {
			return nil
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
