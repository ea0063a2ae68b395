package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ClassSelector builds "tag.class" pairs for every tag/class combination.
// With no tags it matches the classes on any element.
func ClassSelector(tags, classes []string) string {
	var parts []string
	if len(tags) == 0 {
		tags = []string{""}
	}
	for _, t := range tags {
		for _, c := range classes {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			parts = append(parts, t+"."+c)
		}
	}
	return strings.Join(parts, ", ")
}

// FirstText returns the cleaned text of the first match of sel under s.
// ok is false when nothing matched.
func FirstText(s *goquery.Selection, sel string) (text string, ok bool) {
	if sel == "" {
		return "", false
	}
	m := s.Find(sel).First()
	if m.Length() == 0 {
		return "", false
	}
	return CleanText(m.Text()), true
}
