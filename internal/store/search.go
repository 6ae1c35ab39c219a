package store

import (
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

// SearchTerms splits a free-text search query into whitespace-separated
// terms. A post matches the query when any term matches.
func SearchTerms(search string) []string {
	return strings.Fields(search)
}

// matchesSearch reports whether any term is a case-insensitive substring of
// the post's title, content or one of its tags.
func matchesSearch(post models.Post, terms []string) bool {
	if len(terms) == 0 {
		return true
	}

	title := strings.ToLower(post.Title)
	content := strings.ToLower(post.Content)
	for _, term := range terms {
		term = strings.ToLower(term)
		if strings.Contains(title, term) || strings.Contains(content, term) {
			return true
		}
		for _, tag := range post.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
	}

	return false
}
