package tweetgraph

import "strings"

// FilterByAuthor keeps posts written by username, compared case-insensitively.
func FilterByAuthor(posts []Post, username string) []Post {
	want := NormalizeUsername(username)
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		if NormalizeUsername(p.Author) == want {
			result = append(result, p)
		}
	}
	return result
}

// FilterByTimeRange keeps posts whose timestamp falls within r, inclusive.
func FilterByTimeRange(posts []Post, r TimeRange) []Post {
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		if r.Contains(p.Timestamp) {
			result = append(result, p)
		}
	}
	return result
}

// FilterByKeywords keeps posts containing at least one of words as a
// whitespace-delimited token, ignoring case. An empty word list matches nothing.
func FilterByKeywords(posts []Post, words []string) []Post {
	if len(words) == 0 {
		return []Post{}
	}

	// Build a set of wanted words for O(1) lookup
	wanted := make(map[string]bool, len(words))
	for _, w := range words {
		wanted[strings.ToLower(w)] = true
	}

	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		for _, token := range strings.Fields(p.Text) {
			if wanted[strings.ToLower(token)] {
				result = append(result, p)
				break
			}
		}
	}
	return result
}
