package tweetgraph

import (
	"fmt"
	"regexp"
)

// mentionRe matches an @ that starts the text or follows a non-username
// character, then captures the maximal run of username characters after it.
// The boundary character is consumed, but a run always ends on a
// non-username character, so adjacent mentions never share one.
var mentionRe = regexp.MustCompile(`(?:^|[^\p{L}\p{Nd}_-])@([\p{L}\p{Nd}_-]+)`)

// ExtractMentions returns the distinct lowercased usernames mentioned in text,
// in order of first appearance.
func ExtractMentions(text string) []string {
	matches := mentionRe.FindAllStringSubmatch(text, -1)
	seen := make(map[string]bool)
	var result []string
	for _, m := range matches {
		if len(m) < 2 {
			continue
		}
		name := NormalizeUsername(m[1])
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	return result
}

// ExtractMentionedUsers returns the set of lowercased usernames validly
// mentioned across all posts. The result is never nil.
func ExtractMentionedUsers(posts []Post) map[string]struct{} {
	users := make(map[string]struct{})
	for _, p := range posts {
		for _, name := range ExtractMentions(p.Text) {
			users[name] = struct{}{}
		}
	}
	return users
}

// ExtractTimeRange returns the smallest TimeRange enclosing every post's
// timestamp. It fails with ErrInvalidArgument when posts is empty.
func ExtractTimeRange(posts []Post) (TimeRange, error) {
	if len(posts) == 0 {
		return TimeRange{}, fmt.Errorf("time range of empty post list: %w", ErrInvalidArgument)
	}
	start, end := posts[0].Timestamp, posts[0].Timestamp
	for _, p := range posts[1:] {
		if p.Timestamp.Before(start) {
			start = p.Timestamp
		}
		if p.Timestamp.After(end) {
			end = p.Timestamp
		}
	}
	return TimeRange{Start: start, End: end}, nil
}
