package tweetgraph

import "regexp"

// Evidence is a source of inferred follow edges.
type Evidence interface {
	// Name identifies the source in logs.
	Name() string

	// Collect reports every (follower, followee) pair supported by posts.
	// Names need not be normalized and self edges are allowed; the builder
	// discards them.
	Collect(posts []Post, edge func(follower, followee string))
}

// MentionEvidence infers that the author of a post follows every user the
// post validly @-mentions.
type MentionEvidence struct{}

func (MentionEvidence) Name() string { return "mention" }

func (MentionEvidence) Collect(posts []Post, edge func(follower, followee string)) {
	for _, p := range posts {
		for _, name := range ExtractMentions(p.Text) {
			edge(p.Author, name)
		}
	}
}

// retweetRe matches the classic manual retweet prefix "RT name:" with an
// optional @ marker.
var retweetRe = regexp.MustCompile(`(?i)^\s*RT\s+@?([\p{L}\p{Nd}_-]+)\s*:`)

// RetweetEvidence infers that a post beginning "RT name:" means its author
// follows name. The name only counts when it authored a post in the same
// collection, so every user in the graph is an author or a mention.
type RetweetEvidence struct{}

func (RetweetEvidence) Name() string { return "retweet" }

func (RetweetEvidence) Collect(posts []Post, edge func(follower, followee string)) {
	authors := make(map[string]bool, len(posts))
	for _, p := range posts {
		authors[NormalizeUsername(p.Author)] = true
	}
	for _, p := range posts {
		m := retweetRe.FindStringSubmatch(p.Text)
		if len(m) < 2 {
			continue
		}
		if authors[NormalizeUsername(m[1])] {
			edge(p.Author, m[1])
		}
	}
}
