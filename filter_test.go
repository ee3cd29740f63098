package tweetgraph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByAuthor(t *testing.T) {
	tests := []struct {
		name     string
		posts    []Post
		username string
		want     []Post
	}{
		{"no posts", nil, "alyssa", []Post{}},
		{"single match", []Post{tweet1, tweet2}, "alyssa", []Post{tweet1}},
		{"case insensitive", []Post{tweet1, tweet3}, "ALYSSA", []Post{tweet1, tweet3}},
		{"keeps order", []Post{tweet3, tweet2, tweet1}, "alyssa", []Post{tweet3, tweet1}},
		{"no substring match", []Post{tweet1}, "aly", []Post{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByAuthor(tt.posts, tt.username))
		})
	}
}

func TestFilterByTimeRange(t *testing.T) {
	all := []Post{tweet1, tweet2, tweet3}
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []Post
	}{
		{"all posts", d1, d3, all},
		{"boundaries inclusive", d1, d2, []Post{tweet1, tweet2}},
		{"single instant", d2, d2, []Post{tweet2}},
		{"outside", d3.Add(time.Hour), d3.Add(2 * time.Hour), []Post{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewTimeRange(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FilterByTimeRange(all, r))
		})
	}
}

func TestFilterByKeywords(t *testing.T) {
	posts := []Post{tweet1, tweet2}
	tests := []struct {
		name  string
		words []string
		want  []Post
	}{
		{"single word", []string{"talk"}, []Post{tweet1, tweet2}},
		{"case insensitive", []string{"RIVEST"}, []Post{tweet1, tweet2}},
		{"some words match", []string{"minutes", "none"}, []Post{tweet2}},
		{"several words in one post", []string{"rivest", "talk", "hype"}, []Post{tweet1, tweet2}},
		{"no match", []string{"apple"}, []Post{}},
		{"whole token only", []string{"reason"}, []Post{}},
		{"punctuation is part of token", []string{"much"}, []Post{}},
		{"empty word list", nil, []Post{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByKeywords(posts, tt.words))
		})
	}
}

func TestFilterByKeywords_EmptyWordsAlwaysEmpty(t *testing.T) {
	for _, posts := range [][]Post{nil, {tweet1}, {tweet1, tweet2, tweet3}} {
		got := FilterByKeywords(posts, []string{})
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestFilters_DoNotMutateInput(t *testing.T) {
	posts := []Post{tweet3, tweet1, tweet2}
	before := append([]Post(nil), posts...)

	FilterByAuthor(posts, "alyssa")
	FilterByTimeRange(posts, TimeRange{Start: d1, End: d2})
	FilterByKeywords(posts, []string{"talk"})

	assert.Equal(t, before, posts)
}
