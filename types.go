// Package tweetgraph extracts mentions and time ranges from tweets, filters
// them, and infers a follows graph ranked by follower count.
package tweetgraph

import (
	"fmt"
	"slices"
	"time"
)

// Post represents a single authored tweet.
type Post struct {
	ID        int64
	Author    string
	Text      string
	Timestamp time.Time
}

// TimeRange is a closed interval [Start, End].
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange builds a TimeRange, rejecting an end that precedes start.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if end.Before(start) {
		return TimeRange{}, fmt.Errorf("time range end %s before start %s: %w",
			end.Format(time.RFC3339), start.Format(time.RFC3339), ErrInvalidArgument)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Contains reports whether t lies within the range, boundaries included.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// FollowsGraph maps a lowercased username to the set of lowercased usernames
// they are inferred to follow. A user never follows themselves and no key maps
// to an empty set.
type FollowsGraph map[string]map[string]struct{}

// Follows reports whether follower is recorded as following followee.
func (g FollowsGraph) Follows(follower, followee string) bool {
	_, ok := g[NormalizeUsername(follower)][NormalizeUsername(followee)]
	return ok
}

// Followees returns the sorted usernames followed by user.
func (g FollowsGraph) Followees(user string) []string {
	set := g[NormalizeUsername(user)]
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of users following at least one other user.
func (g FollowsGraph) Len() int { return len(g) }

// add records follower -> followee. Both must already be normalized.
func (g FollowsGraph) add(follower, followee string) {
	set, ok := g[follower]
	if !ok {
		set = make(map[string]struct{})
		g[follower] = set
	}
	set[followee] = struct{}{}
}
