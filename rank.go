package tweetgraph

import "sort"

// FollowerCounts returns, for every user followed by someone in graph, the
// number of distinct users following them. Names are normalized so a
// hand-built graph with mixed casing still counts per user.
func FollowerCounts(graph FollowsGraph) map[string]int {
	followers := make(map[string]map[string]struct{})
	for follower, followees := range graph {
		from := NormalizeUsername(follower)
		for followee := range followees {
			to := NormalizeUsername(followee)
			set, ok := followers[to]
			if !ok {
				set = make(map[string]struct{})
				followers[to] = set
			}
			set[from] = struct{}{}
		}
	}

	counts := make(map[string]int, len(followers))
	for user, set := range followers {
		counts[user] = len(set)
	}
	return counts
}

// RankInfluencers returns every followed user in graph ordered by descending
// follower count. Users with equal counts appear in no particular order.
// Users who follow others but are followed by nobody are omitted.
func RankInfluencers(graph FollowsGraph) []string {
	counts := FollowerCounts(graph)
	ranked := make([]string, 0, len(counts))
	for user := range counts {
		ranked = append(ranked, user)
	}

	sort.Slice(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}
