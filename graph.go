package tweetgraph

import "log/slog"

// GraphBuilder infers a FollowsGraph from a configured set of evidence sources.
// It holds no mutable state and may be shared between goroutines.
type GraphBuilder struct {
	cfg GraphConfig
}

// NewGraphBuilder creates a builder. Mention evidence is always included.
func NewGraphBuilder(cfg GraphConfig) *GraphBuilder {
	cfg.defaults()
	return &GraphBuilder{cfg: cfg}
}

// Build returns a fresh FollowsGraph for posts. posts is not modified.
func (b *GraphBuilder) Build(posts []Post) FollowsGraph {
	graph := make(FollowsGraph)
	for _, ev := range b.cfg.Evidence {
		edges, discarded := 0, 0
		ev.Collect(posts, func(follower, followee string) {
			from, to := NormalizeUsername(follower), NormalizeUsername(followee)
			if from == "" || to == "" || from == to {
				discarded++
				return
			}
			graph.add(from, to)
			edges++
		})
		slog.Debug("follows evidence collected",
			slog.String("source", ev.Name()),
			slog.Int("edges", edges),
			slog.Int("discarded", discarded))
	}
	return graph
}

// BuildFollowsGraph infers who follows whom from the @-mentions in posts.
// Author A follows B exactly when some post by A mentions B and B is not A.
func BuildFollowsGraph(posts []Post) FollowsGraph {
	return NewGraphBuilder(GraphConfig{}).Build(posts)
}
