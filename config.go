package tweetgraph

// GraphConfig holds the configuration for a GraphBuilder.
type GraphConfig struct {
	// Evidence lists the sources consulted for follow edges.
	// Mention evidence is always consulted, whether or not it is listed.
	Evidence []Evidence
}

// defaults fills in zero-value config fields and guarantees mention evidence
// leads the list exactly once.
func (cfg *GraphConfig) defaults() {
	sources := []Evidence{MentionEvidence{}}
	for _, ev := range cfg.Evidence {
		if ev == nil {
			continue
		}
		if _, ok := ev.(MentionEvidence); ok {
			continue
		}
		sources = append(sources, ev)
	}
	cfg.Evidence = sources
}
