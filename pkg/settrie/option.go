package settrie

import "github.com/khalid-nowaf/settrie/pkg/trie"

type config struct {
	strategy trie.Strategy
}

// Option configures a container at construction time.
type Option func(*config) *config

func defaultOptions(opts []Option) *config {
	cfg := &config{
		strategy: trie.Iterative,
	}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return cfg
}

// WithStrategy selects how queries traverse the trie. The default, trie.Iterative, uses
// an explicit stack and copes with sets of any size; trie.Recursive recurses once per
// element of the longest stored set.
func WithStrategy(strategy trie.Strategy) Option {
	return func(c *config) *config {
		c.strategy = strategy
		return c
	}
}
