// Package builder provides deterministic constructors for bipartite graph
// fixtures used in tests, examples, and benchmarks.
//
// What
//
//   - Build(opts, cons...) creates a bigraph.Graph and applies constructors
//     in order.
//   - CompleteBipartite(n1, n2): K_{n1,n2} with "{L}{i}"/"{R}{j}" IDs.
//   - RandomBipartite(n1, n2, p): Erdős–Rényi-style cross edges, seeded via
//     WithSeed/WithRand for reproducible outcomes.
//
// Determinism
//
//	Vertex IDs derive from (prefix, index); edge emission and Bernoulli
//	trial orders are fixed (i ascending over the left side, j ascending
//	over the right). The same options, seed, and constructor order always
//	yield the same graph.
//
// Errors
//
//   - ErrTooFewVertices     for partition sizes below 1.
//   - ErrInvalidProbability for p outside [0,1].
//   - ErrNeedRandSource     when 0 < p < 1 without a seeded RNG.
//   - ErrConstructFailed    for a nil constructor.
//
// Usage
//
//	g, err := builder.Build(nil, builder.CompleteBipartite(3, 2))
//	g, err = builder.Build(
//	    []builder.Option{builder.WithSeed(42)},
//	    builder.RandomBipartite(10, 10, 0.3),
//	)
package builder
