// Package bimatch is a small, focused toolkit for bipartite matching:
// build a two-sided graph, grow a matching along alternating paths, and
// either saturate the whole left side or obtain a Hall-deficiency witness
// proving that no saturating matching exists.
//
// 🚀 What is bimatch?
//
//	A thread-safe, zero-dependency library that brings together:
//		• bigraph/  — bipartite graph primitives: two-sided vertices, cross
//		              edges, deterministic sorted queries
//		• matching/ — the algorithmic core: Matching data structure,
//		              alternating-path BFS, augmentation, Hall deficiency
//		              checking, and the Saturate/Maximum construction drivers
//		• builder/  — deterministic bipartite fixtures (complete and random
//		              bipartite graphs) for tests, examples, and benchmarks
//
// ✨ Why choose bimatch?
//
//   - Minimal API, clear naming — matchings are edge sets, paths are vertex slices
//   - Rock-solid guarantees — every observable Matching is vertex-disjoint
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic — sorted vertex selection, reproducible witnesses and fixtures
//
// Quick ASCII example:
//
//	    a───x
//	     ╲ ╱
//	      ╳
//	     ╱ ╲
//	    b   y
//
//	Left {a,b}, Right {x,y}, edges a–x, a–y, b–x.
//	Saturate finds the size-2 matching {a–y, b–x}.
//
//	go get github.com/katalvlaran/bimatch
package bimatch
