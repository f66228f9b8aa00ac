// Package polycover decides whether collections of polyomino-style shapes
// can be packed into rectangular regions — from shape canonicalization to a
// generalized exact-cover search.
//
// 🧩 What is polycover?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Shape model: immutable boolean grids with rotation/reflection variants
//		• Placement enumeration: every legal position of every variant in a grid
//		• Exact-cover solver: Algorithm X over index-arena Dancing Links,
//		  with mandatory (primary) and optional (secondary) columns
//		• Feasibility checking: per-region yes/no with early area pruning,
//		  memoized caches, and batch counting across many regions
//
// ✨ Why choose polycover?
//
//   - Feasibility-first – proves existence of a packing, then stops
//   - Rock-solid guarantees – cover/uncover symmetry, total termination
//   - Pure Go – no cgo, no hidden deps
//   - Cancellable – every search honors a caller-supplied context
//
// Under the hood, everything is organized under three subpackages:
//
//	shape/   — Shape, Variant, and canonical orientation enumeration
//	dlx/     — generalized exact-cover matrix and Algorithm X search
//	packing/ — Region, placement indexing, caches, and the feasibility checker
//
// Quick ASCII example:
//
//	shape A: ##      region 2×2, two of A      packing: AA
//	(domino)                                            AA   → CanFit = true
//
// Dive into each package's doc.go for contracts, complexity notes, and the
// full error taxonomy.
//
//	go get github.com/dmelnyk/polycover
package polycover
